package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/trebuchet-org/sorokit/internal/config"
	"gopkg.in/yaml.v3"
)

var decimalInteger = regexp.MustCompile(`^[-+]?[0-9]+$`)

// ArgumentFileAdapter reads named call arguments from JSON or YAML files.
// Integers keep their full precision as json.Number.
type ArgumentFileAdapter struct {
	root string
}

// NewArgumentFileAdapter creates a new ArgumentFileAdapter
func NewArgumentFileAdapter(cfg *config.RuntimeConfig) *ArgumentFileAdapter {
	return &ArgumentFileAdapter{root: cfg.ProjectRoot}
}

// Load reads the file at path, relative paths resolving against the project root
func (a *ArgumentFileAdapter) Load(ctx context.Context, path string) (map[string]any, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var values map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		values, err = decodeYAMLArguments(data)
	default:
		values, err = decodeJSONArguments(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}

func decodeJSONArguments(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the argument object")
	}
	return values, nil
}

func decodeYAMLArguments(data []byte) (map[string]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	v, err := yamlValue(doc.Content[0])
	if err != nil {
		return nil, err
	}
	values, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("arguments must be a mapping of name to value")
	}
	return values, nil
}

// yamlValue converts a node tree to plain values. Decimal integers become
// json.Number so values past 64 bits survive.
func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := yamlValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[node.Content[i].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		list := make([]any, len(node.Content))
		for i, child := range node.Content {
			v, err := yamlValue(child)
			if err != nil {
				return nil, err
			}
			list[i] = v
		}
		return list, nil
	case yaml.ScalarNode:
		// integers past 64 bits resolve as !!float
		tag := node.ShortTag()
		if (tag == "!!int" || tag == "!!float") && decimalInteger.MatchString(node.Value) {
			return json.Number(strings.TrimPrefix(node.Value, "+")), nil
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("unsupported YAML node at line %d", node.Line)
}
