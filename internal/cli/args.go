package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// parseArgFlags turns repeated --arg name=value flags into form values.
// Values starting with [ or { are JSON; everything else stays a string so
// the engine can apply the declared type.
func parseArgFlags(flags []string) (map[string]any, error) {
	values := make(map[string]any, len(flags))
	for _, flag := range flags {
		name, raw, ok := strings.Cut(flag, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --arg %q, expected name=value", flag)
		}
		if _, dup := values[name]; dup {
			return nil, fmt.Errorf("argument %q given more than once", name)
		}

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || (trimmed[0] != '[' && trimmed[0] != '{') {
			values[name] = raw
			continue
		}

		dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("argument %q: invalid JSON: %w", name, err)
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("argument %q: invalid JSON: unexpected data after the value", name)
		}
		values[name] = v
	}
	return values, nil
}
