package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/sorokit/internal/domain"
	"github.com/trebuchet-org/sorokit/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TypeTreeRenderer renders a parsed type expression as a tree
type TypeTreeRenderer struct {
	out   io.Writer
	title cases.Caser
}

// NewTypeTreeRenderer creates a new type tree renderer
func NewTypeTreeRenderer(out io.Writer) *TypeTreeRenderer {
	return &TypeTreeRenderer{out: out, title: cases.Title(language.English)}
}

// Render renders the tree, one node per line
func (r *TypeTreeRenderer) Render(result *usecase.InspectTypeResult) error {
	fmt.Fprintln(r.out, headerStyle.Sprint(result.Type))
	r.renderNode(*result.Tree, "", "", "")
	return nil
}

func (r *TypeTreeRenderer) renderNode(node domain.TypeNode, parent, prefix, branch string) {
	kind := nodeKind(node, parent)
	line := prefix + branch + typeStyle.Sprint(node.Name) + "  " + faintStyle.Sprint(r.title.String(kind))
	if node.Wire != "" {
		line += faintStyle.Sprintf(" → %s", node.Wire)
	}
	fmt.Fprintln(r.out, line)

	childPrefix := prefix
	switch branch {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}
	for i, child := range node.Params {
		b := "├── "
		if i == len(node.Params)-1 {
			b = "└── "
		}
		r.renderNode(child, node.Name, childPrefix, b)
	}
}

func nodeKind(node domain.TypeNode, parent string) string {
	switch {
	case parent == "BytesN":
		return "length"
	case len(node.Params) > 0:
		return "generic"
	case node.Wire == "":
		return "custom"
	default:
		return "primitive"
	}
}

var _ Renderer[*usecase.InspectTypeResult] = (*TypeTreeRenderer)(nil)
