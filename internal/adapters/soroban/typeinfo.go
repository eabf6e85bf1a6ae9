package soroban

import (
	"strings"

	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// containerWire names the wire shape each generic base encodes as
var containerWire = map[string]string{
	"Vec":    "Vec",
	"Map":    "Map",
	"Option": "Void | inner",
	"Result": "Map{ok|err}",
	"Tuple":  "Vec",
	"BytesN": "Bytes",
}

// DescribeType parses a type expression into a tree annotated with wire types
func (c *Converter) DescribeType(typ string) (*domain.TypeNode, error) {
	node, err := c.describeType(strings.TrimSpace(typ))
	if err != nil {
		return nil, err
	}
	return &node, nil
}

func (c *Converter) describeType(typ string) (domain.TypeNode, error) {
	gt, generic, err := ParseGenericType(typ)
	if err != nil {
		return domain.TypeNode{}, err
	}
	if !generic {
		node := domain.TypeNode{Name: typ}
		if wire, ok := c.registry.Lookup(typ); ok {
			node.Wire = wireName(wire)
		}
		return node, nil
	}

	if !isGenericBase(gt.BaseType) {
		return domain.TypeNode{}, domain.NewCodecError(domain.ErrUnsupportedType, typ, "", "unknown generic type %q", gt.BaseType)
	}
	if want, ok := containerArity[gt.BaseType]; ok && len(gt.Parameters) != want {
		return domain.TypeNode{}, domain.NewCodecError(domain.ErrValidation, typ, "",
			"%s takes %d type parameters, got %d", gt.BaseType, want, len(gt.Parameters))
	}

	node := domain.TypeNode{Name: gt.BaseType, Wire: containerWire[gt.BaseType]}
	if gt.BaseType == "BytesN" {
		if _, _, err := bytesNLength(typ); err != nil {
			return domain.TypeNode{}, err
		}
		node.Params = []domain.TypeNode{{Name: gt.Parameters[0]}}
		return node, nil
	}
	for _, p := range gt.Parameters {
		child, err := c.describeType(p)
		if err != nil {
			return domain.TypeNode{}, err
		}
		node.Params = append(node.Params, child)
	}
	return node, nil
}

func wireName(t xdr.ScValType) string {
	return strings.TrimPrefix(t.String(), "ScValTypeScv")
}
