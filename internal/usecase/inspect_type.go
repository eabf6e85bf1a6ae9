package usecase

import (
	"context"
	"strings"

	"github.com/trebuchet-org/sorokit/internal/domain"
)

// InspectTypeResult contains a parsed type expression
type InspectTypeResult struct {
	Type string
	Tree *domain.TypeNode
}

// InspectType parses a type expression and reports the wire type of every node
type InspectType struct {
	types TypeDescriber
}

// NewInspectType creates a new InspectType use case
func NewInspectType(types TypeDescriber) *InspectType {
	return &InspectType{types: types}
}

// Run executes the inspect type use case
func (uc *InspectType) Run(ctx context.Context, typ string) (*InspectTypeResult, error) {
	typ = strings.TrimSpace(typ)
	tree, err := uc.types.DescribeType(typ)
	if err != nil {
		return nil, err
	}
	return &InspectTypeResult{Type: typ, Tree: tree}, nil
}
