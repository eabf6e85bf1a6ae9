package usecase

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// ListFunctionsParams contains parameters for listing contract functions
type ListFunctionsParams struct {
	Schema string
	// Filter keeps functions whose name fuzzy-matches it, best match first
	Filter string
}

// ListFunctionsResult contains the functions of a contract schema
type ListFunctionsResult struct {
	Contract  string
	Functions []domain.ContractFunction
	Total     int
}

// ListFunctions lists the callable functions of a contract
type ListFunctions struct {
	schemas SchemaStore
}

// NewListFunctions creates a new ListFunctions use case
func NewListFunctions(schemas SchemaStore) *ListFunctions {
	return &ListFunctions{schemas: schemas}
}

// Run executes the list functions use case
func (uc *ListFunctions) Run(ctx context.Context, params ListFunctionsParams) (*ListFunctionsResult, error) {
	schema, err := uc.schemas.Load(ctx, params.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to load contract schema: %w", err)
	}

	result := &ListFunctionsResult{
		Contract: schema.Name,
		Total:    len(schema.Functions),
	}
	if params.Filter == "" {
		result.Functions = schema.Functions
		return result, nil
	}

	for _, m := range fuzzy.Find(params.Filter, schema.FunctionNames()) {
		result.Functions = append(result.Functions, schema.Functions[m.Index])
	}
	return result, nil
}
