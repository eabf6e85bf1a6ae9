package usecase

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

const maxSuggestions = 3

// lookupFunction finds a function by exact name. Unknown names come back as
// FunctionNotFoundErr with the closest fuzzy matches attached.
func lookupFunction(schema *domain.ContractSchema, name string) (*domain.ContractFunction, error) {
	if fn, ok := schema.Function(name); ok {
		return fn, nil
	}
	matches := fuzzy.Find(name, schema.FunctionNames())
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	return nil, domain.FunctionNotFoundErr{
		Name:        name,
		Suggestions: lo.Map(matches, func(m fuzzy.Match, _ int) string { return m.Str }),
	}
}

// resolveFunction looks up name, or asks the prompter to pick one when no
// name was given.
func resolveFunction(ctx context.Context, schema *domain.ContractSchema, name string, prompter ArgumentPrompter) (*domain.ContractFunction, error) {
	if name != "" {
		return lookupFunction(schema, name)
	}
	if len(schema.Functions) == 0 {
		return nil, fmt.Errorf("%w: contract schema declares no functions", domain.ErrFunctionNotFound)
	}
	return prompter.SelectFunction(ctx, schema.Functions)
}
