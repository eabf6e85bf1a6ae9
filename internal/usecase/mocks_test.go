package usecase_test

import (
	"context"
	"log/slog"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// MockSchemaStore is a mock implementation of SchemaStore
type MockSchemaStore struct {
	mock.Mock
}

func (m *MockSchemaStore) Load(ctx context.Context, ref string) (*domain.ContractSchema, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractSchema), args.Error(1)
}

// MockArgumentSource is a mock implementation of ArgumentSource
type MockArgumentSource struct {
	mock.Mock
}

func (m *MockArgumentSource) Load(ctx context.Context, path string) (map[string]any, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// MockPrompter is a mock implementation of ArgumentPrompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) SelectFunction(ctx context.Context, functions []domain.ContractFunction) (*domain.ContractFunction, error) {
	args := m.Called(ctx, functions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractFunction), args.Error(1)
}

func (m *MockPrompter) PromptArgument(ctx context.Context, fn *domain.ContractFunction, param domain.FunctionParameter) (any, error) {
	args := m.Called(ctx, fn, param)
	return args.Get(0), args.Error(1)
}

// MockResultFormatter is a mock implementation of ResultFormatter
type MockResultFormatter struct {
	mock.Mock
}

func (m *MockResultFormatter) FormatResultXDR(b64 string, output *domain.FunctionParameter) string {
	args := m.Called(b64, output)
	return args.String(0)
}

// MockTypeDescriber is a mock implementation of TypeDescriber
type MockTypeDescriber struct {
	mock.Mock
}

func (m *MockTypeDescriber) DescribeType(typ string) (*domain.TypeNode, error) {
	args := m.Called(typ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TypeNode), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func tokenSchema() *domain.ContractSchema {
	return &domain.ContractSchema{
		Name: "token",
		Functions: []domain.ContractFunction{
			{
				Name: "transfer",
				Inputs: []domain.FunctionParameter{
					{Name: "from", Type: "Address"},
					{Name: "to", Type: "Address"},
					{Name: "amount", Type: "I128"},
				},
			},
			{
				Name:    "balance",
				Inputs:  []domain.FunctionParameter{{Name: "id", Type: "Address"}},
				Outputs: []domain.FunctionParameter{{Name: "output", Type: "I128"}},
			},
			{
				Name: "mint",
				Inputs: []domain.FunctionParameter{
					{Name: "to", Type: "Address"},
					{Name: "amount", Type: "I128"},
					{Name: "memo", Type: "Option<String>"},
				},
				Outputs: []domain.FunctionParameter{{Name: "output", Type: "Void"}},
			},
			{Name: "decimals", Outputs: []domain.FunctionParameter{{Name: "output", Type: "U32"}}},
		},
	}
}
