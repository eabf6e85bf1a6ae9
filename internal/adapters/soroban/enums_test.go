package soroban

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

func u32Ptr(n uint32) *uint32 { return &n }

func assetMetadata() *domain.EnumMetadata {
	return &domain.EnumMetadata{
		Name: "Asset",
		Variants: []domain.EnumVariant{
			{Name: "Native", Kind: domain.VariantVoid},
			{Name: "Stellar", Kind: domain.VariantTuple, PayloadTypes: []string{"Address"}},
			{Name: "Pair", Kind: domain.VariantTuple, PayloadTypes: []string{"U32", "Symbol"}},
			{Name: "Wrapped", Kind: domain.VariantTuple, PayloadTypes: []string{"U32", "Symbol"}, IsSingleTuplePayload: true},
		},
	}
}

func TestUnitVariant(t *testing.T) {
	c := newTestConverter()

	v, err := c.ConvertEnumToScVal(map[string]any{"tag": "Native"}, assetMetadata())
	require.NoError(t, err)
	items := vecItems(t, v)
	require.Len(t, items, 1)
	assert.Equal(t, "Native", symbolOf(t, items[0]))

	bare, err := c.ConvertEnumToScVal("Native", assetMetadata())
	require.NoError(t, err)
	requireSameScVal(t, v, bare)

	_, err = c.ConvertEnumToScVal(map[string]any{"tag": "Native", "values": []any{1}}, assetMetadata())
	assert.True(t, errors.Is(err, domain.ErrInvalidEnumValue))
}

func TestTupleVariantFlat(t *testing.T) {
	c := newTestConverter()

	v, err := c.ConvertEnumToScVal(map[string]any{"tag": "Pair", "values": []any{3, "xlm"}}, assetMetadata())
	require.NoError(t, err)
	items := vecItems(t, v)
	require.Len(t, items, 3)
	assert.Equal(t, "Pair", symbolOf(t, items[0]))
	assert.Equal(t, uint32(3), u32Of(t, items[1]))
	assert.Equal(t, "xlm", symbolOf(t, items[2]))

	account := testAccount(t, 3)
	v, err = c.ConvertEnumToScVal(map[string]any{"tag": "Stellar", "values": []any{account}}, assetMetadata())
	require.NoError(t, err)
	items = vecItems(t, v)
	require.Len(t, items, 2)
	back, err := ScValToNative(items[1])
	require.NoError(t, err)
	assert.Equal(t, account, back)
}

func TestSingleTupleVariantWrapping(t *testing.T) {
	c := newTestConverter()

	v, err := c.ConvertEnumToScVal(map[string]any{"tag": "Wrapped", "values": []any{3, "xlm"}}, assetMetadata())
	require.NoError(t, err)
	items := vecItems(t, v)
	require.Len(t, items, 2)
	assert.Equal(t, "Wrapped", symbolOf(t, items[0]))

	inner := vecItems(t, items[1])
	require.Len(t, inner, 2)
	assert.Equal(t, uint32(3), u32Of(t, inner[0]))
	assert.Equal(t, "xlm", symbolOf(t, inner[1]))
}

func TestVariantErrors(t *testing.T) {
	c := newTestConverter()

	_, err := c.ConvertEnumToScVal(map[string]any{"tag": "Bogus"}, assetMetadata())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidEnumValue))
	assert.Contains(t, err.Error(), "Native")

	_, err = c.ConvertEnumToScVal(map[string]any{"tag": "Pair", "values": []any{3}}, assetMetadata())
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = c.ConvertEnumToScVal(map[string]any{"tag": 5}, assetMetadata())
	assert.True(t, errors.Is(err, domain.ErrInvalidEnumValue))
}

func TestIntegerEnum(t *testing.T) {
	c := newTestConverter()
	color := &domain.EnumMetadata{
		Name: "Color",
		Variants: []domain.EnumVariant{
			{Name: "Red", Kind: domain.VariantInteger, Value: u32Ptr(10)},
			{Name: "Green", Kind: domain.VariantInteger, Value: u32Ptr(20)},
			{Name: "Blue", Kind: domain.VariantInteger},
		},
	}

	tests := []struct {
		name  string
		input any
		want  uint32
	}{
		{name: "discriminant object", input: map[string]any{"enum": 20}, want: 20},
		{name: "tag object", input: map[string]any{"tag": "Red"}, want: 10},
		{name: "bare name", input: "Green", want: 20},
		{name: "number", input: 10, want: 10},
		{name: "index default", input: "Blue", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := c.ConvertEnumToScVal(tt.input, color)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u32Of(t, v))
		})
	}

	_, err := c.ConvertEnumToScVal("Purple", color)
	assert.True(t, errors.Is(err, domain.ErrInvalidEnumValue))

	_, err = c.ConvertEnumToScVal(map[string]any{"enum": -1}, color)
	assert.True(t, errors.Is(err, domain.ErrInvalidEnumValue))
}

func TestEnumThroughParameter(t *testing.T) {
	c := newTestConverter()
	param := &domain.FunctionParameter{Name: "assets", Type: "Vec<Asset>", EnumMetadata: assetMetadata()}

	v, err := c.ValueToScVal([]any{
		map[string]any{"tag": "Native"},
		map[string]any{"tag": "Pair", "values": []any{1, "a"}},
	}, "Vec<Asset>", param)
	require.NoError(t, err)

	items := vecItems(t, v)
	require.Len(t, items, 2)
	assert.Len(t, vecItems(t, items[0]), 1)
	assert.Len(t, vecItems(t, items[1]), 3)
}

func TestEnumWithoutMetadata(t *testing.T) {
	c := newTestConverter()

	v, err := c.ValueToScVal(map[string]any{"tag": "Amount", "values": []any{"42", true}}, "Unknown", nil)
	require.NoError(t, err)
	items := vecItems(t, v)
	require.Len(t, items, 3)
	assert.Equal(t, "Amount", symbolOf(t, items[0]))
	assert.Equal(t, "42", string(*items[1].Str))
	assert.True(t, *items[2].B)

	v, err = c.ValueToScVal(map[string]any{"tag": "Count", "values": []any{7}}, "Unknown", nil)
	require.NoError(t, err)
	items = vecItems(t, v)
	native, err := ScValToNative(items[1])
	require.NoError(t, err)
	assert.Equal(t, "7", native.(interface{ String() string }).String())
}
