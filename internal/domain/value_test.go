package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want ValueKind
	}{
		{name: "nil", raw: nil, want: KindNull},
		{name: "nil pointer", raw: (*string)(nil), want: KindNull},
		{name: "string", raw: "x", want: KindPrimitive},
		{name: "json number", raw: json.Number("12"), want: KindPrimitive},
		{name: "bytes", raw: []byte{1, 2}, want: KindPrimitive},
		{name: "record", raw: map[string]any{"a": 1}, want: KindRecord},
		{name: "typed map", raw: map[string]int{"a": 1}, want: KindRecord},
		{name: "list", raw: []any{1, 2}, want: KindList},
		{name: "typed slice", raw: []string{"a"}, want: KindList},
		{name: "empty list", raw: []any{}, want: KindList},
		{name: "enum", raw: map[string]any{"tag": "A"}, want: KindEnum},
		{name: "enum with values", raw: map[string]any{"tag": "A", "values": []any{1}}, want: KindEnum},
		{name: "tag plus other keys is a record", raw: map[string]any{"tag": "A", "owner": "x"}, want: KindRecord},
		{name: "integer enum", raw: map[string]any{"enum": 3}, want: KindIntEnum},
		{name: "key value entries", raw: []any{map[string]any{"key": "a", "value": 1}}, want: KindMapEntries},
		{
			name: "positional entries",
			raw:  []any{map[string]any{"0": map[string]any{"value": "a", "type": "Symbol"}, "1": map[string]any{"value": 1, "type": "U32"}}},
			want: KindMapEntries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Classify(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Kind())
		})
	}
}

func TestClassifyEnumDetails(t *testing.T) {
	v, err := Classify(map[string]any{"tag": "Pair", "values": []any{1, "b"}})
	require.NoError(t, err)
	enum := v.(Enum)
	assert.Equal(t, "Pair", enum.Tag)
	assert.Equal(t, []any{1, "b"}, enum.Values)

	v, err = Classify(map[string]any{"enum": json.Number("7")})
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v.(IntEnum).Discriminant)

	_, err = Classify(map[string]any{"tag": 1})
	assert.True(t, errors.Is(err, ErrInvalidEnumValue))

	_, err = Classify(map[string]any{"enum": 1.5})
	assert.True(t, errors.Is(err, ErrInvalidEnumValue))

	_, err = Classify(map[string]any{"tag": "A", "values": "nope"})
	assert.True(t, errors.Is(err, ErrInvalidEnumValue))
}

func TestClassifyMapEntryKeepsItems(t *testing.T) {
	raw := []any{map[string]any{"key": "a", "value": 1, "keyType": "Symbol"}}
	v, err := Classify(raw)
	require.NoError(t, err)

	entries := v.(MapEntries)
	require.Len(t, entries.Entries, 1)
	assert.Equal(t, "a", entries.Entries[0].Key)
	assert.Equal(t, "Symbol", entries.Entries[0].KeyType)

	items, ok := ListItems(v)
	require.True(t, ok)
	assert.Equal(t, raw, items)
}

func TestClassifyUnsupported(t *testing.T) {
	_, err := Classify(map[int]string{1: "a"})
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	_, err = Classify(struct{}{})
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestCodecErrorFormatting(t *testing.T) {
	err := NewCodecError(ErrValidation, "U32", "args.amount", "%s is out of range", "-1")
	assert.Equal(t, "validation error at args.amount (U32): -1 is out of range", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))

	notFound := FunctionNotFoundErr{Name: "tranfer", Suggestions: []string{"transfer"}}
	assert.True(t, errors.Is(notFound, ErrFunctionNotFound))
	assert.Contains(t, notFound.Error(), "transfer")
}

func TestSchemaHelpers(t *testing.T) {
	tuple := &FunctionParameter{Components: []FunctionParameter{{Name: "0"}, {Name: "1"}}}
	named := &FunctionParameter{Components: []FunctionParameter{{Name: "0"}, {Name: "b"}}}
	assert.True(t, tuple.IsTupleStruct())
	assert.False(t, named.IsTupleStruct())
	assert.False(t, (*FunctionParameter)(nil).IsTupleStruct())

	fn := ContractFunction{
		Name:    "transfer",
		Inputs:  []FunctionParameter{{Name: "to", Type: "Address"}, {Name: "amount", Type: "I128"}},
		Outputs: []FunctionParameter{{Name: "output", Type: "Bool"}},
	}
	assert.Equal(t, "transfer(to: Address, amount: I128) -> Bool", fn.Signature())

	variant := EnumVariant{Name: "Pair", PayloadTypes: []string{"U32"}}
	p := variant.PayloadParameter(0)
	assert.Equal(t, "U32", p.Type)
	assert.Equal(t, "Pair.0", p.Name)
}
