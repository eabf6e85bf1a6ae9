package soroban

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

func TestParseGenericType(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOK     bool
		wantBase   string
		wantParams []string
		wantErr    bool
	}{
		{name: "plain name", input: "U32", wantOK: false},
		{name: "custom name", input: "TransferArgs", wantOK: false},
		{name: "vec", input: "Vec<U32>", wantOK: true, wantBase: "Vec", wantParams: []string{"U32"}},
		{name: "map with nested vec", input: "Map<Symbol,Vec<U32>>", wantOK: true, wantBase: "Map", wantParams: []string{"Symbol", "Vec<U32>"}},
		{name: "whitespace is trimmed", input: " Map< Symbol , Vec<U32> > ", wantOK: true, wantBase: "Map", wantParams: []string{"Symbol", "Vec<U32>"}},
		{name: "nested map parameter", input: "Vec<Map<Address,I128>>", wantOK: true, wantBase: "Vec", wantParams: []string{"Map<Address,I128>"}},
		{name: "result", input: "Result<U64,Error>", wantOK: true, wantBase: "Result", wantParams: []string{"U64", "Error"}},
		{name: "tuple of three", input: "Tuple<U32,Vec<Bool>,Address>", wantOK: true, wantBase: "Tuple", wantParams: []string{"U32", "Vec<Bool>", "Address"}},
		{name: "bytesN", input: "BytesN<32>", wantOK: true, wantBase: "BytesN", wantParams: []string{"32"}},
		{name: "unbalanced open", input: "Vec<Map<U32,U32>", wantErr: true},
		{name: "unbalanced close", input: "Vec<U32>>", wantErr: true},
		{name: "empty parameter", input: "Map<U32,>", wantErr: true},
		{name: "no base", input: "<U32>", wantErr: true},
		{name: "trailing text", input: "Vec<U32>x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt, ok, err := ParseGenericType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantBase, gt.BaseType)
				assert.Equal(t, tt.wantParams, gt.Parameters)
			}
		})
	}
}
