package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		want    map[string]any
		wantErr bool
	}{
		{name: "none", want: map[string]any{}},
		{name: "scalars stay strings", flags: []string{"amount=100", "memo= hi there"}, want: map[string]any{"amount": "100", "memo": " hi there"}},
		{name: "value may contain equals", flags: []string{"data=a=b"}, want: map[string]any{"data": "a=b"}},
		{name: "empty value", flags: []string{"memo="}, want: map[string]any{"memo": ""}},
		{
			name:  "json values",
			flags: []string{`path=["a", 2]`, `asset={"tag":"Native"}`},
			want: map[string]any{
				"path":  []any{"a", json.Number("2")},
				"asset": map[string]any{"tag": "Native"},
			},
		},
		{name: "missing equals", flags: []string{"amount"}, wantErr: true},
		{name: "missing name", flags: []string{"=5"}, wantErr: true},
		{name: "duplicate", flags: []string{"a=1", "a=2"}, wantErr: true},
		{name: "bad json", flags: []string{"path=[1,"}, wantErr: true},
		{name: "text after json", flags: []string{"path=[1,2]junk"}, wantErr: true},
		{name: "bracket after json", flags: []string{"path=[1,2]]"}, wantErr: true},
		{name: "second json value", flags: []string{`asset={"tag":"A"} {}`}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgFlags(tt.flags)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
