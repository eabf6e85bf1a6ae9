package soroban

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/require"
)

func newTestConverter() *Converter {
	return NewConverter(DefaultTypeRegistry(), nil)
}

func testAccount(t *testing.T, fill byte) string {
	t.Helper()
	s, err := strkey.Encode(strkey.VersionByteAccountID, bytes.Repeat([]byte{fill}, 32))
	require.NoError(t, err)
	return s
}

func testContract(t *testing.T, fill byte) string {
	t.Helper()
	s, err := strkey.Encode(strkey.VersionByteContract, bytes.Repeat([]byte{fill}, 32))
	require.NoError(t, err)
	return s
}

func xdrBytes(t *testing.T, v xdr.ScVal) []byte {
	t.Helper()
	b, err := v.MarshalBinary()
	require.NoError(t, err)
	return b
}

func requireSameScVal(t *testing.T, want, got xdr.ScVal) {
	t.Helper()
	require.Equal(t, xdrBytes(t, want), xdrBytes(t, got))
}

func vecItems(t *testing.T, v xdr.ScVal) []xdr.ScVal {
	t.Helper()
	require.Equal(t, xdr.ScValTypeScvVec, v.Type)
	require.NotNil(t, v.Vec)
	require.NotNil(t, *v.Vec)
	return **v.Vec
}

func mapItems(t *testing.T, v xdr.ScVal) []xdr.ScMapEntry {
	t.Helper()
	require.Equal(t, xdr.ScValTypeScvMap, v.Type)
	require.NotNil(t, v.Map)
	require.NotNil(t, *v.Map)
	return **v.Map
}

func symbolOf(t *testing.T, v xdr.ScVal) string {
	t.Helper()
	require.Equal(t, xdr.ScValTypeScvSymbol, v.Type)
	return string(*v.Sym)
}

func u32Of(t *testing.T, v xdr.ScVal) uint32 {
	t.Helper()
	require.Equal(t, xdr.ScValTypeScvU32, v.Type)
	return uint32(*v.U32)
}

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad test integer %s", s)
	return n
}
