package soroban

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// intSpec is the value range of a wire integer type
type intSpec struct {
	bits   uint
	signed bool
}

var intSpecs = map[xdr.ScValType]intSpec{
	xdr.ScValTypeScvU32:       {32, false},
	xdr.ScValTypeScvI32:       {32, true},
	xdr.ScValTypeScvU64:       {64, false},
	xdr.ScValTypeScvI64:       {64, true},
	xdr.ScValTypeScvTimepoint: {64, false},
	xdr.ScValTypeScvDuration:  {64, false},
	xdr.ScValTypeScvU128:      {128, false},
	xdr.ScValTypeScvI128:      {128, true},
	xdr.ScValTypeScvU256:      {256, false},
	xdr.ScValTypeScvI256:      {256, true},
}

// narrowIntSpecs narrows the range of type names that share a 32-bit wire type
var narrowIntSpecs = map[string]intSpec{
	"U8":  {8, false},
	"U16": {16, false},
	"I8":  {8, true},
	"I16": {16, true},
}

func (s intSpec) min() *big.Int {
	if !s.signed {
		return new(big.Int)
	}
	return new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), s.bits-1))
}

func (s intSpec) max() *big.Int {
	bits := s.bits
	if s.signed {
		bits--
	}
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
}

func (s intSpec) contains(n *big.Int) bool {
	return n.Cmp(s.min()) >= 0 && n.Cmp(s.max()) <= 0
}

// parseBigInt reads an integer from a form value. Floats are accepted only
// when integral and exactly representable.
func parseBigInt(raw any) (*big.Int, error) {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, fmt.Errorf("empty integer literal")
		}
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("%q is not an integer", v)
		}
		return n, nil
	case json.Number:
		return parseBigInt(v.String())
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float32:
		return parseBigInt(float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return nil, fmt.Errorf("%v is not an integer", v)
		}
		if math.Abs(v) > 1<<53 {
			return nil, fmt.Errorf("%v exceeds the exact float range; pass it as a string", v)
		}
		return big.NewInt(int64(v)), nil
	case *big.Int:
		return new(big.Int).Set(v), nil
	}
	return nil, errNotInteger
}

var errNotInteger = errors.New("value is not a string or number")

var (
	twoPow64  = new(big.Int).Lsh(big.NewInt(1), 64)
	twoPow128 = new(big.Int).Lsh(big.NewInt(1), 128)
	twoPow256 = new(big.Int).Lsh(big.NewInt(1), 256)
	mask64    = new(big.Int).Sub(twoPow64, big.NewInt(1))
)

// u128Parts splits an unsigned or two's complement 128-bit value into limbs
func u128Parts(n *big.Int) (hi, lo uint64) {
	u := new(big.Int).Set(n)
	if u.Sign() < 0 {
		u.Add(u, twoPow128)
	}
	lo = new(big.Int).And(u, mask64).Uint64()
	hi = new(big.Int).Rsh(u, 64).Uint64()
	return hi, lo
}

func u256Limbs(n *big.Int) (*uint256.Int, error) {
	u := new(big.Int).Set(n)
	if u.Sign() < 0 {
		u.Add(u, twoPow256)
	}
	limbs, overflow := uint256.FromBig(u)
	if overflow {
		return nil, fmt.Errorf("%s overflows 256 bits", n)
	}
	return limbs, nil
}

func newUInt128(n *big.Int) xdr.UInt128Parts {
	hi, lo := u128Parts(n)
	return xdr.UInt128Parts{Hi: xdr.Uint64(hi), Lo: xdr.Uint64(lo)}
}

func newInt128(n *big.Int) xdr.Int128Parts {
	hi, lo := u128Parts(n)
	return xdr.Int128Parts{Hi: xdr.Int64(int64(hi)), Lo: xdr.Uint64(lo)}
}

func newUInt256(n *big.Int) (xdr.UInt256Parts, error) {
	limbs, err := u256Limbs(n)
	if err != nil {
		return xdr.UInt256Parts{}, err
	}
	return xdr.UInt256Parts{
		HiHi: xdr.Uint64(limbs[3]),
		HiLo: xdr.Uint64(limbs[2]),
		LoHi: xdr.Uint64(limbs[1]),
		LoLo: xdr.Uint64(limbs[0]),
	}, nil
}

func newInt256(n *big.Int) (xdr.Int256Parts, error) {
	limbs, err := u256Limbs(n)
	if err != nil {
		return xdr.Int256Parts{}, err
	}
	return xdr.Int256Parts{
		HiHi: xdr.Int64(int64(limbs[3])),
		HiLo: xdr.Uint64(limbs[2]),
		LoHi: xdr.Uint64(limbs[1]),
		LoLo: xdr.Uint64(limbs[0]),
	}, nil
}

func uint128ToBig(p xdr.UInt128Parts) *big.Int {
	n := new(big.Int).SetUint64(uint64(p.Hi))
	n.Lsh(n, 64)
	return n.Or(n, new(big.Int).SetUint64(uint64(p.Lo)))
}

func int128ToBig(p xdr.Int128Parts) *big.Int {
	n := new(big.Int).SetInt64(int64(p.Hi))
	n.Lsh(n, 64)
	return n.Add(n, new(big.Int).SetUint64(uint64(p.Lo)))
}

func uint256ToBig(p xdr.UInt256Parts) *big.Int {
	limbs := uint256.Int{uint64(p.LoLo), uint64(p.LoHi), uint64(p.HiLo), uint64(p.HiHi)}
	return limbs.ToBig()
}

func int256ToBig(p xdr.Int256Parts) *big.Int {
	limbs := uint256.Int{uint64(p.LoLo), uint64(p.LoHi), uint64(p.HiLo), uint64(p.HiHi)}
	n := limbs.ToBig()
	if int64(p.HiHi) < 0 {
		n.Sub(n, twoPow256)
	}
	return n
}
