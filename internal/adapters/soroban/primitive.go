package soroban

import (
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

const maxSymbolLength = 32

var symbolPattern = regexp.MustCompile(`^[a-zA-Z0-9_]*$`)

// ParsePrimitive validates a leaf form value against a primitive type and
// returns its native form. Integers of 64 bits and wider come back as
// decimal strings.
func (c *Converter) ParsePrimitive(raw any, typ string) (any, error) {
	return c.parsePrimitive(raw, typ, "")
}

// PrimitiveToScVal builds the wire value for a primitive type
func (c *Converter) PrimitiveToScVal(raw any, typ string) (xdr.ScVal, error) {
	return c.encodePrimitive(raw, typ, "")
}

// IsPrimitiveType reports whether typ resolves to a wire primitive
func (c *Converter) IsPrimitiveType(typ string) bool {
	if gt, ok, err := ParseGenericType(typ); err == nil && ok {
		return gt.BaseType == "BytesN"
	}
	_, ok := c.registry.Lookup(typ)
	return ok
}

func (c *Converter) parsePrimitive(raw any, typ, path string) (any, error) {
	if n, ok, err := bytesNLength(typ); err != nil {
		return nil, err
	} else if ok {
		return parseBytesN(raw, n, typ, path)
	}

	wireType, ok := c.registry.Lookup(typ)
	if !ok {
		return nil, domain.NewCodecError(domain.ErrUnsupportedType, typ, path, "no wire primitive registered for %q", typ)
	}
	return parseWirePrimitive(raw, wireType, typ, path)
}

func (c *Converter) encodePrimitive(raw any, typ, path string) (xdr.ScVal, error) {
	if n, ok, err := bytesNLength(typ); err != nil {
		return xdr.ScVal{}, err
	} else if ok {
		b, err := parseBytesN(raw, n, typ, path)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return bytesScVal(b), nil
	}

	wireType, ok := c.registry.Lookup(typ)
	if !ok {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrUnsupportedType, typ, path, "no wire primitive registered for %q", typ)
	}
	native, err := parseWirePrimitive(raw, wireType, typ, path)
	if err != nil {
		return xdr.ScVal{}, err
	}
	c.log.Debug("encoded primitive", "type", typ, "wire", wireType.String())
	return nativeToScVal(native, wireType, typ, path)
}

func parseWirePrimitive(raw any, wireType xdr.ScValType, typ, path string) (any, error) {
	switch wireType {
	case xdr.ScValTypeScvVoid:
		return nil, nil

	case xdr.ScValTypeScvBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
		return nil, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected a boolean, got %s", describe(raw))

	case xdr.ScValTypeScvString, xdr.ScValTypeScvSymbol:
		s, ok := raw.(string)
		if !ok {
			return nil, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected a string, got %s", describe(raw))
		}
		if wireType == xdr.ScValTypeScvSymbol {
			if len(s) > maxSymbolLength || !symbolPattern.MatchString(s) {
				return nil, domain.NewCodecError(domain.ErrValidation, typ, path,
					"symbol %q must be at most %d characters of [a-zA-Z0-9_]", s, maxSymbolLength)
			}
		}
		return s, nil

	case xdr.ScValTypeScvAddress:
		s, ok := raw.(string)
		if !ok {
			return nil, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected an address string, got %s", describe(raw))
		}
		s = strings.TrimSpace(s)
		if !IsValidAddress(s) {
			return nil, domain.NewCodecError(domain.ErrValidation, typ, path, "invalid Stellar address %q", s)
		}
		return s, nil

	case xdr.ScValTypeScvBytes:
		return parseBytes(raw, typ, path)
	}

	if spec, ok := intSpecs[wireType]; ok {
		if narrow, ok := narrowIntSpecs[typ]; ok {
			spec = narrow
		}
		n, err := parseBigInt(raw)
		if err == errNotInteger {
			return nil, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected an integer, got %s", describe(raw))
		}
		if err != nil {
			return nil, domain.NewCodecError(domain.ErrValidation, typ, path, "%s", err.Error())
		}
		if !spec.contains(n) {
			return nil, domain.NewCodecError(domain.ErrValidation, typ, path,
				"%s is out of range [%s, %s]", n, spec.min(), spec.max())
		}
		switch wireType {
		case xdr.ScValTypeScvU32:
			return uint32(n.Uint64()), nil
		case xdr.ScValTypeScvI32:
			return int32(n.Int64()), nil
		default:
			return n.String(), nil
		}
	}

	return nil, domain.NewCodecError(domain.ErrUnsupportedType, typ, path, "wire type %s is not a primitive", wireType)
}

func parseBytes(raw any, typ, path string) ([]byte, error) {
	switch v := raw.(type) {
	case []byte:
		return v, nil
	case string:
		b, enc, err := DecodeBytes(v)
		if err != nil {
			return nil, domain.NewCodecError(domain.ErrValidation, typ, path, "invalid %s bytes: %s", enc, err.Error())
		}
		return b, nil
	}
	return nil, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected a bytes string, got %s", describe(raw))
}

func parseBytesN(raw any, n int, typ, path string) ([]byte, error) {
	b, err := parseBytes(raw, typ, path)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, domain.NewCodecError(domain.ErrValidation, typ, path,
			"expected %d bytes, got %d", n, len(b))
	}
	return b, nil
}

// bytesNLength extracts n from BytesN<n>
func bytesNLength(typ string) (int, bool, error) {
	if !strings.HasPrefix(strings.TrimSpace(typ), "BytesN") {
		return 0, false, nil
	}
	gt, ok, err := ParseGenericType(typ)
	if err != nil || !ok {
		return 0, false, err
	}
	if gt.BaseType != "BytesN" {
		return 0, false, nil
	}
	if len(gt.Parameters) != 1 {
		return 0, false, domain.NewCodecError(domain.ErrValidation, typ, "", "BytesN takes exactly one length parameter")
	}
	n, err := strconv.Atoi(gt.Parameters[0])
	if err != nil || n < 0 {
		return 0, false, domain.NewCodecError(domain.ErrValidation, typ, "", "invalid BytesN length %q", gt.Parameters[0])
	}
	return n, true, nil
}

// nativeToScVal wraps an already validated native value
func nativeToScVal(native any, wireType xdr.ScValType, typ, path string) (xdr.ScVal, error) {
	switch wireType {
	case xdr.ScValTypeScvVoid:
		return voidScVal(), nil
	case xdr.ScValTypeScvBool:
		b := native.(bool)
		return xdr.ScVal{Type: wireType, B: &b}, nil
	case xdr.ScValTypeScvU32:
		u := xdr.Uint32(native.(uint32))
		return xdr.ScVal{Type: wireType, U32: &u}, nil
	case xdr.ScValTypeScvI32:
		i := xdr.Int32(native.(int32))
		return xdr.ScVal{Type: wireType, I32: &i}, nil
	case xdr.ScValTypeScvString:
		s := xdr.ScString(native.(string))
		return xdr.ScVal{Type: wireType, Str: &s}, nil
	case xdr.ScValTypeScvSymbol:
		return symbolScVal(native.(string)), nil
	case xdr.ScValTypeScvBytes:
		return bytesScVal(native.([]byte)), nil
	case xdr.ScValTypeScvAddress:
		addr, err := newScAddress(native.(string))
		if err != nil {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, path, "invalid Stellar address %q: %s", native, err.Error())
		}
		return xdr.ScVal{Type: wireType, Address: &addr}, nil
	}

	n, ok := new(big.Int).SetString(native.(string), 10)
	if !ok {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, path, "%q is not an integer", native)
	}
	switch wireType {
	case xdr.ScValTypeScvU64:
		u := xdr.Uint64(n.Uint64())
		return xdr.ScVal{Type: wireType, U64: &u}, nil
	case xdr.ScValTypeScvI64:
		i := xdr.Int64(n.Int64())
		return xdr.ScVal{Type: wireType, I64: &i}, nil
	case xdr.ScValTypeScvTimepoint:
		t := xdr.TimePoint(n.Uint64())
		return xdr.ScVal{Type: wireType, Timepoint: &t}, nil
	case xdr.ScValTypeScvDuration:
		d := xdr.Duration(n.Uint64())
		return xdr.ScVal{Type: wireType, Duration: &d}, nil
	case xdr.ScValTypeScvU128:
		parts := newUInt128(n)
		return xdr.ScVal{Type: wireType, U128: &parts}, nil
	case xdr.ScValTypeScvI128:
		parts := newInt128(n)
		return xdr.ScVal{Type: wireType, I128: &parts}, nil
	case xdr.ScValTypeScvU256:
		parts, err := newUInt256(n)
		if err != nil {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, path, "%s", err.Error())
		}
		return xdr.ScVal{Type: wireType, U256: &parts}, nil
	case xdr.ScValTypeScvI256:
		parts, err := newInt256(n)
		if err != nil {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, path, "%s", err.Error())
		}
		return xdr.ScVal{Type: wireType, I256: &parts}, nil
	}

	return xdr.ScVal{}, domain.NewCodecError(domain.ErrUnsupportedType, typ, path, "wire type %s is not a primitive", wireType)
}

func voidScVal() xdr.ScVal {
	return xdr.ScVal{Type: xdr.ScValTypeScvVoid}
}

func symbolScVal(s string) xdr.ScVal {
	sym := xdr.ScSymbol(s)
	return xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &sym}
}

func bytesScVal(b []byte) xdr.ScVal {
	sb := xdr.ScBytes(b)
	return xdr.ScVal{Type: xdr.ScValTypeScvBytes, Bytes: &sb}
}

func u32ScVal(n uint32) xdr.ScVal {
	u := xdr.Uint32(n)
	return xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &u}
}

func vecScVal(items []xdr.ScVal) xdr.ScVal {
	vec := xdr.ScVec(items)
	vp := &vec
	return xdr.ScVal{Type: xdr.ScValTypeScvVec, Vec: &vp}
}

func mapScVal(entries []xdr.ScMapEntry) xdr.ScVal {
	m := xdr.ScMap(entries)
	mp := &m
	return xdr.ScVal{Type: xdr.ScValTypeScvMap, Map: &mp}
}

// describe names the shape of a raw value for error messages without
// echoing the value itself
func describe(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", raw)
}
