package soroban

import (
	"math/big"

	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// inferOrder is the sequence of integer types tried for untyped numbers
var inferOrder = []xdr.ScValType{
	xdr.ScValTypeScvU64,
	xdr.ScValTypeScvI64,
	xdr.ScValTypeScvU128,
	xdr.ScValTypeScvI128,
	xdr.ScValTypeScvU256,
	xdr.ScValTypeScvI256,
}

// inferScVal builds a wire value from a Go value alone. Strings stay
// strings, numbers take the narrowest 64-bit or wider integer type,
// records become symbol-keyed maps.
func (c *Converter) inferScVal(raw any, path string) (xdr.ScVal, error) {
	value, err := domain.Classify(raw)
	if err != nil {
		return xdr.ScVal{}, withContext(err, "", path)
	}

	switch v := value.(type) {
	case domain.Null:
		return voidScVal(), nil

	case domain.Primitive:
		switch p := v.Raw.(type) {
		case bool:
			return nativeToScVal(p, xdr.ScValTypeScvBool, "Bool", path)
		case string:
			return nativeToScVal(p, xdr.ScValTypeScvString, "String", path)
		case []byte:
			return bytesScVal(p), nil
		}
		n, err := parseBigInt(v.Raw)
		if err != nil {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrTypeMismatch, "", path, "cannot infer a wire type for %s", describe(v.Raw))
		}
		return inferInteger(n, path)

	case domain.List, domain.MapEntries:
		items, _ := domain.ListItems(v)
		elems := make([]xdr.ScVal, len(items))
		for i, item := range items {
			elem, err := c.inferScVal(item, path)
			if err != nil {
				return xdr.ScVal{}, err
			}
			elems[i] = elem
		}
		return vecScVal(elems), nil

	case domain.Record:
		entries := make([]xdr.ScMapEntry, 0, len(v.Fields))
		for _, name := range sortedKeys(v.Fields) {
			if err := validateSymbol(name); err != nil {
				return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, "", joinPath(path, name), "%s", err.Error())
			}
			val, err := c.inferScVal(v.Fields[name], joinPath(path, name))
			if err != nil {
				return xdr.ScVal{}, err
			}
			entries = append(entries, xdr.ScMapEntry{Key: symbolScVal(name), Val: val})
		}
		if err := SortMapEntries(entries); err != nil {
			return xdr.ScVal{}, mapSortError(err, "", path)
		}
		return mapScVal(entries), nil

	case domain.Enum:
		return c.untypedEnumToScVal(v, "", path)

	case domain.IntEnum:
		return u32ScVal(v.Discriminant), nil
	}

	return xdr.ScVal{}, domain.NewCodecError(domain.ErrTypeMismatch, "", path, "cannot infer a wire type for %s", value.Kind())
}

func inferInteger(n *big.Int, path string) (xdr.ScVal, error) {
	for _, t := range inferOrder {
		if intSpecs[t].contains(n) {
			return nativeToScVal(n.String(), t, t.String(), path)
		}
	}
	return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, "", path, "%s does not fit in 256 bits", n)
}
