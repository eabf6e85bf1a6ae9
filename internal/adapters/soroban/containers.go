package soroban

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

const (
	resultOkKey  = "ok"
	resultErrKey = "err"
)

var containerArity = map[string]int{
	"Vec":    1,
	"Map":    2,
	"Option": 1,
	"Result": 2,
	"BytesN": 1,
}

func (c *Converter) containerToScVal(value domain.Value, gt GenericType, typ string, param *domain.FunctionParameter, path string) (xdr.ScVal, error) {
	if want, ok := containerArity[gt.BaseType]; ok && len(gt.Parameters) != want {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, path,
			"%s takes %d type parameters, got %d", gt.BaseType, want, len(gt.Parameters))
	}

	switch gt.BaseType {
	case "Vec":
		return c.vecToScVal(value, gt.Parameters[0], typ, param, path)
	case "Map":
		return c.mapToScVal(value, gt.Parameters[0], gt.Parameters[1], typ, param, path)
	case "Option":
		return c.optionToScVal(value, gt.Parameters[0], param, path)
	case "Result":
		return c.resultToScVal(value, gt.Parameters[0], gt.Parameters[1], typ, param, path)
	case "Tuple":
		return c.tupleToScVal(value, gt.Parameters, typ, param, path)
	case "BytesN":
		return c.encodePrimitive(rawOf(value), typ, path)
	}
	return xdr.ScVal{}, domain.NewCodecError(domain.ErrUnsupportedType, typ, path, "unknown generic type %q", gt.BaseType)
}

func (c *Converter) vecToScVal(value domain.Value, elemType, typ string, param *domain.FunctionParameter, path string) (xdr.ScVal, error) {
	items, ok := domain.ListItems(value)
	if !ok {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected an array, got %s", value.Kind())
	}

	elemParam := c.typeParams(param, []string{elemType}, 0, path)[0]
	elems := make([]xdr.ScVal, len(items))
	for i, item := range items {
		elem, err := c.toScVal(item, elemType, elemParam, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return xdr.ScVal{}, err
		}
		elems[i] = elem
	}
	return vecScVal(elems), nil
}

// mapToScVal encodes each entry with its own declared types, then sorts the
// entries canonically.
func (c *Converter) mapToScVal(value domain.Value, keyType, valueType, typ string, param *domain.FunctionParameter, path string) (xdr.ScVal, error) {
	entries, err := mapEntriesOf(value, typ, path)
	if err != nil {
		return xdr.ScVal{}, err
	}

	params := c.typeParams(param, []string{keyType, valueType}, 1, path)
	keyParam, valueParam := params[0], params[1]

	wire := make([]xdr.ScMapEntry, len(entries))
	for i, entry := range entries {
		entryPath := fmt.Sprintf("%s[%d]", path, i)

		kt, err := entryType(entry.KeyType, keyType, typ, entryPath+".key")
		if err != nil {
			return xdr.ScVal{}, err
		}
		vt, err := entryType(entry.ValueType, valueType, typ, entryPath+".value")
		if err != nil {
			return xdr.ScVal{}, err
		}

		k, err := c.toScVal(entry.Key, kt, keyParam, entryPath+".key")
		if err != nil {
			return xdr.ScVal{}, err
		}
		v, err := c.toScVal(entry.Value, vt, valueParam, entryPath+".value")
		if err != nil {
			return xdr.ScVal{}, err
		}
		wire[i] = xdr.ScMapEntry{Key: k, Val: v}
	}

	if err := SortMapEntries(wire); err != nil {
		return xdr.ScVal{}, mapSortError(err, typ, path)
	}
	return mapScVal(wire), nil
}

func mapEntriesOf(value domain.Value, typ, path string) ([]domain.MapEntry, error) {
	switch v := value.(type) {
	case domain.MapEntries:
		return v.Entries, nil
	case domain.List:
		if len(v.Items) == 0 {
			return nil, nil
		}
		return nil, domain.NewCodecError(domain.ErrTypeMismatch, typ, path,
			"expected map entries of the form {key, value}, got a plain array")
	case domain.Record:
		keys := make([]string, 0, len(v.Fields))
		for k := range v.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]domain.MapEntry, len(keys))
		for i, k := range keys {
			entries[i] = domain.MapEntry{Key: k, Value: v.Fields[k]}
		}
		return entries, nil
	}
	return nil, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected map entries, got %s", value.Kind())
}

// entryType resolves a per-entry type hint against the container's declared type
func entryType(hint, declared, typ, path string) (string, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" || hint == declared {
		return declared, nil
	}
	return "", domain.NewCodecError(domain.ErrTypeMismatch, typ, path,
		"entry declares type %s but the map expects %s", hint, declared)
}

func mapSortError(err error, typ, path string) error {
	var dup duplicateKeyError
	if errors.As(err, &dup) {
		return domain.NewCodecError(domain.ErrValidation, typ, path, "%s", dup.Error())
	}
	return domain.NewCodecError(domain.ErrValidation, typ, path, "%s", err.Error())
}

// optionToScVal encodes absence as void and presence as the bare inner
// value. Some(x) is not wrapped, so Option<Option<T>> cannot distinguish
// Some(None) from None.
func (c *Converter) optionToScVal(value domain.Value, innerType string, param *domain.FunctionParameter, path string) (xdr.ScVal, error) {
	if isAbsent(value) {
		return voidScVal(), nil
	}
	return c.toScVal(value, innerType, c.typeParams(param, []string{innerType}, 0, path)[0], path)
}

func isAbsent(value domain.Value) bool {
	switch v := value.(type) {
	case domain.Null:
		return true
	case domain.Primitive:
		s, ok := v.Raw.(string)
		return ok && s == ""
	}
	return false
}

func (c *Converter) resultToScVal(value domain.Value, okType, errType, typ string, param *domain.FunctionParameter, path string) (xdr.ScVal, error) {
	record, ok := value.(domain.Record)
	if !ok {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, path, "expected {ok: value} or {err: value}, got %s", value.Kind())
	}

	okVal, hasOk := record.Fields[resultOkKey]
	errVal, hasErr := record.Fields[resultErrKey]
	if hasOk == hasErr || len(record.Fields) != 1 {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, path, "expected exactly one of {ok} or {err}")
	}

	params := c.typeParams(param, []string{okType, errType}, 0, path)
	key, payload, payloadParam := resultOkKey, okVal, params[0]
	if hasErr {
		key, payload, payloadParam = resultErrKey, errVal, params[1]
	}

	encoded, err := c.toScVal(payload, payloadParam.Type, payloadParam, joinPath(path, key))
	if err != nil {
		return xdr.ScVal{}, err
	}
	return mapScVal([]xdr.ScMapEntry{{Key: symbolScVal(key), Val: encoded}}), nil
}

func (c *Converter) tupleToScVal(value domain.Value, elemTypes []string, typ string, param *domain.FunctionParameter, path string) (xdr.ScVal, error) {
	items, ok := domain.ListItems(value)
	if !ok {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected an array, got %s", value.Kind())
	}
	if len(items) != len(elemTypes) {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, path,
			"expected %d tuple elements, got %d", len(elemTypes), len(items))
	}

	elems := make([]xdr.ScVal, len(items))
	for i, item := range items {
		elemParam := &domain.FunctionParameter{Type: elemTypes[i]}
		if param.IsTupleStruct() && i < len(param.Components) {
			*elemParam = param.Components[i]
			elemParam.Type = elemTypes[i]
		}
		elemParam.Name = fmt.Sprintf("%s[%d]", path, i)
		elem, err := c.toScVal(item, elemTypes[i], elemParam, elemParam.Name)
		if err != nil {
			return xdr.ScVal{}, err
		}
		elems[i] = elem
	}
	return vecScVal(elems), nil
}
