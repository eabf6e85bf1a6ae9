package soroban

import (
	"sort"
	"strconv"

	"github.com/samber/lo"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// ConvertStruct encodes a record against its schema. Named structs become a
// map keyed by field symbols; tuple-structs (components named "0", "1", …)
// become a vector.
func (c *Converter) ConvertStruct(raw any, typ string, param *domain.FunctionParameter) (xdr.ScVal, error) {
	value, err := domain.ClassifyRecord(raw)
	if err != nil {
		return xdr.ScVal{}, withContext(err, typ, "")
	}
	path := ""
	if param != nil {
		path = param.Name
	}
	return c.structToScVal(value, typ, param, path)
}

func (c *Converter) structToScVal(value domain.Value, typ string, param *domain.FunctionParameter, path string) (xdr.ScVal, error) {
	if param == nil || len(param.Components) == 0 {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrSchemaMissing, typ, path,
			"no field schema for struct type %q", typ)
	}

	if param.IsTupleStruct() {
		return c.tupleStructToScVal(value, typ, param, path)
	}

	record, ok := value.(domain.Record)
	if !ok {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected an object, got %s", value.Kind())
	}

	for _, name := range sortedKeys(record.Fields) {
		if _, ok := param.Component(name); !ok {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrSchemaMissing, typ, joinPath(path, name),
				"field %q has no schema component", name)
		}
	}

	entries := make([]xdr.ScMapEntry, 0, len(param.Components))
	for i := range param.Components {
		comp := &param.Components[i]
		fieldPath := joinPath(path, comp.Name)

		raw, present := record.Fields[comp.Name]
		if !present && !comp.IsOptional() {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, fieldPath, "missing field %q", comp.Name)
		}

		val, err := c.toScVal(raw, comp.Type, comp, fieldPath)
		if err != nil {
			return xdr.ScVal{}, err
		}
		entries = append(entries, xdr.ScMapEntry{Key: symbolScVal(comp.Name), Val: val})
	}

	if err := SortMapEntries(entries); err != nil {
		return xdr.ScVal{}, mapSortError(err, typ, path)
	}
	return mapScVal(entries), nil
}

func (c *Converter) tupleStructToScVal(value domain.Value, typ string, param *domain.FunctionParameter, path string) (xdr.ScVal, error) {
	var items []any
	switch v := value.(type) {
	case domain.List, domain.MapEntries:
		items, _ = domain.ListItems(v)
	case domain.Record:
		var err error
		items, err = positionalFields(v, typ, param, path)
		if err != nil {
			return xdr.ScVal{}, err
		}
	default:
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected an array for tuple struct, got %s", value.Kind())
	}

	if len(items) != len(param.Components) {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, path,
			"expected %d tuple fields, got %d", len(param.Components), len(items))
	}

	elems := make([]xdr.ScVal, len(items))
	for i := range param.Components {
		comp := &param.Components[i]
		elem, err := c.toScVal(items[i], comp.Type, comp, joinPath(path, comp.Name))
		if err != nil {
			return xdr.ScVal{}, err
		}
		elems[i] = elem
	}
	return vecScVal(elems), nil
}

// positionalFields orders a record keyed "0", "1", … by index
func positionalFields(record domain.Record, typ string, param *domain.FunctionParameter, path string) ([]any, error) {
	for _, name := range sortedKeys(record.Fields) {
		if _, ok := param.Component(name); !ok {
			return nil, domain.NewCodecError(domain.ErrSchemaMissing, typ, joinPath(path, name),
				"field %q has no schema component", name)
		}
	}
	return lo.Map(param.Components, func(comp domain.FunctionParameter, _ int) any {
		return record.Fields[comp.Name]
	}), nil
}

// sortedKeys orders numeric keys by value and the rest lexically
func sortedKeys(fields map[string]any) []string {
	keys := lo.Keys(fields)
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(keys[i])
		b, bErr := strconv.Atoi(keys[j])
		if aErr == nil && bErr == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}
