package soroban

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// maxSchemaDepth bounds how far recursive user-defined types are expanded
const maxSchemaDepth = 16

var specPrimitiveNames = map[xdr.ScSpecType]string{
	xdr.ScSpecTypeScSpecTypeBool:      "Bool",
	xdr.ScSpecTypeScSpecTypeVoid:      "Void",
	xdr.ScSpecTypeScSpecTypeU32:       "U32",
	xdr.ScSpecTypeScSpecTypeI32:       "I32",
	xdr.ScSpecTypeScSpecTypeU64:       "U64",
	xdr.ScSpecTypeScSpecTypeI64:       "I64",
	xdr.ScSpecTypeScSpecTypeTimepoint: "Timepoint",
	xdr.ScSpecTypeScSpecTypeDuration:  "Duration",
	xdr.ScSpecTypeScSpecTypeU128:      "U128",
	xdr.ScSpecTypeScSpecTypeI128:      "I128",
	xdr.ScSpecTypeScSpecTypeU256:      "U256",
	xdr.ScSpecTypeScSpecTypeI256:      "I256",
	xdr.ScSpecTypeScSpecTypeBytes:     "Bytes",
	xdr.ScSpecTypeScSpecTypeString:    "String",
	xdr.ScSpecTypeScSpecTypeSymbol:    "Symbol",
	xdr.ScSpecTypeScSpecTypeAddress:   "Address",
}

// DecodeSpecEntries reads concatenated XDR-encoded ScSpecEntry values, the
// format of a contract's "contractspecv0" custom section.
func DecodeSpecEntries(data []byte) ([]xdr.ScSpecEntry, error) {
	var entries []xdr.ScSpecEntry
	reader := bytes.NewReader(data)
	for reader.Len() > 0 {
		var entry xdr.ScSpecEntry
		if _, err := xdr.Unmarshal(reader, &entry); err != nil {
			return nil, fmt.Errorf("decoding spec entry %d: %w", len(entries), err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// EncodeSpecEntries is the inverse of DecodeSpecEntries
func EncodeSpecEntries(entries []xdr.ScSpecEntry) ([]byte, error) {
	var buf bytes.Buffer
	for i := range entries {
		if _, err := xdr.Marshal(&buf, &entries[i]); err != nil {
			return nil, fmt.Errorf("encoding spec entry %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

// specIndex holds the user-defined types of a contract by name
type specIndex struct {
	structs    map[string]xdr.ScSpecUdtStructV0
	unions     map[string]xdr.ScSpecUdtUnionV0
	enums      map[string]xdr.ScSpecUdtEnumV0
	errorEnums map[string]xdr.ScSpecUdtErrorEnumV0
}

// SchemaFromSpec builds the parameter schema tree of every function in a
// contract spec. Struct fields become components, unions become tagged
// variant catalogs, and enums and error enums become integer catalogs.
func SchemaFromSpec(name string, entries []xdr.ScSpecEntry) (*domain.ContractSchema, error) {
	idx := specIndex{
		structs:    map[string]xdr.ScSpecUdtStructV0{},
		unions:     map[string]xdr.ScSpecUdtUnionV0{},
		enums:      map[string]xdr.ScSpecUdtEnumV0{},
		errorEnums: map[string]xdr.ScSpecUdtErrorEnumV0{},
	}
	var functions []xdr.ScSpecFunctionV0

	for _, entry := range entries {
		switch entry.Kind {
		case xdr.ScSpecEntryKindScSpecEntryFunctionV0:
			functions = append(functions, *entry.FunctionV0)
		case xdr.ScSpecEntryKindScSpecEntryUdtStructV0:
			idx.structs[string(entry.UdtStructV0.Name)] = *entry.UdtStructV0
		case xdr.ScSpecEntryKindScSpecEntryUdtUnionV0:
			idx.unions[string(entry.UdtUnionV0.Name)] = *entry.UdtUnionV0
		case xdr.ScSpecEntryKindScSpecEntryUdtEnumV0:
			idx.enums[string(entry.UdtEnumV0.Name)] = *entry.UdtEnumV0
		case xdr.ScSpecEntryKindScSpecEntryUdtErrorEnumV0:
			idx.errorEnums[string(entry.UdtErrorEnumV0.Name)] = *entry.UdtErrorEnumV0
		}
	}

	schema := &domain.ContractSchema{Name: name}
	for _, fn := range functions {
		fnName := string(fn.Name)
		cf := domain.ContractFunction{Name: fnName, Doc: string(fn.Doc)}

		for _, in := range fn.Inputs {
			param, err := idx.parameter(string(in.Name), in.Type, joinPath(fnName, string(in.Name)), 0)
			if err != nil {
				return nil, err
			}
			param.Doc = string(in.Doc)
			cf.Inputs = append(cf.Inputs, param)
		}
		for i, out := range fn.Outputs {
			outName := "output"
			if i > 0 {
				outName = "output" + strconv.Itoa(i)
			}
			param, err := idx.parameter(outName, out, joinPath(fnName, outName), 0)
			if err != nil {
				return nil, err
			}
			cf.Outputs = append(cf.Outputs, param)
		}
		if len(cf.Outputs) == 0 {
			cf.Outputs = []domain.FunctionParameter{{Name: "output", Type: "Void"}}
		}
		schema.Functions = append(schema.Functions, cf)
	}
	return schema, nil
}

// parameter resolves a type definition into a named parameter. Generic
// containers carry one schema per type parameter.
func (idx specIndex) parameter(name string, def xdr.ScSpecTypeDef, path string, depth int) (domain.FunctionParameter, error) {
	typ, err := idx.typeString(def, path)
	if err != nil {
		return domain.FunctionParameter{}, err
	}
	param := domain.FunctionParameter{Name: name, Type: typ}
	if depth >= maxSchemaDepth {
		return param, nil
	}

	switch def.Type {
	case xdr.ScSpecTypeScSpecTypeUdt:
		return idx.udtParameter(param, def.Udt.Name, path, depth)

	case xdr.ScSpecTypeScSpecTypeOption:
		return idx.element(param, def.Option.ValueType, path, depth)
	case xdr.ScSpecTypeScSpecTypeVec:
		return idx.element(param, def.Vec.ElementType, path, depth)
	case xdr.ScSpecTypeScSpecTypeMap:
		return idx.typeParams(param, path, depth, def.Map.KeyType, def.Map.ValueType)
	case xdr.ScSpecTypeScSpecTypeResult:
		return idx.typeParams(param, path, depth, def.Result.OkType, def.Result.ErrorType)

	case xdr.ScSpecTypeScSpecTypeTuple:
		for i, elem := range def.Tuple.ValueTypes {
			comp, err := idx.parameter(strconv.Itoa(i), elem, fmt.Sprintf("%s[%d]", path, i), depth+1)
			if err != nil {
				return domain.FunctionParameter{}, err
			}
			param.Components = append(param.Components, comp)
		}
	}
	return param, nil
}

// typeParams resolves one schema per type parameter of a generic type
func (idx specIndex) typeParams(param domain.FunctionParameter, path string, depth int, defs ...xdr.ScSpecTypeDef) (domain.FunctionParameter, error) {
	for i, def := range defs {
		child, err := idx.parameter(strconv.Itoa(i), def, path, depth+1)
		if err != nil {
			return domain.FunctionParameter{}, err
		}
		param.TypeParams = append(param.TypeParams, child)
	}
	return param, nil
}

// element resolves the single type parameter of Vec or Option. Its
// components and enum metadata are also lifted onto the container so
// prompts can offer the element's variants.
func (idx specIndex) element(param domain.FunctionParameter, inner xdr.ScSpecTypeDef, path string, depth int) (domain.FunctionParameter, error) {
	param, err := idx.typeParams(param, path, depth, inner)
	if err != nil {
		return domain.FunctionParameter{}, err
	}
	param.Components = param.TypeParams[0].Components
	param.EnumMetadata = param.TypeParams[0].EnumMetadata
	return param, nil
}

func (idx specIndex) udtParameter(param domain.FunctionParameter, udt, path string, depth int) (domain.FunctionParameter, error) {
	if s, ok := idx.structs[udt]; ok {
		for _, field := range s.Fields {
			comp, err := idx.parameter(string(field.Name), field.Type, joinPath(path, string(field.Name)), depth+1)
			if err != nil {
				return domain.FunctionParameter{}, err
			}
			comp.Doc = string(field.Doc)
			param.Components = append(param.Components, comp)
		}
		return param, nil
	}
	if u, ok := idx.unions[udt]; ok {
		meta, err := idx.unionMetadata(u, path, depth)
		if err != nil {
			return domain.FunctionParameter{}, err
		}
		param.EnumMetadata = meta
		return param, nil
	}
	if e, ok := idx.enums[udt]; ok {
		param.EnumMetadata = integerMetadata(udt, lo.Map(e.Cases, func(c xdr.ScSpecUdtEnumCaseV0, _ int) integerCase {
			return integerCase{name: string(c.Name), value: uint32(c.Value)}
		}))
		return param, nil
	}
	if e, ok := idx.errorEnums[udt]; ok {
		param.EnumMetadata = integerMetadata(udt, lo.Map(e.Cases, func(c xdr.ScSpecUdtErrorEnumCaseV0, _ int) integerCase {
			return integerCase{name: string(c.Name), value: uint32(c.Value)}
		}))
		return param, nil
	}
	return domain.FunctionParameter{}, domain.NewCodecError(domain.ErrSchemaMissing, udt, path,
		"contract spec has no definition for type %q", udt)
}

func (idx specIndex) unionMetadata(u xdr.ScSpecUdtUnionV0, path string, depth int) (*domain.EnumMetadata, error) {
	meta := &domain.EnumMetadata{Name: string(u.Name)}
	for _, c := range u.Cases {
		switch c.Kind {
		case xdr.ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseVoidV0:
			meta.Variants = append(meta.Variants, domain.EnumVariant{
				Name: string(c.VoidCase.Name),
				Kind: domain.VariantVoid,
			})

		case xdr.ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseTupleV0:
			variant := domain.EnumVariant{Name: string(c.TupleCase.Name), Kind: domain.VariantTuple}
			payload := c.TupleCase.Type
			if len(payload) == 1 && payload[0].Type == xdr.ScSpecTypeScSpecTypeTuple {
				variant.IsSingleTuplePayload = true
				payload = payload[0].Tuple.ValueTypes
			}
			variantPath := joinPath(path, variant.Name)
			for i, def := range payload {
				p, err := idx.parameter(strconv.Itoa(i), def, fmt.Sprintf("%s[%d]", variantPath, i), depth+1)
				if err != nil {
					return nil, err
				}
				variant.PayloadTypes = append(variant.PayloadTypes, p.Type)
				variant.PayloadComponents = append(variant.PayloadComponents, p.Components)
				variant.PayloadEnumMetadata = append(variant.PayloadEnumMetadata, p.EnumMetadata)
				variant.PayloadTypeParams = append(variant.PayloadTypeParams, p.TypeParams)
			}
			meta.Variants = append(meta.Variants, variant)

		default:
			return nil, domain.NewCodecError(domain.ErrUnsupportedType, meta.Name, path, "unknown union case kind %d", c.Kind)
		}
	}
	return meta, nil
}

type integerCase struct {
	name  string
	value uint32
}

func integerMetadata(name string, cases []integerCase) *domain.EnumMetadata {
	return &domain.EnumMetadata{
		Name: name,
		Variants: lo.Map(cases, func(c integerCase, _ int) domain.EnumVariant {
			value := c.value
			return domain.EnumVariant{Name: c.name, Kind: domain.VariantInteger, Value: &value}
		}),
	}
}

// typeString renders a spec type definition in the Vec<…>/Map<…,…> notation
func (idx specIndex) typeString(def xdr.ScSpecTypeDef, path string) (string, error) {
	if name, ok := specPrimitiveNames[def.Type]; ok {
		return name, nil
	}

	generic := func(base string, params ...xdr.ScSpecTypeDef) (string, error) {
		parts := make([]string, len(params))
		for i, p := range params {
			s, err := idx.typeString(p, path)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return base + "<" + strings.Join(parts, ",") + ">", nil
	}

	switch def.Type {
	case xdr.ScSpecTypeScSpecTypeOption:
		return generic("Option", def.Option.ValueType)
	case xdr.ScSpecTypeScSpecTypeResult:
		return generic("Result", def.Result.OkType, def.Result.ErrorType)
	case xdr.ScSpecTypeScSpecTypeVec:
		return generic("Vec", def.Vec.ElementType)
	case xdr.ScSpecTypeScSpecTypeMap:
		return generic("Map", def.Map.KeyType, def.Map.ValueType)
	case xdr.ScSpecTypeScSpecTypeTuple:
		return generic("Tuple", def.Tuple.ValueTypes...)
	case xdr.ScSpecTypeScSpecTypeBytesN:
		return fmt.Sprintf("BytesN<%d>", uint32(def.BytesN.N)), nil
	case xdr.ScSpecTypeScSpecTypeUdt:
		return string(def.Udt.Name), nil
	}
	return strings.TrimPrefix(def.Type.String(), "ScSpecTypeScSpecType"), nil
}
