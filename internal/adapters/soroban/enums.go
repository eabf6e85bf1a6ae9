package soroban

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// ConvertEnumToScVal encodes a tagged {tag, values?} or integer {enum: n}
// value. Integer enums become a single U32. Tagged variants become
// [tag, payload…], or [tag, [payload…]] for single-tuple payloads.
func (c *Converter) ConvertEnumToScVal(raw any, metadata *domain.EnumMetadata) (xdr.ScVal, error) {
	value, err := domain.Classify(raw)
	if err != nil {
		return xdr.ScVal{}, err
	}
	typ := ""
	if metadata != nil {
		typ = metadata.Name
	}
	return c.enumToScVal(value, typ, metadata, typ)
}

func (c *Converter) enumToScVal(value domain.Value, typ string, metadata *domain.EnumMetadata, path string) (xdr.ScVal, error) {
	if _, ok := value.(domain.IntEnum); ok || metadata.IsIntegerEnum() {
		return c.integerEnumToScVal(value, typ, metadata, path)
	}

	enum, err := asTaggedEnum(value, typ, path)
	if err != nil {
		return xdr.ScVal{}, err
	}

	if metadata == nil {
		return c.untypedEnumToScVal(enum, typ, path)
	}

	variant, ok := metadata.Variant(enum.Tag)
	if !ok {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrInvalidEnumValue, typ, path,
			"unknown variant %q (expected one of %s)", enum.Tag, strings.Join(metadata.VariantNames(), ", "))
	}

	switch variantKind(variant) {
	case domain.VariantVoid:
		if len(enum.Values) > 0 {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrInvalidEnumValue, typ, path,
				"variant %q takes no payload, got %d values", variant.Name, len(enum.Values))
		}
		return vecScVal([]xdr.ScVal{symbolScVal(variant.Name)}), nil

	case domain.VariantTuple:
		return c.tupleVariantToScVal(enum, variant, typ, path)

	default:
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrInvalidEnumValue, typ, path,
			"variant %q is an integer variant and cannot be given as a tagged value", variant.Name)
	}
}

func (c *Converter) tupleVariantToScVal(enum domain.Enum, variant *domain.EnumVariant, typ, path string) (xdr.ScVal, error) {
	if len(enum.Values) != len(variant.PayloadTypes) {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrValidation, typ, path,
			"variant %q expects %d payload values, got %d", variant.Name, len(variant.PayloadTypes), len(enum.Values))
	}

	payload := make([]xdr.ScVal, len(enum.Values))
	for i, raw := range enum.Values {
		param := variant.PayloadParameter(i)
		encoded, err := c.toScVal(raw, param.Type, &param, fmt.Sprintf("%s.%s[%d]", path, variant.Name, i))
		if err != nil {
			return xdr.ScVal{}, err
		}
		payload[i] = encoded
	}

	tag := symbolScVal(variant.Name)
	if len(payload) == 0 {
		return vecScVal([]xdr.ScVal{tag}), nil
	}
	if variant.IsSingleTuplePayload {
		return vecScVal([]xdr.ScVal{tag, vecScVal(payload)}), nil
	}
	return vecScVal(append([]xdr.ScVal{tag}, payload...)), nil
}

// integerEnumToScVal resolves a variant name or number to its discriminant
func (c *Converter) integerEnumToScVal(value domain.Value, typ string, metadata *domain.EnumMetadata, path string) (xdr.ScVal, error) {
	switch v := value.(type) {
	case domain.IntEnum:
		return u32ScVal(v.Discriminant), nil

	case domain.Enum:
		if len(v.Values) > 0 {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrInvalidEnumValue, typ, path,
				"integer variant %q takes no payload", v.Tag)
		}
		return discriminantOf(v.Tag, typ, metadata, path)

	case domain.Primitive:
		if s, ok := v.Raw.(string); ok {
			if _, isNumber := new(big.Int).SetString(strings.TrimSpace(s), 10); !isNumber {
				return discriminantOf(s, typ, metadata, path)
			}
		}
		n, err := parseBigInt(v.Raw)
		if err != nil || !intSpecs[xdr.ScValTypeScvU32].contains(n) {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrInvalidEnumValue, typ, path,
				"cannot resolve %s to an enum discriminant", describe(v.Raw))
		}
		return u32ScVal(uint32(n.Uint64())), nil
	}

	return xdr.ScVal{}, domain.NewCodecError(domain.ErrInvalidEnumValue, typ, path,
		"cannot resolve %s to an enum discriminant", value.Kind())
}

func discriminantOf(name, typ string, metadata *domain.EnumMetadata, path string) (xdr.ScVal, error) {
	if metadata == nil {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrInvalidEnumValue, typ, path,
			"no variant metadata to resolve %q", name)
	}
	for i, variant := range metadata.Variants {
		if variant.Name != name {
			continue
		}
		if variant.Value != nil {
			return u32ScVal(*variant.Value), nil
		}
		return u32ScVal(uint32(i)), nil
	}
	return xdr.ScVal{}, domain.NewCodecError(domain.ErrInvalidEnumValue, typ, path,
		"unknown variant %q (expected one of %s)", name, strings.Join(metadata.VariantNames(), ", "))
}

// asTaggedEnum accepts {tag, values?} and a bare variant name
func asTaggedEnum(value domain.Value, typ, path string) (domain.Enum, error) {
	switch v := value.(type) {
	case domain.Enum:
		return v, nil
	case domain.Primitive:
		if s, ok := v.Raw.(string); ok && s != "" {
			return domain.Enum{Tag: s}, nil
		}
	}
	return domain.Enum{}, domain.NewCodecError(domain.ErrInvalidEnumValue, typ, path,
		"expected a {tag, values} object, got %s", value.Kind())
}

func variantKind(v *domain.EnumVariant) domain.VariantKind {
	if v.Kind != "" {
		return v.Kind
	}
	if len(v.PayloadTypes) > 0 {
		return domain.VariantTuple
	}
	return domain.VariantVoid
}

// untypedEnumToScVal is the best-effort path for enum-shaped values without
// metadata. Payload types are guessed from the Go values, which loses
// fidelity for anything needing a type hint.
func (c *Converter) untypedEnumToScVal(enum domain.Enum, typ, path string) (xdr.ScVal, error) {
	c.log.Warn("encoding enum without variant metadata, payload types are inferred",
		"type", typ, "path", path, "payloads", len(enum.Values))

	if err := validateSymbol(enum.Tag); err != nil {
		return xdr.ScVal{}, domain.NewCodecError(domain.ErrInvalidEnumValue, typ, path, "%s", err.Error())
	}

	elems := make([]xdr.ScVal, 0, len(enum.Values)+1)
	elems = append(elems, symbolScVal(enum.Tag))
	for i, raw := range enum.Values {
		encoded, err := c.inferScVal(raw, fmt.Sprintf("%s.%s[%d]", path, enum.Tag, i))
		if err != nil {
			return xdr.ScVal{}, err
		}
		elems = append(elems, encoded)
	}
	return vecScVal(elems), nil
}

func validateSymbol(s string) error {
	if s == "" || len(s) > maxSymbolLength || !symbolPattern.MatchString(s) {
		return fmt.Errorf("%q is not a valid symbol", s)
	}
	return nil
}
