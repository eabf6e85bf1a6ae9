package soroban

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

// Converter turns chain-agnostic form values into Soroban wire values.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	registry TypeRegistry
	log      *slog.Logger
}

// NewConverter creates a converter backed by the given type registry
func NewConverter(registry TypeRegistry, log *slog.Logger) *Converter {
	if registry == nil {
		registry = DefaultTypeRegistry()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Converter{
		registry: registry,
		log:      log.With("component", "SorobanConverter"),
	}
}

// ValueToScVal encodes a form value as the given type. param carries the
// struct components or enum metadata the type needs, and may be nil for
// primitives and containers of primitives.
func (c *Converter) ValueToScVal(raw any, typ string, param *domain.FunctionParameter) (xdr.ScVal, error) {
	path := ""
	if param != nil {
		path = param.Name
	}
	return c.toScVal(raw, typ, param, path)
}

func (c *Converter) toScVal(raw any, typ string, param *domain.FunctionParameter, path string) (xdr.ScVal, error) {
	typ = strings.TrimSpace(typ)

	gt, generic, err := ParseGenericType(typ)
	if err != nil {
		return xdr.ScVal{}, withContext(err, typ, path)
	}

	// a declared struct reads every object as a record, whatever its keys
	if !generic && param != nil && len(param.Components) > 0 && param.EnumMetadata == nil {
		value, err := domain.ClassifyRecord(raw)
		if err != nil {
			return xdr.ScVal{}, withContext(err, typ, path)
		}
		return c.structToScVal(value, typ, param, path)
	}

	value, err := domain.Classify(raw)
	if err != nil {
		return xdr.ScVal{}, withContext(err, typ, path)
	}
	if generic {
		if !isGenericBase(gt.BaseType) {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrUnsupportedType, typ, path, "unknown generic type %q", gt.BaseType)
		}
		return c.containerToScVal(value, gt, typ, param, path)
	}

	switch value.(type) {
	case domain.Enum, domain.IntEnum:
		return c.enumToScVal(value, typ, enumMetadataOf(param), path)
	}

	if param != nil && param.EnumMetadata != nil {
		return c.enumToScVal(value, typ, param.EnumMetadata, path)
	}

	switch value.(type) {
	case domain.Record, domain.List, domain.MapEntries:
		if _, ok := c.registry.Lookup(typ); ok {
			return xdr.ScVal{}, domain.NewCodecError(domain.ErrTypeMismatch, typ, path, "expected a primitive, got %s", value.Kind())
		}
		return c.structToScVal(value, typ, param, path)
	}

	return c.encodePrimitive(rawOf(value), typ, path)
}

// rawOf unwraps a leaf value back to its raw form
func rawOf(v domain.Value) any {
	switch lv := v.(type) {
	case domain.Primitive:
		return lv.Raw
	case domain.Record:
		return lv.Fields
	case domain.List:
		return lv.Items
	case domain.MapEntries:
		return lv.Items
	}
	return nil
}

func enumMetadataOf(param *domain.FunctionParameter) *domain.EnumMetadata {
	if param == nil {
		return nil
	}
	return param.EnumMetadata
}

// typeParams builds the schema of each type parameter of a container. A
// parent without per-parameter schemas lends its components and enum
// metadata to its only non-primitive parameter, or to the primary one
// (the Map value, the Result ok) when there are several.
func (c *Converter) typeParams(parent *domain.FunctionParameter, types []string, primary int, path string) []*domain.FunctionParameter {
	params := make([]*domain.FunctionParameter, len(types))
	for i, typ := range types {
		params[i] = &domain.FunctionParameter{Name: path, Type: typ}
		if declared, ok := parent.TypeParam(i); ok {
			*params[i] = *declared
			params[i].Name = path
			params[i].Type = typ
		}
	}
	if parent == nil || len(parent.TypeParams) > 0 {
		return params
	}

	composite := lo.Filter(lo.Range(len(types)), func(i int, _ int) bool {
		return !c.IsPrimitiveType(types[i])
	})
	target := primary
	if len(composite) == 1 {
		target = composite[0]
	}
	if lo.Contains(composite, target) {
		params[target].Components = parent.Components
		params[target].EnumMetadata = parent.EnumMetadata
	}
	return params
}

// withContext fills in the location of a codec error raised without one
func withContext(err error, typ, path string) error {
	var codecErr *domain.CodecError
	if errors.As(err, &codecErr) {
		if codecErr.Path == "" {
			codecErr.Path = path
		}
		if codecErr.Type == "" {
			codecErr.Type = typ
		}
	}
	return err
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
