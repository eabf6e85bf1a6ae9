package soroban

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stellar/go-stellar-sdk/xdr"
)

// TypeRegistry maps a type name to the wire primitive it encodes as.
// Custom contract type names resolve through the same table.
type TypeRegistry interface {
	Lookup(typeName string) (xdr.ScValType, bool)
}

// MapTypeRegistry is a TypeRegistry backed by a plain map
type MapTypeRegistry map[string]xdr.ScValType

// Lookup implements TypeRegistry
func (r MapTypeRegistry) Lookup(typeName string) (xdr.ScValType, bool) {
	t, ok := r[typeName]
	return t, ok
}

// Names returns the registered type names in sorted order
func (r MapTypeRegistry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultTypeRegistry returns the built-in Soroban primitive table
func DefaultTypeRegistry() MapTypeRegistry {
	return MapTypeRegistry{
		"Bool":      xdr.ScValTypeScvBool,
		"Void":      xdr.ScValTypeScvVoid,
		"U8":        xdr.ScValTypeScvU32,
		"U16":       xdr.ScValTypeScvU32,
		"U32":       xdr.ScValTypeScvU32,
		"I8":        xdr.ScValTypeScvI32,
		"I16":       xdr.ScValTypeScvI32,
		"I32":       xdr.ScValTypeScvI32,
		"U64":       xdr.ScValTypeScvU64,
		"I64":       xdr.ScValTypeScvI64,
		"Timepoint": xdr.ScValTypeScvTimepoint,
		"Duration":  xdr.ScValTypeScvDuration,
		"U128":      xdr.ScValTypeScvU128,
		"I128":      xdr.ScValTypeScvI128,
		"U256":      xdr.ScValTypeScvU256,
		"I256":      xdr.ScValTypeScvI256,
		"Bytes":     xdr.ScValTypeScvBytes,
		"String":    xdr.ScValTypeScvString,
		"Symbol":    xdr.ScValTypeScvSymbol,
		"Address":   xdr.ScValTypeScvAddress,
	}
}

// scValTypeNames maps the short names accepted in config files to wire types
var scValTypeNames = map[string]xdr.ScValType{
	"bool":      xdr.ScValTypeScvBool,
	"void":      xdr.ScValTypeScvVoid,
	"u32":       xdr.ScValTypeScvU32,
	"i32":       xdr.ScValTypeScvI32,
	"u64":       xdr.ScValTypeScvU64,
	"i64":       xdr.ScValTypeScvI64,
	"timepoint": xdr.ScValTypeScvTimepoint,
	"duration":  xdr.ScValTypeScvDuration,
	"u128":      xdr.ScValTypeScvU128,
	"i128":      xdr.ScValTypeScvI128,
	"u256":      xdr.ScValTypeScvU256,
	"i256":      xdr.ScValTypeScvI256,
	"bytes":     xdr.ScValTypeScvBytes,
	"string":    xdr.ScValTypeScvString,
	"symbol":    xdr.ScValTypeScvSymbol,
	"address":   xdr.ScValTypeScvAddress,
}

// NewTypeRegistry returns the default table extended with aliases, where each
// alias maps a custom type name to a wire primitive name such as "i128".
func NewTypeRegistry(aliases map[string]string) (MapTypeRegistry, error) {
	registry := DefaultTypeRegistry()
	for name, target := range aliases {
		t, ok := scValTypeNames[strings.ToLower(target)]
		if !ok {
			return nil, fmt.Errorf("type alias %s: unknown wire type %q", name, target)
		}
		registry[name] = t
	}
	return registry, nil
}
