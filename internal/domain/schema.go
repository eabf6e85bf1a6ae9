package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// VariantKind identifies how an enum variant is represented on the wire
type VariantKind string

const (
	VariantVoid    VariantKind = "void"
	VariantTuple   VariantKind = "tuple"
	VariantInteger VariantKind = "integer"
)

// FunctionParameter describes one formal parameter or a nested field.
// Schemas are read-only input to the codecs.
type FunctionParameter struct {
	Name         string              `json:"name" yaml:"name"`
	Type         string              `json:"type" yaml:"type"`
	Doc          string              `json:"doc,omitempty" yaml:"doc,omitempty"`
	Components   []FunctionParameter `json:"components,omitempty" yaml:"components,omitempty"`
	EnumMetadata *EnumMetadata       `json:"enumMetadata,omitempty" yaml:"enumMetadata,omitempty"`

	// TypeParams holds one schema per type parameter of a generic type: the
	// element of Vec and Option, key and value of Map, ok and err of Result
	TypeParams []FunctionParameter `json:"typeParams,omitempty" yaml:"typeParams,omitempty"`
}

// IsTupleStruct reports whether every component is named by its zero-based index
func (p *FunctionParameter) IsTupleStruct() bool {
	if p == nil || len(p.Components) == 0 {
		return false
	}
	for i, c := range p.Components {
		if c.Name != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

// TypeParam returns the schema of the i-th type parameter, if declared
func (p *FunctionParameter) TypeParam(i int) (*FunctionParameter, bool) {
	if p == nil || i < 0 || i >= len(p.TypeParams) {
		return nil, false
	}
	return &p.TypeParams[i], true
}

// IsOptional reports whether the parameter's type is Option<…>
func (p *FunctionParameter) IsOptional() bool {
	return p != nil && IsOptionType(p.Type)
}

// IsOptionType reports whether a type expression is Option<…>
func IsOptionType(typ string) bool {
	return strings.HasPrefix(strings.TrimSpace(typ), "Option<")
}

// Component returns the component with the given name
func (p *FunctionParameter) Component(name string) (*FunctionParameter, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.Components {
		if p.Components[i].Name == name {
			return &p.Components[i], true
		}
	}
	return nil, false
}

// EnumMetadata is the variant catalog of a contract enum or union
type EnumMetadata struct {
	Name     string        `json:"name" yaml:"name"`
	Variants []EnumVariant `json:"variants" yaml:"variants"`
}

// IsIntegerEnum reports whether every variant carries an integer discriminant
func (m *EnumMetadata) IsIntegerEnum() bool {
	if m == nil || len(m.Variants) == 0 {
		return false
	}
	for _, v := range m.Variants {
		if v.Kind != VariantInteger {
			return false
		}
	}
	return true
}

// Variant looks up a variant by name
func (m *EnumMetadata) Variant(name string) (*EnumVariant, bool) {
	if m == nil {
		return nil, false
	}
	for i := range m.Variants {
		if m.Variants[i].Name == name {
			return &m.Variants[i], true
		}
	}
	return nil, false
}

// VariantNames lists the variant names in declaration order
func (m *EnumMetadata) VariantNames() []string {
	if m == nil {
		return nil
	}
	names := make([]string, len(m.Variants))
	for i, v := range m.Variants {
		names[i] = v.Name
	}
	return names
}

// EnumVariant describes a single variant
type EnumVariant struct {
	Name string      `json:"name" yaml:"name"`
	Kind VariantKind `json:"kind" yaml:"kind"`

	// PayloadTypes holds the type string of each payload element of a tuple variant
	PayloadTypes []string `json:"payloadTypes,omitempty" yaml:"payloadTypes,omitempty"`

	// PayloadComponents holds struct components for payload elements that are structs
	PayloadComponents [][]FunctionParameter `json:"payloadComponents,omitempty" yaml:"payloadComponents,omitempty"`

	// PayloadEnumMetadata holds variant catalogs for payload elements that are enums
	PayloadEnumMetadata []*EnumMetadata `json:"payloadEnumMetadata,omitempty" yaml:"payloadEnumMetadata,omitempty"`

	// PayloadTypeParams holds type parameter schemas for generic payload elements
	PayloadTypeParams [][]FunctionParameter `json:"payloadTypeParams,omitempty" yaml:"payloadTypeParams,omitempty"`

	// Value is the explicit discriminant of an integer variant
	Value *uint32 `json:"value,omitempty" yaml:"value,omitempty"`

	// IsSingleTuplePayload marks a variant whose single payload is a tuple that
	// the UI flattens into parallel values
	IsSingleTuplePayload bool `json:"isSingleTuplePayload,omitempty" yaml:"isSingleTuplePayload,omitempty"`
}

// PayloadParameter builds the schema for the i-th payload element
func (v *EnumVariant) PayloadParameter(i int) FunctionParameter {
	param := FunctionParameter{
		Name: fmt.Sprintf("%s.%d", v.Name, i),
	}
	if i < len(v.PayloadTypes) {
		param.Type = v.PayloadTypes[i]
	}
	if i < len(v.PayloadComponents) {
		param.Components = v.PayloadComponents[i]
	}
	if i < len(v.PayloadEnumMetadata) {
		param.EnumMetadata = v.PayloadEnumMetadata[i]
	}
	if i < len(v.PayloadTypeParams) {
		param.TypeParams = v.PayloadTypeParams[i]
	}
	return param
}

// ContractFunction is one callable entry point of a contract
type ContractFunction struct {
	Name    string              `json:"name" yaml:"name"`
	Doc     string              `json:"doc,omitempty" yaml:"doc,omitempty"`
	Inputs  []FunctionParameter `json:"inputs" yaml:"inputs"`
	Outputs []FunctionParameter `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// Signature renders the function as name(a: T, b: U) -> R
func (f *ContractFunction) Signature() string {
	inputs := make([]string, len(f.Inputs))
	for i, in := range f.Inputs {
		inputs[i] = fmt.Sprintf("%s: %s", in.Name, in.Type)
	}
	sig := fmt.Sprintf("%s(%s)", f.Name, strings.Join(inputs, ", "))
	switch len(f.Outputs) {
	case 0:
	case 1:
		sig += " -> " + f.Outputs[0].Type
	default:
		outputs := make([]string, len(f.Outputs))
		for i, out := range f.Outputs {
			outputs[i] = out.Type
		}
		sig += " -> (" + strings.Join(outputs, ", ") + ")"
	}
	return sig
}

// Input finds a declared input by name
func (f *ContractFunction) Input(name string) (*FunctionParameter, bool) {
	for i := range f.Inputs {
		if f.Inputs[i].Name == name {
			return &f.Inputs[i], true
		}
	}
	return nil, false
}

// Output returns the single output schema, or nil for void functions
func (f *ContractFunction) Output() *FunctionParameter {
	if len(f.Outputs) == 0 {
		return nil
	}
	return &f.Outputs[0]
}

// ContractSchema is the parsed interface of a deployed contract
type ContractSchema struct {
	Name      string             `json:"name,omitempty" yaml:"name,omitempty"`
	Functions []ContractFunction `json:"functions" yaml:"functions"`
}

// Function finds a function by name
func (s *ContractSchema) Function(name string) (*ContractFunction, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Functions {
		if s.Functions[i].Name == name {
			return &s.Functions[i], true
		}
	}
	return nil, false
}

// FunctionNames lists function names in declaration order
func (s *ContractSchema) FunctionNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.Functions))
	for i, f := range s.Functions {
		names[i] = f.Name
	}
	return names
}
