package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for codec operations
var (
	// ErrTypeMismatch is returned when a value's shape does not match the declared type
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidation is returned when a value has the right shape but violates a constraint
	ErrValidation = errors.New("validation error")

	// ErrSchemaMissing is returned when a struct field has no schema component
	ErrSchemaMissing = errors.New("schema missing")

	// ErrInvalidEnumValue is returned when an enum tag or discriminant cannot be resolved
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrUnsupportedType is returned when a type name is not known to the type registry
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrFunctionNotFound is returned when a contract schema has no function by that name
	ErrFunctionNotFound = errors.New("function not found")
)

// CodecError describes a failure while converting a single value.
// Kind is one of the sentinel errors above.
type CodecError struct {
	Kind error
	Type string
	Path string
	Msg  string
}

func (e *CodecError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Type != "" {
		fmt.Fprintf(&b, " (%s)", e.Type)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

func (e *CodecError) Unwrap() error {
	return e.Kind
}

// NewCodecError builds a CodecError with a formatted message
func NewCodecError(kind error, typ, path, format string, args ...any) *CodecError {
	return &CodecError{
		Kind: kind,
		Type: typ,
		Path: path,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// FunctionNotFoundErr is returned when a requested function is absent from a contract schema
type FunctionNotFoundErr struct {
	Name        string
	Suggestions []string
}

func (e FunctionNotFoundErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("function %q not found in contract schema", e.Name)
	}
	return fmt.Sprintf("function %q not found in contract schema - did you mean:\n  - %s",
		e.Name, strings.Join(e.Suggestions, "\n  - "))
}

func (e FunctionNotFoundErr) Unwrap() error {
	return ErrFunctionNotFound
}
