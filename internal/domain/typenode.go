package domain

// TypeNode is a parsed type expression. Leaf primitives carry the wire
// type they encode as; custom names have an empty Wire and need a schema.
type TypeNode struct {
	Name   string     `json:"name"`
	Wire   string     `json:"wire,omitempty"`
	Params []TypeNode `json:"params,omitempty"`
}
