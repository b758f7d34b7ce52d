package ast

// Built-in type names accepted in props and state declarations.
const (
	TypeString   = "string"
	TypeNumber   = "number"
	TypeBoolean  = "boolean"
	TypeArray    = "array"
	TypeObject   = "object"
	TypeAny      = "any"
	TypeFunction = "function"
	TypeNode     = "node"
)

var knownTypes = map[string]struct{}{
	TypeString:   {},
	TypeNumber:   {},
	TypeBoolean:  {},
	TypeArray:    {},
	TypeObject:   {},
	TypeAny:      {},
	TypeFunction: {},
	TypeNode:     {},
}

// IsKnownType reports whether name is a built-in type name.
func IsKnownType(name string) bool {
	_, ok := knownTypes[name]
	return ok
}

// TypeRef is a declared type: a name, optionally followed by "[]".
type TypeRef struct {
	Name  string
	Array bool
}

// Elem returns the element type of T[].
func (t TypeRef) Elem() TypeRef {
	return TypeRef{Name: t.Name}
}

func (t TypeRef) String() string {
	if t.Array {
		return t.Name + "[]"
	}
	return t.Name
}
