// Package ir defines the immutable intermediate representation for C#
// declarations. These values are produced by the builders in the
// builder package and consumed by the renderers in the csharp package.
//
// Every entity is a plain value; copy-with-override is ordinary Go
// value assignment. Once a value has been frozen by a builder's Build
// and attached to a parent, it is never mutated again.
package ir

// DeclKind identifies the category of a top-level declaration.
type DeclKind int

const (
	KindClass DeclKind = iota
	KindStruct
	KindInterface
	KindEnum
	KindNamespace
)

// String returns the string representation of the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case KindClass:
		return "Class"
	case KindStruct:
		return "Struct"
	case KindInterface:
		return "Interface"
	case KindEnum:
		return "Enum"
	case KindNamespace:
		return "Namespace"
	default:
		return "Unknown"
	}
}

// Declaration is the base interface for all top-level declarations.
type Declaration interface {
	// Kind returns the declaration kind for type switching.
	Kind() DeclKind

	// DeclName returns the declared identifier.
	DeclName() string

	// Doc returns the summary text, empty when no summary is set.
	Doc() string

	// Ensure only types in this package can implement Declaration.
	sealed()
}
