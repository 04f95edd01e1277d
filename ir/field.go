package ir

// Field represents a class or struct field.
type Field struct {
	// Access is the field's access level.
	Access AccessModifier

	// ReadOnly marks the field readonly.
	ReadOnly bool

	// Type is the field's type name. Required at build time.
	Type string

	// Name is the field identifier. Required at build time.
	Name string

	// Summary is the documentation text, empty when unset.
	Summary string
}
