package ir

// Parameter represents a single constructor parameter.
type Parameter struct {
	// Type is the parameter's type name. Required at build time.
	Type string

	// Name is the parameter identifier. Required at build time.
	Name string

	// AssignTo names the member the parameter is assigned into inside
	// the constructor body. Empty for plain parameters.
	AssignTo string
}

// Constructor represents a constructor declaration.
type Constructor struct {
	// Access is the constructor's access level. Ignored in rendered
	// output when Static is set, since static constructors carry no
	// access modifier.
	Access AccessModifier

	// Static marks the constructor static. Injected by the owning type
	// builder, never set by the caller.
	Static bool

	// TypeName is the owning type's name. Injected by the owning type
	// builder, never set by the caller.
	TypeName string

	// Summary is the documentation text, empty when unset.
	Summary string

	// Parameters is the ordered parameter list.
	Parameters []Parameter

	// BaseArgs is the argument list of the base-constructor call. A nil
	// slice means no base call; an empty non-nil slice renders
	// ": base()".
	BaseArgs []string
}
