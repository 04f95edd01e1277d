package ir

// Property represents a property with independently configured getter
// and setter accessors.
type Property struct {
	// Access is the property's access level.
	Access AccessModifier

	// Static marks the property static.
	Static bool

	// Type is the property's type name. Required at build time.
	Type string

	// Name is the property identifier. Required at build time.
	Name string

	// Summary is the documentation text, empty when unset.
	Summary string

	// Default is the initializer expression, empty when unset. Only
	// auto-implemented properties may carry one.
	Default string

	// Getter and Setter hold the four-state accessor configuration.
	Getter Accessor
	Setter Accessor
}

// HasAccessors reports whether either accessor was configured. A
// property without any configured accessor renders with a statement
// terminator instead of an accessor block.
func (p Property) HasAccessors() bool {
	return p.Getter.Configured() || p.Setter.Configured()
}
