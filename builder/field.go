package builder

import "github.com/sharpgen/sharpgen/ir"

// FieldBuilder accumulates the configuration of a single field.
// Fields default to private access.
type FieldBuilder struct {
	sticky
	field ir.Field
}

// NewField creates an empty field builder.
func NewField() *FieldBuilder {
	return &FieldBuilder{}
}

// WithAccessModifier sets the field's access level.
func (b *FieldBuilder) WithAccessModifier(access ir.AccessModifier) *FieldBuilder {
	b.field.Access = access
	return b
}

// WithType sets the field's type name.
func (b *FieldBuilder) WithType(typeName string) *FieldBuilder {
	if b.requireArg(typeName, "field type") {
		b.field.Type = typeName
	}
	return b
}

// WithName sets the field's identifier.
func (b *FieldBuilder) WithName(name string) *FieldBuilder {
	if b.requireArg(name, "field name") {
		b.field.Name = name
	}
	return b
}

// MakeReadonly marks the field readonly.
func (b *FieldBuilder) MakeReadonly() *FieldBuilder {
	b.field.ReadOnly = true
	return b
}

// WithSummary sets the field's documentation text.
func (b *FieldBuilder) WithSummary(summary string) *FieldBuilder {
	if b.requireArg(summary, "field summary") {
		b.field.Summary = summary
	}
	return b
}

// Name returns the currently configured identifier. Used by member
// introspection, which scans attached builders before they are built.
func (b *FieldBuilder) Name() string {
	return b.field.Name
}

// Build validates the accumulated configuration and freezes the field.
func (b *FieldBuilder) Build() (ir.Field, error) {
	if b.err != nil {
		return ir.Field{}, b.err
	}
	if blank(b.field.Name) {
		return ir.Field{}, missing("field", "name")
	}
	if blank(b.field.Type) {
		return ir.Field{}, missing("field", "type")
	}
	return b.field, nil
}
