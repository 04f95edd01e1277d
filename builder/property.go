package builder

import (
	"github.com/sharpgen/sharpgen"
	"github.com/sharpgen/sharpgen/ir"
)

// PropertyBuilder accumulates the configuration of a property. Getter
// and setter each move independently through the four accessor states;
// the legality of their combination is checked at Build.
type PropertyBuilder struct {
	sticky
	prop ir.Property
}

// NewProperty creates an empty property builder.
func NewProperty() *PropertyBuilder {
	return &PropertyBuilder{}
}

// WithAccessModifier sets the property's access level.
func (b *PropertyBuilder) WithAccessModifier(access ir.AccessModifier) *PropertyBuilder {
	b.prop.Access = access
	return b
}

// MakeStatic marks the property static.
func (b *PropertyBuilder) MakeStatic() *PropertyBuilder {
	b.prop.Static = true
	return b
}

// WithType sets the property's type name.
func (b *PropertyBuilder) WithType(typeName string) *PropertyBuilder {
	if b.requireArg(typeName, "property type") {
		b.prop.Type = typeName
	}
	return b
}

// WithName sets the property's identifier.
func (b *PropertyBuilder) WithName(name string) *PropertyBuilder {
	if b.requireArg(name, "property name") {
		b.prop.Name = name
	}
	return b
}

// WithSummary sets the property's documentation text.
func (b *PropertyBuilder) WithSummary(summary string) *PropertyBuilder {
	if b.requireArg(summary, "property summary") {
		b.prop.Summary = summary
	}
	return b
}

// WithDefaultValue sets the property's initializer expression. Only
// auto-implemented properties may carry one; the combination is checked
// at Build.
func (b *PropertyBuilder) WithDefaultValue(expr string) *PropertyBuilder {
	if b.requireArg(expr, "property default value") {
		b.prop.Default = expr
	}
	return b
}

// WithGetter configures an auto-implemented getter.
func (b *PropertyBuilder) WithGetter() *PropertyBuilder {
	b.prop.Getter = ir.AutoAccessor()
	return b
}

// WithoutGetter omits the getter from output entirely.
func (b *PropertyBuilder) WithoutGetter() *PropertyBuilder {
	b.prop.Getter = ir.NoAccessor()
	return b
}

// WithGetterExpression configures a getter with a custom expression or
// block body.
func (b *PropertyBuilder) WithGetterExpression(expr string) *PropertyBuilder {
	if b.requireArg(expr, "getter expression") {
		b.prop.Getter = ir.ExpressionAccessor(expr)
	}
	return b
}

// WithSetter configures an auto-implemented setter.
func (b *PropertyBuilder) WithSetter() *PropertyBuilder {
	b.prop.Setter = ir.AutoAccessor()
	return b
}

// WithoutSetter omits the setter from output entirely.
func (b *PropertyBuilder) WithoutSetter() *PropertyBuilder {
	b.prop.Setter = ir.NoAccessor()
	return b
}

// WithSetterExpression configures a setter with a custom expression or
// block body.
func (b *PropertyBuilder) WithSetterExpression(expr string) *PropertyBuilder {
	if b.requireArg(expr, "setter expression") {
		b.prop.Setter = ir.ExpressionAccessor(expr)
	}
	return b
}

// Name returns the currently configured identifier. Used by member
// introspection.
func (b *PropertyBuilder) Name() string {
	return b.prop.Name
}

// Build validates the accumulated configuration in a fixed order, first
// violation wins, and freezes the property.
func (b *PropertyBuilder) Build() (ir.Property, error) {
	if b.err != nil {
		return ir.Property{}, b.err
	}
	if blank(b.prop.Name) {
		return ir.Property{}, missing("property", "name")
	}
	if blank(b.prop.Type) {
		return ir.Property{}, missing("property", "type")
	}

	getter, setter := b.prop.Getter, b.prop.Setter
	if setter.State == ir.AccessorAuto && getter.State == ir.AccessorNone {
		return ir.Property{}, sharpgen.Errorf(sharpgen.CodeInvalidSyntaxCombination,
			"property %s: an auto setter requires an auto getter", b.prop.Name)
	}
	if setter.State == ir.AccessorAuto && getter.State == ir.AccessorExpression {
		return ir.Property{}, sharpgen.Errorf(sharpgen.CodeInvalidSyntaxCombination,
			"property %s: a custom getter cannot pair with an auto setter", b.prop.Name)
	}
	if b.prop.Default != "" &&
		(getter.State == ir.AccessorExpression || setter.State == ir.AccessorExpression) {
		return ir.Property{}, sharpgen.Errorf(sharpgen.CodeInvalidSyntaxCombination,
			"property %s: only auto-implemented properties may have a default value", b.prop.Name)
	}
	return b.prop, nil
}
