package builder

import (
	"github.com/sharpgen/sharpgen"
	"github.com/sharpgen/sharpgen/csharp"
	"github.com/sharpgen/sharpgen/ir"
)

// ClassBuilder accumulates the configuration of a class and its member
// builders. Members are built recursively at Build time; constructors
// receive the class's name and static flag just before they are built.
type ClassBuilder struct {
	sticky
	class  ir.Class
	fields []*FieldBuilder
	ctors  []*ConstructorBuilder
	props  []*PropertyBuilder
}

// NewClass creates an empty class builder.
func NewClass() *ClassBuilder {
	return &ClassBuilder{}
}

// WithAccessModifier sets the class's access level.
func (b *ClassBuilder) WithAccessModifier(access ir.AccessModifier) *ClassBuilder {
	b.class.Access = access
	return b
}

// WithName sets the class's identifier.
func (b *ClassBuilder) WithName(name string) *ClassBuilder {
	if b.requireArg(name, "class name") {
		b.class.Name = name
	}
	return b
}

// WithSummary sets the class's documentation text.
func (b *ClassBuilder) WithSummary(summary string) *ClassBuilder {
	if b.requireArg(summary, "class summary") {
		b.class.Summary = summary
	}
	return b
}

// MakeStatic marks the class static. A static class may declare at most
// one constructor; the rule is checked at Build.
func (b *ClassBuilder) MakeStatic() *ClassBuilder {
	b.class.Static = true
	return b
}

// WithBaseClass sets the base class name. The base class is always
// listed before any interface in the rendered inheritance list.
func (b *ClassBuilder) WithBaseClass(name string) *ClassBuilder {
	if b.requireArg(name, "base class name") {
		b.class.BaseClass = name
	}
	return b
}

// Implements appends interface names to the implemented-interface list.
// The list keeps insertion order and tolerates duplicates.
func (b *ClassBuilder) Implements(names ...string) *ClassBuilder {
	for _, n := range names {
		if b.requireArg(n, "interface name") {
			b.class.Implements = append(b.class.Implements, n)
		}
	}
	return b
}

// AddField attaches a field builder.
func (b *ClassBuilder) AddField(f *FieldBuilder) *ClassBuilder {
	b.fields = append(b.fields, f)
	return b
}

// AddConstructor attaches a constructor builder.
func (b *ClassBuilder) AddConstructor(c *ConstructorBuilder) *ClassBuilder {
	b.ctors = append(b.ctors, c)
	return b
}

// AddProperty attaches a property builder.
func (b *ClassBuilder) AddProperty(p *PropertyBuilder) *ClassBuilder {
	b.props = append(b.props, p)
	return b
}

// HasMember reports whether a member with the given name and kind is
// attached to the builder. It scans the builders added so far, not only
// finalized IR. A nil comparison defaults to Caseless.
func (b *ClassBuilder) HasMember(name string, kind MemberKind, cmp Comparison) bool {
	if cmp == nil {
		cmp = Caseless
	}
	if kind == MemberField || kind == MemberAny {
		for _, f := range b.fields {
			if cmp(f.Name(), name) {
				return true
			}
		}
	}
	if kind == MemberProperty || kind == MemberAny {
		for _, p := range b.props {
			if cmp(p.Name(), name) {
				return true
			}
		}
	}
	return false
}

// Build validates the accumulated configuration, builds every attached
// member in order and freezes the class.
func (b *ClassBuilder) Build() (ir.Class, error) {
	if b.err != nil {
		return ir.Class{}, b.err
	}
	if blank(b.class.Name) {
		return ir.Class{}, missing("class", "name")
	}
	if b.class.Static && len(b.ctors) > 1 {
		return ir.Class{}, sharpgen.Errorf(sharpgen.CodeInvalidSyntaxCombination,
			"static class %s may declare at most one constructor", b.class.Name)
	}

	class := b.class
	class.Implements = append([]string(nil), b.class.Implements...)

	class.Fields = make([]ir.Field, 0, len(b.fields))
	for _, fb := range b.fields {
		f, err := fb.Build()
		if err != nil {
			return ir.Class{}, err
		}
		class.Fields = append(class.Fields, f)
	}

	class.Constructors = make([]ir.Constructor, 0, len(b.ctors))
	for _, cb := range b.ctors {
		cb.setOwner(class.Name, class.Static)
		c, err := cb.Build()
		if err != nil {
			return ir.Class{}, err
		}
		class.Constructors = append(class.Constructors, c)
	}

	class.Properties = make([]ir.Property, 0, len(b.props))
	for _, pb := range b.props {
		p, err := pb.Build()
		if err != nil {
			return ir.Class{}, err
		}
		class.Properties = append(class.Properties, p)
	}

	return class, nil
}

// ToSourceCode builds the class and renders it, passing the result
// through the cosmetic formatter when formatted is true.
func (b *ClassBuilder) ToSourceCode(formatted bool) (string, error) {
	c, err := b.Build()
	if err != nil {
		return "", err
	}
	return finishSource(csharp.Class(c), formatted)
}

// String renders the class unformatted. Build failures are returned as
// the error text; use ToSourceCode to handle them explicitly.
func (b *ClassBuilder) String() string {
	src, err := b.ToSourceCode(false)
	if err != nil {
		return err.Error()
	}
	return src
}
