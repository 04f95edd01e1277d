package builder

import (
	"github.com/sharpgen/sharpgen/csharp"
	"github.com/sharpgen/sharpgen/ir"
)

// StructBuilder accumulates the configuration of a struct. Structs
// carry fields, constructors and properties but no base class, and
// cannot be static.
type StructBuilder struct {
	sticky
	strct  ir.Struct
	fields []*FieldBuilder
	ctors  []*ConstructorBuilder
	props  []*PropertyBuilder
}

// NewStruct creates an empty struct builder.
func NewStruct() *StructBuilder {
	return &StructBuilder{}
}

// WithAccessModifier sets the struct's access level.
func (b *StructBuilder) WithAccessModifier(access ir.AccessModifier) *StructBuilder {
	b.strct.Access = access
	return b
}

// WithName sets the struct's identifier.
func (b *StructBuilder) WithName(name string) *StructBuilder {
	if b.requireArg(name, "struct name") {
		b.strct.Name = name
	}
	return b
}

// WithSummary sets the struct's documentation text.
func (b *StructBuilder) WithSummary(summary string) *StructBuilder {
	if b.requireArg(summary, "struct summary") {
		b.strct.Summary = summary
	}
	return b
}

// Implements appends interface names to the implemented-interface list.
func (b *StructBuilder) Implements(names ...string) *StructBuilder {
	for _, n := range names {
		if b.requireArg(n, "interface name") {
			b.strct.Implements = append(b.strct.Implements, n)
		}
	}
	return b
}

// AddField attaches a field builder.
func (b *StructBuilder) AddField(f *FieldBuilder) *StructBuilder {
	b.fields = append(b.fields, f)
	return b
}

// AddConstructor attaches a constructor builder.
func (b *StructBuilder) AddConstructor(c *ConstructorBuilder) *StructBuilder {
	b.ctors = append(b.ctors, c)
	return b
}

// AddProperty attaches a property builder.
func (b *StructBuilder) AddProperty(p *PropertyBuilder) *StructBuilder {
	b.props = append(b.props, p)
	return b
}

// HasMember reports whether a member with the given name and kind is
// attached to the builder. A nil comparison defaults to Caseless.
func (b *StructBuilder) HasMember(name string, kind MemberKind, cmp Comparison) bool {
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
// member in order and freezes the struct.
func (b *StructBuilder) Build() (ir.Struct, error) {
	if b.err != nil {
		return ir.Struct{}, b.err
	}
	if blank(b.strct.Name) {
		return ir.Struct{}, missing("struct", "name")
	}

	strct := b.strct
	strct.Implements = append([]string(nil), b.strct.Implements...)

	strct.Fields = make([]ir.Field, 0, len(b.fields))
	for _, fb := range b.fields {
		f, err := fb.Build()
		if err != nil {
			return ir.Struct{}, err
		}
		strct.Fields = append(strct.Fields, f)
	}

	strct.Constructors = make([]ir.Constructor, 0, len(b.ctors))
	for _, cb := range b.ctors {
		cb.setOwner(strct.Name, false)
		c, err := cb.Build()
		if err != nil {
			return ir.Struct{}, err
		}
		strct.Constructors = append(strct.Constructors, c)
	}

	strct.Properties = make([]ir.Property, 0, len(b.props))
	for _, pb := range b.props {
		p, err := pb.Build()
		if err != nil {
			return ir.Struct{}, err
		}
		strct.Properties = append(strct.Properties, p)
	}

	return strct, nil
}

// ToSourceCode builds the struct and renders it, passing the result
// through the cosmetic formatter when formatted is true.
func (b *StructBuilder) ToSourceCode(formatted bool) (string, error) {
	s, err := b.Build()
	if err != nil {
		return "", err
	}
	return finishSource(csharp.Struct(s), formatted)
}

// String renders the struct unformatted.
func (b *StructBuilder) String() string {
	src, err := b.ToSourceCode(false)
	if err != nil {
		return err.Error()
	}
	return src
}
