package builder

import (
	"github.com/sharpgen/sharpgen"
	"github.com/sharpgen/sharpgen/csharp"
	"github.com/sharpgen/sharpgen/ir"
)

// EnumMemberBuilder accumulates the configuration of a single
// enumeration member.
type EnumMemberBuilder struct {
	sticky
	member ir.EnumMember
}

// NewEnumMember creates an empty enumeration member builder.
func NewEnumMember() *EnumMemberBuilder {
	return &EnumMemberBuilder{}
}

// WithName sets the member's identifier.
func (b *EnumMemberBuilder) WithName(name string) *EnumMemberBuilder {
	if b.requireArg(name, "enum member name") {
		b.member.Name = name
	}
	return b
}

// WithValue sets the member's explicit integral value.
func (b *EnumMemberBuilder) WithValue(value int64) *EnumMemberBuilder {
	v := value
	b.member.Value = &v
	return b
}

// WithSummary sets the member's documentation text.
func (b *EnumMemberBuilder) WithSummary(summary string) *EnumMemberBuilder {
	if b.requireArg(summary, "enum member summary") {
		b.member.Summary = summary
	}
	return b
}

// Name returns the currently configured identifier. Used by member
// introspection.
func (b *EnumMemberBuilder) Name() string {
	return b.member.Name
}

// Build validates the accumulated configuration and freezes the member.
func (b *EnumMemberBuilder) Build() (ir.EnumMember, error) {
	if b.err != nil {
		return ir.EnumMember{}, b.err
	}
	if blank(b.member.Name) {
		return ir.EnumMember{}, missing("enum member", "name")
	}
	member := b.member
	if b.member.Value != nil {
		v := *b.member.Value
		member.Value = &v
	}
	return member, nil
}

// EnumBuilder accumulates the configuration of an enumeration and its
// member builders.
type EnumBuilder struct {
	sticky
	enum    ir.Enum
	members []*EnumMemberBuilder
}

// NewEnum creates an empty enumeration builder.
func NewEnum() *EnumBuilder {
	return &EnumBuilder{}
}

// WithAccessModifier sets the enumeration's access level.
func (b *EnumBuilder) WithAccessModifier(access ir.AccessModifier) *EnumBuilder {
	b.enum.Access = access
	return b
}

// WithName sets the enumeration's identifier.
func (b *EnumBuilder) WithName(name string) *EnumBuilder {
	if b.requireArg(name, "enum name") {
		b.enum.Name = name
	}
	return b
}

// WithSummary sets the enumeration's documentation text.
func (b *EnumBuilder) WithSummary(summary string) *EnumBuilder {
	if b.requireArg(summary, "enum summary") {
		b.enum.Summary = summary
	}
	return b
}

// AsFlags marks the enumeration as a flags enum, making it eligible for
// automatic bitmask numbering at Build and adding the [Flags] attribute
// to rendered output.
func (b *EnumBuilder) AsFlags() *EnumBuilder {
	b.enum.Flags = true
	return b
}

// AddMember attaches a member builder.
func (b *EnumBuilder) AddMember(m *EnumMemberBuilder) *EnumBuilder {
	b.members = append(b.members, m)
	return b
}

// WithMember attaches a member with the given name.
func (b *EnumBuilder) WithMember(name string) *EnumBuilder {
	return b.AddMember(NewEnumMember().WithName(name))
}

// HasMember reports whether a member with the given name is attached.
// Only MemberEnumValue and MemberAny are meaningful for enumerations;
// any other kind reports false. A nil comparison defaults to Caseless.
func (b *EnumBuilder) HasMember(name string, kind MemberKind, cmp Comparison) bool {
	if kind != MemberEnumValue && kind != MemberAny {
		return false
	}
	if cmp == nil {
		cmp = Caseless
	}
	for _, m := range b.members {
		if cmp(m.Name(), name) {
			return true
		}
	}
	return false
}

// Build validates the accumulated configuration, applies flags
// auto-numbering, builds all members in order, rejects duplicate member
// names and freezes the enumeration.
func (b *EnumBuilder) Build() (ir.Enum, error) {
	if b.err != nil {
		return ir.Enum{}, b.err
	}
	if blank(b.enum.Name) {
		return ir.Enum{}, missing("enum", "name")
	}

	enum := b.enum
	enum.Members = make([]ir.EnumMember, 0, len(b.members))
	for _, mb := range b.members {
		m, err := mb.Build()
		if err != nil {
			return ir.Enum{}, err
		}
		enum.Members = append(enum.Members, m)
	}

	// Flags auto-numbering is all-or-nothing: a single explicit value
	// anywhere disables the pass for every member.
	if enum.Flags && !anyExplicitValue(enum.Members) {
		for i := range enum.Members {
			v := int64(0)
			if i > 0 {
				v = int64(1) << (i - 1)
			}
			enum.Members[i].Value = &v
		}
	}

	if dup := firstDuplicateName(enum.Members); dup != "" {
		return ir.Enum{}, sharpgen.Errorf(sharpgen.CodeInvalidSyntaxCombination,
			"enum %s declares member %s more than once", enum.Name, dup)
	}

	return enum, nil
}

func anyExplicitValue(members []ir.EnumMember) bool {
	for _, m := range members {
		if m.HasValue() {
			return true
		}
	}
	return false
}

// firstDuplicateName returns the first member name, in insertion order,
// that occurs at least twice. Comparison is name-sensitive.
func firstDuplicateName(members []ir.EnumMember) string {
	counts := make(map[string]int, len(members))
	for _, m := range members {
		counts[m.Name]++
	}
	for _, m := range members {
		if counts[m.Name] >= 2 {
			return m.Name
		}
	}
	return ""
}

// ToSourceCode builds the enumeration and renders it, passing the
// result through the cosmetic formatter when formatted is true.
func (b *EnumBuilder) ToSourceCode(formatted bool) (string, error) {
	e, err := b.Build()
	if err != nil {
		return "", err
	}
	return finishSource(csharp.Enum(e), formatted)
}

// String renders the enumeration unformatted.
func (b *EnumBuilder) String() string {
	src, err := b.ToSourceCode(false)
	if err != nil {
		return err.Error()
	}
	return src
}
