package builder

import (
	"github.com/sharpgen/sharpgen/csharp"
	"github.com/sharpgen/sharpgen/ir"
)

// InterfaceBuilder accumulates the configuration of an interface.
// Interfaces declare properties only.
type InterfaceBuilder struct {
	sticky
	iface ir.Interface
	props []*PropertyBuilder
}

// NewInterface creates an empty interface builder.
func NewInterface() *InterfaceBuilder {
	return &InterfaceBuilder{}
}

// WithAccessModifier sets the interface's access level.
func (b *InterfaceBuilder) WithAccessModifier(access ir.AccessModifier) *InterfaceBuilder {
	b.iface.Access = access
	return b
}

// WithName sets the interface's identifier.
func (b *InterfaceBuilder) WithName(name string) *InterfaceBuilder {
	if b.requireArg(name, "interface name") {
		b.iface.Name = name
	}
	return b
}

// WithSummary sets the interface's documentation text.
func (b *InterfaceBuilder) WithSummary(summary string) *InterfaceBuilder {
	if b.requireArg(summary, "interface summary") {
		b.iface.Summary = summary
	}
	return b
}

// Implements appends inherited interface names.
func (b *InterfaceBuilder) Implements(names ...string) *InterfaceBuilder {
	for _, n := range names {
		if b.requireArg(n, "interface name") {
			b.iface.Implements = append(b.iface.Implements, n)
		}
	}
	return b
}

// AddProperty attaches a property builder.
func (b *InterfaceBuilder) AddProperty(p *PropertyBuilder) *InterfaceBuilder {
	b.props = append(b.props, p)
	return b
}

// HasMember reports whether a property with the given name is attached.
// Interfaces carry properties only, so any other kind reports false. A
// nil comparison defaults to Caseless.
func (b *InterfaceBuilder) HasMember(name string, kind MemberKind, cmp Comparison) bool {
	if kind != MemberProperty && kind != MemberAny {
		return false
	}
	if cmp == nil {
		cmp = Caseless
	}
	for _, p := range b.props {
		if cmp(p.Name(), name) {
			return true
		}
	}
	return false
}

// Build validates the accumulated configuration, builds every attached
// property in order and freezes the interface.
func (b *InterfaceBuilder) Build() (ir.Interface, error) {
	if b.err != nil {
		return ir.Interface{}, b.err
	}
	if blank(b.iface.Name) {
		return ir.Interface{}, missing("interface", "name")
	}

	iface := b.iface
	iface.Implements = append([]string(nil), b.iface.Implements...)

	iface.Properties = make([]ir.Property, 0, len(b.props))
	for _, pb := range b.props {
		p, err := pb.Build()
		if err != nil {
			return ir.Interface{}, err
		}
		iface.Properties = append(iface.Properties, p)
	}

	return iface, nil
}

// ToSourceCode builds the interface and renders it, passing the result
// through the cosmetic formatter when formatted is true.
func (b *InterfaceBuilder) ToSourceCode(formatted bool) (string, error) {
	i, err := b.Build()
	if err != nil {
		return "", err
	}
	return finishSource(csharp.Interface(i), formatted)
}

// String renders the interface unformatted.
func (b *InterfaceBuilder) String() string {
	src, err := b.ToSourceCode(false)
	if err != nil {
		return err.Error()
	}
	return src
}
