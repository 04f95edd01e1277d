package builder

import (
	"github.com/sharpgen/sharpgen/csharp"
	"github.com/sharpgen/sharpgen/ir"
)

// NamespaceBuilder accumulates the configuration of a namespace and the
// type builders nested in it.
type NamespaceBuilder struct {
	sticky
	ns      ir.Namespace
	classes []*ClassBuilder
	structs []*StructBuilder
	ifaces  []*InterfaceBuilder
	enums   []*EnumBuilder
}

// NewNamespace creates an empty namespace builder.
func NewNamespace() *NamespaceBuilder {
	return &NamespaceBuilder{}
}

// WithName sets the namespace's identifier.
func (b *NamespaceBuilder) WithName(name string) *NamespaceBuilder {
	if b.requireArg(name, "namespace name") {
		b.ns.Name = name
	}
	return b
}

// WithUsing appends using-directives in the given order.
func (b *NamespaceBuilder) WithUsing(paths ...string) *NamespaceBuilder {
	for _, p := range paths {
		if b.requireArg(p, "using directive") {
			b.ns.Usings = append(b.ns.Usings, p)
		}
	}
	return b
}

// AddClass attaches a class builder.
func (b *NamespaceBuilder) AddClass(c *ClassBuilder) *NamespaceBuilder {
	b.classes = append(b.classes, c)
	return b
}

// AddStruct attaches a struct builder.
func (b *NamespaceBuilder) AddStruct(s *StructBuilder) *NamespaceBuilder {
	b.structs = append(b.structs, s)
	return b
}

// AddInterface attaches an interface builder.
func (b *NamespaceBuilder) AddInterface(i *InterfaceBuilder) *NamespaceBuilder {
	b.ifaces = append(b.ifaces, i)
	return b
}

// AddEnum attaches an enumeration builder.
func (b *NamespaceBuilder) AddEnum(e *EnumBuilder) *NamespaceBuilder {
	b.enums = append(b.enums, e)
	return b
}

// Build validates the accumulated configuration, builds every attached
// declaration in order and freezes the namespace.
func (b *NamespaceBuilder) Build() (ir.Namespace, error) {
	if b.err != nil {
		return ir.Namespace{}, b.err
	}
	if blank(b.ns.Name) {
		return ir.Namespace{}, missing("namespace", "name")
	}

	ns := b.ns
	ns.Usings = append([]string(nil), b.ns.Usings...)

	ns.Classes = make([]ir.Class, 0, len(b.classes))
	for _, cb := range b.classes {
		c, err := cb.Build()
		if err != nil {
			return ir.Namespace{}, err
		}
		ns.Classes = append(ns.Classes, c)
	}

	ns.Structs = make([]ir.Struct, 0, len(b.structs))
	for _, sb := range b.structs {
		s, err := sb.Build()
		if err != nil {
			return ir.Namespace{}, err
		}
		ns.Structs = append(ns.Structs, s)
	}

	ns.Interfaces = make([]ir.Interface, 0, len(b.ifaces))
	for _, ib := range b.ifaces {
		i, err := ib.Build()
		if err != nil {
			return ir.Namespace{}, err
		}
		ns.Interfaces = append(ns.Interfaces, i)
	}

	ns.Enums = make([]ir.Enum, 0, len(b.enums))
	for _, eb := range b.enums {
		e, err := eb.Build()
		if err != nil {
			return ir.Namespace{}, err
		}
		ns.Enums = append(ns.Enums, e)
	}

	return ns, nil
}

// ToSourceCode builds the namespace and renders it with all nested
// declarations, passing the result through the cosmetic formatter when
// formatted is true. Nested declarations are always rendered
// unformatted; only this outermost call formats.
func (b *NamespaceBuilder) ToSourceCode(formatted bool) (string, error) {
	ns, err := b.Build()
	if err != nil {
		return "", err
	}
	return finishSource(csharp.Namespace(ns), formatted)
}

// String renders the namespace unformatted.
func (b *NamespaceBuilder) String() string {
	src, err := b.ToSourceCode(false)
	if err != nil {
		return err.Error()
	}
	return src
}
