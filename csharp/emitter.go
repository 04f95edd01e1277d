// Package csharp renders finalized IR declarations as C# source text.
//
// Each renderer is a pure function of its input: rendering the same IR
// value twice yields byte-identical output. Output is assembled
// positionally into a buffer, never by placeholder substitution, so
// caller-supplied text can never collide with template tokens.
//
// Containers render their children unformatted and join them with
// newlines; cosmetic formatting is applied only at the outermost
// ToSourceCode boundary by the caller.
package csharp

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/sharpgen/sharpgen/ir"
)

// Field renders a field declaration.
func Field(f ir.Field) string {
	var buf bytes.Buffer
	writeDoc(&buf, f.Summary)

	buf.WriteString(f.Access.Keyword())
	buf.WriteString(" ")
	if f.ReadOnly {
		buf.WriteString("readonly ")
	}
	buf.WriteString(f.Type)
	buf.WriteString(" ")
	buf.WriteString(f.Name)
	buf.WriteString(";")
	return buf.String()
}

// Property renders a property declaration. A property with no
// configured accessor at all renders with a statement terminator
// instead of an accessor block.
func Property(p ir.Property) string {
	var buf bytes.Buffer
	writeDoc(&buf, p.Summary)

	buf.WriteString(p.Access.Keyword())
	buf.WriteString(" ")
	if p.Static {
		buf.WriteString("static ")
	}
	buf.WriteString(p.Type)
	buf.WriteString(" ")
	buf.WriteString(p.Name)

	if !p.HasAccessors() {
		buf.WriteString(";")
		return buf.String()
	}

	buf.WriteString(" { ")
	if g := accessor("get", p.Getter); g != "" {
		buf.WriteString(g)
		buf.WriteString(" ")
	}
	if s := accessor("set", p.Setter); s != "" {
		buf.WriteString(s)
		buf.WriteString(" ")
	}
	buf.WriteString("}")

	if p.Default != "" {
		buf.WriteString(" = ")
		buf.WriteString(p.Default)
		buf.WriteString(";")
	}
	return buf.String()
}

// accessor renders one accessor for its configured state. Unconfigured
// accessors reach this point only when the property has at least one
// configured accessor, and render as the bare auto form.
func accessor(keyword string, a ir.Accessor) string {
	switch a.State {
	case ir.AccessorNone:
		return ""
	case ir.AccessorExpression:
		if strings.HasPrefix(strings.TrimSpace(a.Expression), "{") {
			// Block body: splice directly after the keyword.
			return keyword + " " + a.Expression
		}
		return keyword + " => " + a.Expression + ";"
	default:
		return keyword + ";"
	}
}

// Constructor renders a constructor declaration. Static constructors
// carry no access modifier.
func Constructor(c ir.Constructor) string {
	var buf bytes.Buffer
	writeDoc(&buf, c.Summary)

	if c.Static {
		buf.WriteString("static ")
	} else {
		buf.WriteString(c.Access.Keyword())
		buf.WriteString(" ")
	}
	buf.WriteString(c.TypeName)
	buf.WriteString("(")
	for i, p := range c.Parameters {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Type)
		buf.WriteString(" ")
		buf.WriteString(p.Name)
	}
	buf.WriteString(")")

	if c.BaseArgs != nil {
		buf.WriteString(" : base(")
		buf.WriteString(strings.Join(c.BaseArgs, ", "))
		buf.WriteString(")")
	}

	buf.WriteString("\n{\n")
	for _, p := range c.Parameters {
		if p.AssignTo == "" {
			continue
		}
		buf.WriteString("this.")
		buf.WriteString(p.AssignTo)
		buf.WriteString(" = ")
		buf.WriteString(p.Name)
		buf.WriteString(";\n")
	}
	buf.WriteString("}")
	return buf.String()
}

// Class renders a class declaration with its members in order: fields,
// constructors, properties.
func Class(c ir.Class) string {
	var buf bytes.Buffer
	writeDoc(&buf, c.Summary)

	buf.WriteString(c.Access.Keyword())
	buf.WriteString(" ")
	if c.Static {
		buf.WriteString("static ")
	}
	buf.WriteString("class ")
	buf.WriteString(c.Name)
	writeInheritance(&buf, c.BaseClass, c.Implements)
	buf.WriteString("\n{\n")

	var blocks []string
	for _, f := range c.Fields {
		blocks = append(blocks, Field(f))
	}
	for _, ctor := range c.Constructors {
		blocks = append(blocks, Constructor(ctor))
	}
	for _, p := range c.Properties {
		blocks = append(blocks, Property(p))
	}
	writeBody(&buf, blocks, "\n\n")
	return buf.String()
}

// Struct renders a struct declaration.
func Struct(s ir.Struct) string {
	var buf bytes.Buffer
	writeDoc(&buf, s.Summary)

	buf.WriteString(s.Access.Keyword())
	buf.WriteString(" struct ")
	buf.WriteString(s.Name)
	writeInheritance(&buf, "", s.Implements)
	buf.WriteString("\n{\n")

	var blocks []string
	for _, f := range s.Fields {
		blocks = append(blocks, Field(f))
	}
	for _, ctor := range s.Constructors {
		blocks = append(blocks, Constructor(ctor))
	}
	for _, p := range s.Properties {
		blocks = append(blocks, Property(p))
	}
	writeBody(&buf, blocks, "\n\n")
	return buf.String()
}

// Interface renders an interface declaration.
func Interface(i ir.Interface) string {
	var buf bytes.Buffer
	writeDoc(&buf, i.Summary)

	buf.WriteString(i.Access.Keyword())
	buf.WriteString(" interface ")
	buf.WriteString(i.Name)
	writeInheritance(&buf, "", i.Implements)
	buf.WriteString("\n{\n")

	var blocks []string
	for _, p := range i.Properties {
		blocks = append(blocks, Property(p))
	}
	writeBody(&buf, blocks, "\n\n")
	return buf.String()
}

// Enum renders an enumeration declaration. Flags enumerations carry a
// [Flags] attribute.
func Enum(e ir.Enum) string {
	var buf bytes.Buffer
	writeDoc(&buf, e.Summary)

	if e.Flags {
		buf.WriteString("[Flags]\n")
	}
	buf.WriteString(e.Access.Keyword())
	buf.WriteString(" enum ")
	buf.WriteString(e.Name)
	buf.WriteString("\n{\n")

	var blocks []string
	for _, m := range e.Members {
		blocks = append(blocks, EnumMember(m))
	}
	writeBody(&buf, blocks, "\n")
	return buf.String()
}

// EnumMember renders a single enumeration member.
func EnumMember(m ir.EnumMember) string {
	var buf bytes.Buffer
	writeDoc(&buf, m.Summary)

	buf.WriteString(m.Name)
	if m.Value != nil {
		buf.WriteString(" = ")
		buf.WriteString(strconv.FormatInt(*m.Value, 10))
	}
	buf.WriteString(",")
	return buf.String()
}

// Namespace renders a namespace declaration: using-directives first,
// then nested declarations in order classes, structs, interfaces,
// enumerations.
func Namespace(n ir.Namespace) string {
	var buf bytes.Buffer

	for _, u := range n.Usings {
		buf.WriteString("using ")
		buf.WriteString(u)
		buf.WriteString(";\n")
	}
	if len(n.Usings) > 0 {
		buf.WriteString("\n")
	}

	buf.WriteString("namespace ")
	buf.WriteString(n.Name)
	buf.WriteString("\n{\n")

	var blocks []string
	for _, c := range n.Classes {
		blocks = append(blocks, Class(c))
	}
	for _, s := range n.Structs {
		blocks = append(blocks, Struct(s))
	}
	for _, i := range n.Interfaces {
		blocks = append(blocks, Interface(i))
	}
	for _, e := range n.Enums {
		blocks = append(blocks, Enum(e))
	}
	writeBody(&buf, blocks, "\n\n")
	return buf.String()
}

// Declaration renders any top-level declaration by dispatching on its
// concrete kind.
func Declaration(d ir.Declaration) string {
	switch v := d.(type) {
	case ir.Class:
		return Class(v)
	case ir.Struct:
		return Struct(v)
	case ir.Interface:
		return Interface(v)
	case ir.Enum:
		return Enum(v)
	case ir.Namespace:
		return Namespace(v)
	default:
		return ""
	}
}

// writeBody writes the joined member blocks and the closing brace. An
// empty body closes immediately without a blank line.
func writeBody(buf *bytes.Buffer, blocks []string, sep string) {
	if len(blocks) > 0 {
		buf.WriteString(strings.Join(blocks, sep))
		buf.WriteString("\n")
	}
	buf.WriteString("}")
}

// writeInheritance writes the inheritance list: the base class, when
// present, always precedes the interface names, all comma-joined.
func writeInheritance(buf *bytes.Buffer, base string, implements []string) {
	names := make([]string, 0, len(implements)+1)
	if base != "" {
		names = append(names, base)
	}
	names = append(names, implements...)
	if len(names) == 0 {
		return
	}
	buf.WriteString(" : ")
	buf.WriteString(strings.Join(names, ", "))
}

// writeDoc writes an XML documentation block, one comment line per
// summary line. Writes nothing when the summary is empty.
func writeDoc(buf *bytes.Buffer, summary string) {
	if summary == "" {
		return
	}
	buf.WriteString("/// <summary>\n")
	for _, line := range strings.Split(summary, "\n") {
		buf.WriteString("/// ")
		buf.WriteString(strings.TrimSuffix(line, "\r"))
		buf.WriteString("\n")
	}
	buf.WriteString("/// </summary>\n")
}
