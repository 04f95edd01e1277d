// Package manifest loads YAML declaration manifests and assembles the
// corresponding namespace builders. A manifest describes one namespace:
// its using-directives and the classes, structs, interfaces and
// enumerations nested in it.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sharpgen/sharpgen/builder"
	"github.com/sharpgen/sharpgen/ir"
)

var validate = validator.New()

// Document is the root of a declaration manifest.
type Document struct {
	Namespace  string          `yaml:"namespace" validate:"required"`
	Usings     []string        `yaml:"usings"`
	Classes    []ClassDecl     `yaml:"classes" validate:"dive"`
	Structs    []StructDecl    `yaml:"structs" validate:"dive"`
	Interfaces []InterfaceDecl `yaml:"interfaces" validate:"dive"`
	Enums      []EnumDecl      `yaml:"enums" validate:"dive"`
}

// ClassDecl describes one class.
type ClassDecl struct {
	Name         string         `yaml:"name" validate:"required"`
	Access       string         `yaml:"access" validate:"omitempty,oneof=public private protected internal 'protected internal' 'private protected'"`
	Static       bool           `yaml:"static"`
	Summary      string         `yaml:"summary"`
	Base         string         `yaml:"base"`
	Implements   []string       `yaml:"implements"`
	Fields       []FieldDecl    `yaml:"fields" validate:"dive"`
	Constructors []CtorDecl     `yaml:"constructors" validate:"dive"`
	Properties   []PropertyDecl `yaml:"properties" validate:"dive"`
}

// StructDecl describes one struct.
type StructDecl struct {
	Name         string         `yaml:"name" validate:"required"`
	Access       string         `yaml:"access" validate:"omitempty,oneof=public private protected internal 'protected internal' 'private protected'"`
	Summary      string         `yaml:"summary"`
	Implements   []string       `yaml:"implements"`
	Fields       []FieldDecl    `yaml:"fields" validate:"dive"`
	Constructors []CtorDecl     `yaml:"constructors" validate:"dive"`
	Properties   []PropertyDecl `yaml:"properties" validate:"dive"`
}

// InterfaceDecl describes one interface.
type InterfaceDecl struct {
	Name       string         `yaml:"name" validate:"required"`
	Access     string         `yaml:"access" validate:"omitempty,oneof=public private protected internal 'protected internal' 'private protected'"`
	Summary    string         `yaml:"summary"`
	Implements []string       `yaml:"implements"`
	Properties []PropertyDecl `yaml:"properties" validate:"dive"`
}

// FieldDecl describes one field.
type FieldDecl struct {
	Name     string `yaml:"name" validate:"required"`
	Type     string `yaml:"type" validate:"required"`
	Access   string `yaml:"access" validate:"omitempty,oneof=public private protected internal 'protected internal' 'private protected'"`
	Readonly bool   `yaml:"readonly"`
	Summary  string `yaml:"summary"`
}

// PropertyDecl describes one property. Getter and Setter accept "auto",
// "none", an expression prefixed with "=>", a block body starting with
// "{", or empty for an unconfigured accessor.
type PropertyDecl struct {
	Name    string `yaml:"name" validate:"required"`
	Type    string `yaml:"type" validate:"required"`
	Access  string `yaml:"access" validate:"omitempty,oneof=public private protected internal 'protected internal' 'private protected'"`
	Static  bool   `yaml:"static"`
	Summary string `yaml:"summary"`
	Getter  string `yaml:"getter"`
	Setter  string `yaml:"setter"`
	Default string `yaml:"default"`
}

// CtorDecl describes one constructor. Base distinguishes an absent key
// (no base call) from an empty list (a bare base() call).
type CtorDecl struct {
	Access     string      `yaml:"access" validate:"omitempty,oneof=public private protected internal 'protected internal' 'private protected'"`
	Summary    string      `yaml:"summary"`
	Parameters []ParamDecl `yaml:"parameters" validate:"dive"`
	Base       *[]string   `yaml:"base"`
}

// ParamDecl describes one constructor parameter.
type ParamDecl struct {
	Type     string `yaml:"type" validate:"required"`
	Name     string `yaml:"name" validate:"required"`
	AssignTo string `yaml:"assignTo"`
}

// EnumDecl describes one enumeration.
type EnumDecl struct {
	Name    string           `yaml:"name" validate:"required"`
	Access  string           `yaml:"access" validate:"omitempty,oneof=public private protected internal 'protected internal' 'private protected'"`
	Flags   bool             `yaml:"flags"`
	Summary string           `yaml:"summary"`
	Members []EnumMemberDecl `yaml:"members" validate:"required,dive"`
}

// EnumMemberDecl describes one enumeration member. A nil Value leaves
// the member unnumbered.
type EnumMemberDecl struct {
	Name    string `yaml:"name" validate:"required"`
	Value   *int64 `yaml:"value"`
	Summary string `yaml:"summary"`
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest is empty")
		}
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &doc, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Builder assembles the namespace builder described by the document.
// Declaration-level validation (accessor pairing, duplicate enum
// members, the static constructor rule) happens later, at Build.
func (d *Document) Builder() (*builder.NamespaceBuilder, error) {
	ns := builder.NewNamespace().WithName(d.Namespace)
	if len(d.Usings) > 0 {
		ns.WithUsing(d.Usings...)
	}

	for _, c := range d.Classes {
		cb, err := c.builder()
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", c.Name, err)
		}
		ns.AddClass(cb)
	}
	for _, s := range d.Structs {
		sb, err := s.builder()
		if err != nil {
			return nil, fmt.Errorf("struct %s: %w", s.Name, err)
		}
		ns.AddStruct(sb)
	}
	for _, i := range d.Interfaces {
		ib, err := i.builder()
		if err != nil {
			return nil, fmt.Errorf("interface %s: %w", i.Name, err)
		}
		ns.AddInterface(ib)
	}
	for _, e := range d.Enums {
		eb, err := e.builder()
		if err != nil {
			return nil, fmt.Errorf("enum %s: %w", e.Name, err)
		}
		ns.AddEnum(eb)
	}
	return ns, nil
}

func (c ClassDecl) builder() (*builder.ClassBuilder, error) {
	access, err := parseAccess(c.Access)
	if err != nil {
		return nil, err
	}

	cb := builder.NewClass().WithAccessModifier(access).WithName(c.Name)
	if c.Static {
		cb.MakeStatic()
	}
	if c.Summary != "" {
		cb.WithSummary(c.Summary)
	}
	if c.Base != "" {
		cb.WithBaseClass(c.Base)
	}
	if len(c.Implements) > 0 {
		cb.Implements(c.Implements...)
	}

	for _, f := range c.Fields {
		fb, err := f.builder()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		cb.AddField(fb)
	}
	for i, ct := range c.Constructors {
		ctb, err := ct.builder()
		if err != nil {
			return nil, fmt.Errorf("constructor %d: %w", i, err)
		}
		cb.AddConstructor(ctb)
	}
	for _, p := range c.Properties {
		pb, err := p.builder()
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}
		cb.AddProperty(pb)
	}
	return cb, nil
}

func (s StructDecl) builder() (*builder.StructBuilder, error) {
	access, err := parseAccess(s.Access)
	if err != nil {
		return nil, err
	}

	sb := builder.NewStruct().WithAccessModifier(access).WithName(s.Name)
	if s.Summary != "" {
		sb.WithSummary(s.Summary)
	}
	if len(s.Implements) > 0 {
		sb.Implements(s.Implements...)
	}

	for _, f := range s.Fields {
		fb, err := f.builder()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		sb.AddField(fb)
	}
	for i, ct := range s.Constructors {
		ctb, err := ct.builder()
		if err != nil {
			return nil, fmt.Errorf("constructor %d: %w", i, err)
		}
		sb.AddConstructor(ctb)
	}
	for _, p := range s.Properties {
		pb, err := p.builder()
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}
		sb.AddProperty(pb)
	}
	return sb, nil
}

func (i InterfaceDecl) builder() (*builder.InterfaceBuilder, error) {
	access, err := parseAccess(i.Access)
	if err != nil {
		return nil, err
	}

	ib := builder.NewInterface().WithAccessModifier(access).WithName(i.Name)
	if i.Summary != "" {
		ib.WithSummary(i.Summary)
	}
	if len(i.Implements) > 0 {
		ib.Implements(i.Implements...)
	}
	for _, p := range i.Properties {
		pb, err := p.builder()
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}
		ib.AddProperty(pb)
	}
	return ib, nil
}

func (f FieldDecl) builder() (*builder.FieldBuilder, error) {
	access, err := parseAccess(f.Access)
	if err != nil {
		return nil, err
	}

	fb := builder.NewField().WithAccessModifier(access).WithType(f.Type).WithName(f.Name)
	if f.Readonly {
		fb.MakeReadonly()
	}
	if f.Summary != "" {
		fb.WithSummary(f.Summary)
	}
	return fb, nil
}

func (p PropertyDecl) builder() (*builder.PropertyBuilder, error) {
	access, err := parseAccess(p.Access)
	if err != nil {
		return nil, err
	}

	pb := builder.NewProperty().WithAccessModifier(access).WithType(p.Type).WithName(p.Name)
	if p.Static {
		pb.MakeStatic()
	}
	if p.Summary != "" {
		pb.WithSummary(p.Summary)
	}
	if p.Default != "" {
		pb.WithDefaultValue(p.Default)
	}

	if err := applyAccessor(p.Getter, pb.WithGetter, pb.WithoutGetter, pb.WithGetterExpression); err != nil {
		return nil, fmt.Errorf("getter: %w", err)
	}
	if err := applyAccessor(p.Setter, pb.WithSetter, pb.WithoutSetter, pb.WithSetterExpression); err != nil {
		return nil, fmt.Errorf("setter: %w", err)
	}
	return pb, nil
}

// applyAccessor interprets one accessor spelling. Empty leaves the
// accessor unconfigured.
func applyAccessor(spelling string, auto, none func() *builder.PropertyBuilder, expr func(string) *builder.PropertyBuilder) error {
	switch {
	case spelling == "":
	case spelling == "auto":
		auto()
	case spelling == "none":
		none()
	case strings.HasPrefix(spelling, "=>"):
		expr(strings.TrimSpace(strings.TrimPrefix(spelling, "=>")))
	case strings.HasPrefix(strings.TrimSpace(spelling), "{"):
		expr(spelling)
	default:
		return fmt.Errorf("unknown accessor %q (want auto, none, => expression or { block })", spelling)
	}
	return nil
}

func (c CtorDecl) builder() (*builder.ConstructorBuilder, error) {
	access, err := parseAccess(c.Access)
	if err != nil {
		return nil, err
	}

	cb := builder.NewConstructor().WithAccessModifier(access)
	if c.Summary != "" {
		cb.WithSummary(c.Summary)
	}
	for _, p := range c.Parameters {
		pb := builder.NewParameter().WithType(p.Type).WithName(p.Name)
		if p.AssignTo != "" {
			pb.AssignTo(p.AssignTo)
		}
		cb.AddParameter(pb)
	}
	if c.Base != nil {
		cb.WithBaseCall(*c.Base...)
	}
	return cb, nil
}

func (e EnumDecl) builder() (*builder.EnumBuilder, error) {
	access, err := parseAccess(e.Access)
	if err != nil {
		return nil, err
	}

	eb := builder.NewEnum().WithAccessModifier(access).WithName(e.Name)
	if e.Flags {
		eb.AsFlags()
	}
	if e.Summary != "" {
		eb.WithSummary(e.Summary)
	}
	for _, m := range e.Members {
		mb := builder.NewEnumMember().WithName(m.Name)
		if m.Value != nil {
			mb.WithValue(*m.Value)
		}
		if m.Summary != "" {
			mb.WithSummary(m.Summary)
		}
		eb.AddMember(mb)
	}
	return eb, nil
}

// parseAccess maps a manifest access spelling to its modifier. Empty
// means private, the C# member default.
func parseAccess(s string) (ir.AccessModifier, error) {
	switch s {
	case "", "private":
		return ir.Private, nil
	case "public":
		return ir.Public, nil
	case "protected":
		return ir.Protected, nil
	case "internal":
		return ir.Internal, nil
	case "protected internal":
		return ir.ProtectedInternal, nil
	case "private protected":
		return ir.PrivateProtected, nil
	default:
		return ir.Private, fmt.Errorf("unknown access modifier %q", s)
	}
}
