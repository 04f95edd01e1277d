package builder

import "github.com/sharpgen/sharpgen/ir"

// ParameterBuilder accumulates the configuration of a single
// constructor parameter.
type ParameterBuilder struct {
	sticky
	param ir.Parameter
}

// NewParameter creates an empty parameter builder.
func NewParameter() *ParameterBuilder {
	return &ParameterBuilder{}
}

// WithType sets the parameter's type name.
func (b *ParameterBuilder) WithType(typeName string) *ParameterBuilder {
	if b.requireArg(typeName, "parameter type") {
		b.param.Type = typeName
	}
	return b
}

// WithName sets the parameter's identifier.
func (b *ParameterBuilder) WithName(name string) *ParameterBuilder {
	if b.requireArg(name, "parameter name") {
		b.param.Name = name
	}
	return b
}

// AssignTo binds the parameter to a receiving member: the constructor
// body assigns the parameter into that member.
func (b *ParameterBuilder) AssignTo(member string) *ParameterBuilder {
	if b.requireArg(member, "parameter target member") {
		b.param.AssignTo = member
	}
	return b
}

// Build validates the accumulated configuration and freezes the
// parameter.
func (b *ParameterBuilder) Build() (ir.Parameter, error) {
	if b.err != nil {
		return ir.Parameter{}, b.err
	}
	if blank(b.param.Name) {
		return ir.Parameter{}, missing("parameter", "name")
	}
	if blank(b.param.Type) {
		return ir.Parameter{}, missing("parameter", "type")
	}
	return b.param, nil
}

// ConstructorBuilder accumulates the configuration of a constructor.
// The owning type's name and static flag are injected by the parent
// class or struct builder at build time, never by the caller.
type ConstructorBuilder struct {
	sticky
	ctor   ir.Constructor
	params []*ParameterBuilder
}

// NewConstructor creates an empty constructor builder.
func NewConstructor() *ConstructorBuilder {
	return &ConstructorBuilder{}
}

// WithAccessModifier sets the constructor's access level. Ignored in
// rendered output for static constructors.
func (b *ConstructorBuilder) WithAccessModifier(access ir.AccessModifier) *ConstructorBuilder {
	b.ctor.Access = access
	return b
}

// WithSummary sets the constructor's documentation text.
func (b *ConstructorBuilder) WithSummary(summary string) *ConstructorBuilder {
	if b.requireArg(summary, "constructor summary") {
		b.ctor.Summary = summary
	}
	return b
}

// AddParameter attaches a parameter builder.
func (b *ConstructorBuilder) AddParameter(p *ParameterBuilder) *ConstructorBuilder {
	b.params = append(b.params, p)
	return b
}

// WithParameter attaches a plain parameter.
func (b *ConstructorBuilder) WithParameter(typeName, name string) *ConstructorBuilder {
	return b.AddParameter(NewParameter().WithType(typeName).WithName(name))
}

// WithAssignedParameter attaches a parameter bound to a receiving
// member.
func (b *ConstructorBuilder) WithAssignedParameter(typeName, name, member string) *ConstructorBuilder {
	return b.AddParameter(NewParameter().WithType(typeName).WithName(name).AssignTo(member))
}

// WithBaseCall configures the base-constructor call with the given
// argument expressions. Calling it with no arguments renders ": base()".
func (b *ConstructorBuilder) WithBaseCall(args ...string) *ConstructorBuilder {
	if args == nil {
		args = []string{}
	}
	b.ctor.BaseArgs = args
	return b
}

// setOwner injects the owning type's name and static flag. Called by
// the parent builder immediately before Build.
func (b *ConstructorBuilder) setOwner(typeName string, static bool) {
	b.ctor.TypeName = typeName
	b.ctor.Static = static
}

// Build validates the accumulated configuration, builds all attached
// parameters in order and freezes the constructor. Syntax legality
// across constructors (such as the single-constructor rule on static
// types) is enforced by the parent builder, not here.
func (b *ConstructorBuilder) Build() (ir.Constructor, error) {
	if b.err != nil {
		return ir.Constructor{}, b.err
	}

	ctor := b.ctor
	ctor.Parameters = make([]ir.Parameter, 0, len(b.params))
	for _, pb := range b.params {
		p, err := pb.Build()
		if err != nil {
			return ir.Constructor{}, err
		}
		ctor.Parameters = append(ctor.Parameters, p)
	}
	if b.ctor.BaseArgs != nil {
		ctor.BaseArgs = append([]string(nil), b.ctor.BaseArgs...)
		if len(ctor.BaseArgs) == 0 {
			ctor.BaseArgs = []string{}
		}
	}
	return ctor, nil
}
