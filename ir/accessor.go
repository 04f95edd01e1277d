package ir

// AccessorState identifies one of the four configurations a property
// getter or setter can occupy. The states are deliberately distinct
// from a two-state nullable: "never configured" and "explicitly absent"
// render differently.
type AccessorState int

const (
	// AccessorUnconfigured is the zero value: the accessor was never
	// set. It renders as a bare auto-accessor when the property has at
	// least one configured accessor, and as absent otherwise.
	AccessorUnconfigured AccessorState = iota

	// AccessorNone omits the accessor from output entirely.
	AccessorNone

	// AccessorAuto renders the bare auto-accessor ("get;" / "set;").
	AccessorAuto

	// AccessorExpression renders a custom body: an expression-bodied
	// accessor, or a block body when the expression opens with a brace.
	AccessorExpression
)

// Accessor is the tagged configuration of a property getter or setter.
// The zero value is the unconfigured state.
type Accessor struct {
	State AccessorState

	// Expression carries the custom body. Set only for
	// AccessorExpression.
	Expression string
}

// NoAccessor returns the explicitly-absent accessor configuration.
func NoAccessor() Accessor {
	return Accessor{State: AccessorNone}
}

// AutoAccessor returns the auto-implemented accessor configuration.
func AutoAccessor() Accessor {
	return Accessor{State: AccessorAuto}
}

// ExpressionAccessor returns an accessor with a custom expression or
// block body.
func ExpressionAccessor(expr string) Accessor {
	return Accessor{State: AccessorExpression, Expression: expr}
}

// Configured reports whether the accessor was set to anything at all.
func (a Accessor) Configured() bool {
	return a.State != AccessorUnconfigured
}
