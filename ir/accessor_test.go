package ir

import "testing"

func TestAccessor_ZeroValueIsUnconfigured(t *testing.T) {
	var a Accessor
	if a.State != AccessorUnconfigured {
		t.Errorf("zero value state = %v, want AccessorUnconfigured", a.State)
	}
	if a.Configured() {
		t.Error("zero value reports Configured() = true")
	}
}

func TestAccessor_Constructors(t *testing.T) {
	tests := []struct {
		name     string
		accessor Accessor
		state    AccessorState
		expr     string
	}{
		{"none", NoAccessor(), AccessorNone, ""},
		{"auto", AutoAccessor(), AccessorAuto, ""},
		{"expression", ExpressionAccessor("_value"), AccessorExpression, "_value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.accessor.State != tt.state {
				t.Errorf("State = %v, want %v", tt.accessor.State, tt.state)
			}
			if tt.accessor.Expression != tt.expr {
				t.Errorf("Expression = %q, want %q", tt.accessor.Expression, tt.expr)
			}
			if !tt.accessor.Configured() {
				t.Error("Configured() = false for a configured accessor")
			}
		})
	}
}

func TestProperty_HasAccessors(t *testing.T) {
	var p Property
	if p.HasAccessors() {
		t.Error("property with no configured accessors reports HasAccessors() = true")
	}

	p.Getter = AutoAccessor()
	if !p.HasAccessors() {
		t.Error("property with a configured getter reports HasAccessors() = false")
	}

	p = Property{Setter: NoAccessor()}
	if !p.HasAccessors() {
		t.Error("explicitly absent setter still counts as configured")
	}
}
