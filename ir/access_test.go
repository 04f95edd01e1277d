package ir

import "testing"

func TestAccessModifier_Keyword(t *testing.T) {
	tests := []struct {
		name   string
		access AccessModifier
		want   string
	}{
		{"public", Public, "public"},
		{"private", Private, "private"},
		{"protected", Protected, "protected"},
		{"internal", Internal, "internal"},
		{"protected internal", ProtectedInternal, "protected internal"},
		{"private protected", PrivateProtected, "private protected"},
		{"unrecognized falls back to private", AccessModifier(99), "private"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.access.Keyword(); got != tt.want {
				t.Errorf("Keyword() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccessModifier_ZeroValueIsPrivate(t *testing.T) {
	var a AccessModifier
	if a != Private {
		t.Errorf("zero value = %v, want Private", a)
	}
}
