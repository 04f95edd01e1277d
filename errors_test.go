package sharpgen

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := NewError(CodeMissingRequiredSetting, "class requires a name")
	want := "missing_required_setting: class requires a name"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(CodeInvalidSyntaxCombination, "static class %s may declare at most one constructor", "Registry")
	if err.Code != CodeInvalidSyntaxCombination {
		t.Errorf("Code = %q, want %q", err.Code, CodeInvalidSyntaxCombination)
	}
	if err.Message != "static class Registry may declare at most one constructor" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestWithDetail(t *testing.T) {
	base := NewError(CodeArgumentInvalid, "blank name")
	derived := base.WithDetail("builder", "class").WithDetail("attribute", "name")

	if len(base.Details) != 0 {
		t.Errorf("base.Details = %v, want empty", base.Details)
	}
	if derived.Details["builder"] != "class" || derived.Details["attribute"] != "name" {
		t.Errorf("derived.Details = %v", derived.Details)
	}
	if derived.Code != base.Code || derived.Message != base.Message {
		t.Error("WithDetail changed code or message")
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{
			name: "direct match",
			err:  NewError(CodeArgumentInvalid, "blank"),
			code: CodeArgumentInvalid,
			want: true,
		},
		{
			name: "wrapped match",
			err:  fmt.Errorf("build: %w", NewError(CodeMissingRequiredSetting, "no name")),
			code: CodeMissingRequiredSetting,
			want: true,
		},
		{
			name: "code mismatch",
			err:  NewError(CodeArgumentInvalid, "blank"),
			code: CodeInvalidSyntaxCombination,
			want: false,
		},
		{
			name: "unrelated error",
			err:  errors.New("boom"),
			code: CodeArgumentInvalid,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			code: CodeArgumentInvalid,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
