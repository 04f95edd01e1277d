// Package builder provides the fluent builders that accumulate
// declaration configuration and freeze it into immutable IR values.
//
// Builders are mutable and not safe for concurrent use. Setters follow
// last-write-wins semantics and return the receiver so calls chain. A
// setter handed an unusable argument records the violation immediately,
// first violation wins, and the next Build surfaces it before any other
// validation. Build validates the accumulated configuration, builds and
// attaches every child builder, and yields the frozen IR value; a
// validation failure aborts the whole build with no partial result.
package builder

import (
	"strings"

	"github.com/sharpgen/sharpgen"
)

// sticky records the first call-site violation a builder observes.
type sticky struct {
	err error
}

func (s *sticky) reportf(code sharpgen.ErrorCode, format string, args ...any) {
	if s.err == nil {
		s.err = sharpgen.Errorf(code, format, args...)
	}
}

// requireArg records an ArgumentInvalid violation when value is blank
// and reports whether the value was usable.
func (s *sticky) requireArg(value, what string) bool {
	if !blank(value) {
		return true
	}
	s.reportf(sharpgen.CodeArgumentInvalid, "%s must not be blank", what)
	return false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// missing builds the Build-time error for a required attribute that was
// never configured.
func missing(entity, attr string) error {
	return sharpgen.Errorf(sharpgen.CodeMissingRequiredSetting, "%s is missing a %s", entity, attr)
}

// finishSource applies the cosmetic formatter at the outermost
// rendering boundary. Child declarations are always rendered
// unformatted; only the top-level ToSourceCode call reaches this.
func finishSource(src string, formatted bool) (string, error) {
	if !formatted {
		return src, nil
	}
	return sharpgen.NewBraceFormatter().Format(src)
}
