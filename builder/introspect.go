package builder

import "golang.org/x/text/cases"

// MemberKind selects which member collections HasMember scans.
type MemberKind int

const (
	// MemberAny matches a member of any kind the container carries.
	MemberAny MemberKind = iota

	// MemberField matches attached field builders.
	MemberField

	// MemberProperty matches attached property builders.
	MemberProperty

	// MemberEnumValue matches attached enumeration member builders.
	MemberEnumValue
)

// Comparison decides whether two member names are equal. HasMember
// treats a nil Comparison as Caseless.
type Comparison func(a, b string) bool

// Ordinal compares names byte for byte.
func Ordinal(a, b string) bool {
	return a == b
}

// Caseless compares names after Unicode case folding, the
// culture-invariant case-insensitive default.
func Caseless(a, b string) bool {
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}

// MemberIntrospector answers membership queries over currently
// attached, not yet built child builders. Implemented by the container
// builders that carry named members.
type MemberIntrospector interface {
	HasMember(name string, kind MemberKind, cmp Comparison) bool
}
