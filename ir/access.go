package ir

// AccessModifier enumerates C# access levels. The zero value is
// Private, which is also the rendering fallback for any unrecognized
// value.
type AccessModifier int

const (
	Private AccessModifier = iota
	Public
	Protected
	Internal
	ProtectedInternal
	PrivateProtected
)

// Keyword returns the C# keyword sequence for the modifier.
func (a AccessModifier) Keyword() string {
	switch a {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Internal:
		return "internal"
	case ProtectedInternal:
		return "protected internal"
	case PrivateProtected:
		return "private protected"
	default:
		return "private"
	}
}

func (a AccessModifier) String() string { return a.Keyword() }
