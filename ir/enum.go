package ir

// Enum represents an enumeration declaration.
type Enum struct {
	// Access is the enumeration's access level.
	Access AccessModifier

	// Name is the enumeration identifier. Required at build time.
	Name string

	// Summary is the documentation text, empty when unset.
	Summary string

	// Flags marks the enumeration as a bit-combinable flags enum. Flags
	// enums carry a [Flags] attribute in rendered output and are
	// eligible for automatic bitmask numbering at build time.
	Flags bool

	// Members in insertion order.
	Members []EnumMember
}

// Kind returns KindEnum.
func (e Enum) Kind() DeclKind { return KindEnum }

// DeclName returns the enumeration's name.
func (e Enum) DeclName() string { return e.Name }

// Doc returns the enumeration's summary.
func (e Enum) Doc() string { return e.Summary }

func (Enum) sealed() {}

// EnumMember represents a single enumeration member.
type EnumMember struct {
	// Name is the member identifier. Required at build time.
	Name string

	// Value is the explicit integral value, nil when none was
	// configured.
	Value *int64

	// Summary is the documentation text, empty when unset.
	Summary string
}

// HasValue reports whether an explicit value is set.
func (m EnumMember) HasValue() bool { return m.Value != nil }
