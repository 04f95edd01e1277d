package ir

// Interface represents an interface declaration. Interfaces declare
// properties only.
type Interface struct {
	// Access is the interface's access level.
	Access AccessModifier

	// Name is the interface identifier. Required at build time.
	Name string

	// Summary is the documentation text, empty when unset.
	Summary string

	// Implements lists inherited interface names in insertion order.
	Implements []string

	// Properties in insertion order.
	Properties []Property
}

// Kind returns KindInterface.
func (i Interface) Kind() DeclKind { return KindInterface }

// DeclName returns the interface's name.
func (i Interface) DeclName() string { return i.Name }

// Doc returns the interface's summary.
func (i Interface) Doc() string { return i.Summary }

func (Interface) sealed() {}
