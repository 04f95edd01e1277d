package ir

// Struct represents a struct declaration. Structs carry the same
// member kinds as classes but have no base class and cannot be static.
type Struct struct {
	// Access is the struct's access level.
	Access AccessModifier

	// Name is the struct identifier. Required at build time.
	Name string

	// Summary is the documentation text, empty when unset.
	Summary string

	// Implements lists implemented interface names in insertion order.
	Implements []string

	// Members in rendered order: fields, then constructors, then
	// properties.
	Fields       []Field
	Constructors []Constructor
	Properties   []Property
}

// Kind returns KindStruct.
func (s Struct) Kind() DeclKind { return KindStruct }

// DeclName returns the struct's name.
func (s Struct) DeclName() string { return s.Name }

// Doc returns the struct's summary.
func (s Struct) Doc() string { return s.Summary }

func (Struct) sealed() {}
