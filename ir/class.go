package ir

// Class represents a class declaration with its members.
type Class struct {
	// Access is the class's access level.
	Access AccessModifier

	// Static marks the class static. A static class may declare at most
	// one constructor.
	Static bool

	// Name is the class identifier. Required at build time.
	Name string

	// Summary is the documentation text, empty when unset.
	Summary string

	// BaseClass is the base class name, empty when the class has no
	// explicit base. Rendered before any interface in the inheritance
	// list.
	BaseClass string

	// Implements lists implemented interface names in insertion order.
	// Duplicates are preserved as configured.
	Implements []string

	// Members in rendered order: fields, then constructors, then
	// properties.
	Fields       []Field
	Constructors []Constructor
	Properties   []Property
}

// Kind returns KindClass.
func (c Class) Kind() DeclKind { return KindClass }

// DeclName returns the class's name.
func (c Class) DeclName() string { return c.Name }

// Doc returns the class's summary.
func (c Class) Doc() string { return c.Summary }

func (Class) sealed() {}
