package ir

// Namespace represents a namespace declaration containing nested
// type declarations.
type Namespace struct {
	// Name is the namespace identifier. Required at build time.
	Name string

	// Usings lists using-directives in insertion order.
	Usings []string

	// Nested declarations in rendered order: classes, structs,
	// interfaces, enumerations.
	Classes    []Class
	Structs    []Struct
	Interfaces []Interface
	Enums      []Enum
}

// Kind returns KindNamespace.
func (n Namespace) Kind() DeclKind { return KindNamespace }

// DeclName returns the namespace's name.
func (n Namespace) DeclName() string { return n.Name }

// Doc returns an empty string; namespaces carry no summary.
func (n Namespace) Doc() string { return "" }

func (Namespace) sealed() {}
