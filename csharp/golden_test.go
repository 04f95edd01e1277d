package csharp

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/sharpgen/sharpgen"
	"github.com/sharpgen/sharpgen/ir"
)

// sampleNamespace covers every declaration kind and the member render
// order inside a container.
func sampleNamespace() ir.Namespace {
	v := func(n int64) *int64 { return &n }

	return ir.Namespace{
		Name:   "Sharpgen.Sample",
		Usings: []string{"System", "System.Collections.Generic"},
		Classes: []ir.Class{{
			Access:     ir.Public,
			Name:       "User",
			Summary:    "A registered user.",
			BaseClass:  "EntityBase",
			Implements: []string{"IAuditable"},
			Fields: []ir.Field{
				{Access: ir.Private, ReadOnly: true, Type: "string", Name: "_id"},
			},
			Constructors: []ir.Constructor{{
				Access:     ir.Public,
				TypeName:   "User",
				Parameters: []ir.Parameter{{Type: "string", Name: "id", AssignTo: "_id"}},
			}},
			Properties: []ir.Property{
				{Access: ir.Public, Type: "string", Name: "Name",
					Getter: ir.AutoAccessor(), Setter: ir.AutoAccessor()},
				{Access: ir.Public, Type: "string", Name: "DisplayName",
					Getter: ir.ExpressionAccessor("_id.ToUpper()"), Setter: ir.NoAccessor()},
			},
		}},
		Structs: []ir.Struct{{
			Access: ir.Public,
			Name:   "Point",
			Fields: []ir.Field{
				{Access: ir.Public, Type: "double", Name: "X"},
				{Access: ir.Public, Type: "double", Name: "Y"},
			},
		}},
		Interfaces: []ir.Interface{{
			Access: ir.Public,
			Name:   "IAuditable",
			Properties: []ir.Property{
				{Access: ir.Public, Type: "DateTime", Name: "CreatedAt",
					Getter: ir.AutoAccessor(), Setter: ir.AutoAccessor()},
			},
		}},
		Enums: []ir.Enum{{
			Access: ir.Public,
			Name:   "Permission",
			Flags:  true,
			Members: []ir.EnumMember{
				{Name: "None", Value: v(0)},
				{Name: "Read", Value: v(1)},
				{Name: "Write", Value: v(2)},
				{Name: "Execute", Value: v(4)},
			},
		}},
	}
}

func TestNamespace_Golden(t *testing.T) {
	g := goldie.New(t, goldie.WithNameSuffix(".golden"))
	g.Assert(t, "namespace", []byte(Namespace(sampleNamespace())))
}

func TestNamespace_GoldenFormatted(t *testing.T) {
	formatted, err := sharpgen.NewBraceFormatter().Format(Namespace(sampleNamespace()))
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithNameSuffix(".golden"))
	g.Assert(t, "namespace_formatted", []byte(formatted))
}
