package csharp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sharpgen/sharpgen/ir"
)

func TestField(t *testing.T) {
	tests := []struct {
		name  string
		field ir.Field
		want  string
	}{
		{
			name:  "plain private field",
			field: ir.Field{Type: "int", Name: "_count"},
			want:  "private int _count;",
		},
		{
			name:  "public readonly field",
			field: ir.Field{Access: ir.Public, ReadOnly: true, Type: "string", Name: "Id"},
			want:  "public readonly string Id;",
		},
		{
			name:  "field with summary",
			field: ir.Field{Type: "int", Name: "_count", Summary: "Running total."},
			want:  "/// <summary>\n/// Running total.\n/// </summary>\nprivate int _count;",
		},
		{
			name:  "multi-line summary prefixes every line",
			field: ir.Field{Type: "int", Name: "_count", Summary: "First line.\nSecond line."},
			want:  "/// <summary>\n/// First line.\n/// Second line.\n/// </summary>\nprivate int _count;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Field(tt.field))
		})
	}
}

func TestProperty(t *testing.T) {
	tests := []struct {
		name string
		prop ir.Property
		want string
	}{
		{
			name: "no accessors renders a statement terminator",
			prop: ir.Property{Access: ir.Public, Type: "int", Name: "Age"},
			want: "public int Age;",
		},
		{
			name: "auto getter and setter",
			prop: ir.Property{Access: ir.Public, Type: "string", Name: "Name",
				Getter: ir.AutoAccessor(), Setter: ir.AutoAccessor()},
			want: "public string Name { get; set; }",
		},
		{
			name: "unconfigured getter renders auto when setter is configured",
			prop: ir.Property{Access: ir.Public, Type: "string", Name: "Name",
				Setter: ir.AutoAccessor()},
			want: "public string Name { get; set; }",
		},
		{
			name: "explicitly absent setter is omitted",
			prop: ir.Property{Access: ir.Public, Type: "string", Name: "Name",
				Getter: ir.AutoAccessor(), Setter: ir.NoAccessor()},
			want: "public string Name { get; }",
		},
		{
			name: "expression getter",
			prop: ir.Property{Access: ir.Public, Type: "string", Name: "Upper",
				Getter: ir.ExpressionAccessor("_name.ToUpper()"), Setter: ir.NoAccessor()},
			want: "public string Upper { get => _name.ToUpper(); }",
		},
		{
			name: "block-bodied getter splices after the keyword",
			prop: ir.Property{Access: ir.Public, Type: "string", Name: "Upper",
				Getter: ir.ExpressionAccessor("{ return _name; }"), Setter: ir.NoAccessor()},
			want: "public string Upper { get { return _name; } }",
		},
		{
			name: "static property with default value",
			prop: ir.Property{Access: ir.Public, Static: true, Type: "int", Name: "Max",
				Getter: ir.AutoAccessor(), Setter: ir.AutoAccessor(), Default: "100"},
			want: "public static int Max { get; set; } = 100;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Property(tt.prop))
		})
	}
}

func TestConstructor(t *testing.T) {
	t.Run("assigning parameters into members", func(t *testing.T) {
		c := ir.Constructor{
			Access:   ir.Public,
			TypeName: "User",
			Parameters: []ir.Parameter{
				{Type: "string", Name: "id", AssignTo: "_id"},
				{Type: "int", Name: "age"},
			},
		}
		want := "public User(string id, int age)\n{\nthis._id = id;\n}"
		assert.Equal(t, want, Constructor(c))
	})

	t.Run("base call", func(t *testing.T) {
		c := ir.Constructor{
			Access:     ir.Public,
			TypeName:   "Admin",
			Parameters: []ir.Parameter{{Type: "string", Name: "id"}},
			BaseArgs:   []string{"id", "true"},
		}
		want := "public Admin(string id) : base(id, true)\n{\n}"
		assert.Equal(t, want, Constructor(c))
	})

	t.Run("empty base call renders base()", func(t *testing.T) {
		c := ir.Constructor{Access: ir.Public, TypeName: "User", BaseArgs: []string{}}
		assert.Equal(t, "public User() : base()\n{\n}", Constructor(c))
	})

	t.Run("static constructor has no access modifier", func(t *testing.T) {
		c := ir.Constructor{Access: ir.Public, Static: true, TypeName: "Registry"}
		assert.Equal(t, "static Registry()\n{\n}", Constructor(c))
	})
}

func TestClass_InheritanceOrder(t *testing.T) {
	c := ir.Class{
		Access:     ir.Public,
		Name:       "Widget",
		BaseClass:  "Base",
		Implements: []string{"IFoo", "IBar"},
	}
	src := Class(c)
	assert.Contains(t, src, "public class Widget : Base, IFoo, IBar")
}

func TestClass_MemberOrder(t *testing.T) {
	c := ir.Class{
		Access:       ir.Public,
		Name:         "Widget",
		Fields:       []ir.Field{{Access: ir.Private, Type: "int", Name: "_n"}},
		Constructors: []ir.Constructor{{Access: ir.Public, TypeName: "Widget"}},
		Properties: []ir.Property{{Access: ir.Public, Type: "int", Name: "N",
			Getter: ir.AutoAccessor()}},
	}
	want := "public class Widget\n{\n" +
		"private int _n;\n\n" +
		"public Widget()\n{\n}\n\n" +
		"public int N { get; }\n}"
	assert.Equal(t, want, Class(c))
}

func TestEnum(t *testing.T) {
	v := func(n int64) *int64 { return &n }

	t.Run("flags enum carries the attribute", func(t *testing.T) {
		e := ir.Enum{
			Access: ir.Public,
			Name:   "Permission",
			Flags:  true,
			Members: []ir.EnumMember{
				{Name: "None", Value: v(0)},
				{Name: "Read", Value: v(1)},
			},
		}
		want := "[Flags]\npublic enum Permission\n{\nNone = 0,\nRead = 1,\n}"
		assert.Equal(t, want, Enum(e))
	})

	t.Run("members without values render bare", func(t *testing.T) {
		e := ir.Enum{
			Access:  ir.Public,
			Name:    "Color",
			Members: []ir.EnumMember{{Name: "Red"}, {Name: "Green"}},
		}
		want := "public enum Color\n{\nRed,\nGreen,\n}"
		assert.Equal(t, want, Enum(e))
	})
}

func TestDeclaration_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		decl ir.Declaration
		want string
	}{
		{"class", ir.Class{Access: ir.Public, Name: "C"}, "public class C"},
		{"struct", ir.Struct{Access: ir.Public, Name: "S"}, "public struct S"},
		{"interface", ir.Interface{Access: ir.Public, Name: "I"}, "public interface I"},
		{"enum", ir.Enum{Access: ir.Public, Name: "E"}, "public enum E"},
		{"namespace", ir.Namespace{Name: "N"}, "namespace N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Declaration(tt.decl), tt.want)
		})
	}
}

func TestRendering_Idempotent(t *testing.T) {
	c := ir.Class{
		Access:    ir.Public,
		Name:      "User",
		Summary:   "A user.",
		BaseClass: "Base",
		Fields:    []ir.Field{{Type: "string", Name: "_id", ReadOnly: true}},
		Properties: []ir.Property{{Access: ir.Public, Type: "string", Name: "Id",
			Getter: ir.AutoAccessor()}},
	}
	assert.Equal(t, Class(c), Class(c))
}
