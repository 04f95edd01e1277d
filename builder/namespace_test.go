package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpgen/sharpgen"
	"github.com/sharpgen/sharpgen/ir"
)

func sampleNamespace() *NamespaceBuilder {
	return NewNamespace().
		WithName("Acme.Models").
		WithUsing("System").
		AddClass(NewClass().
			WithAccessModifier(ir.Public).
			WithName("User").
			AddField(NewField().WithType("string").WithName("_id").MakeReadonly()).
			AddConstructor(NewConstructor().
				WithAccessModifier(ir.Public).
				WithAssignedParameter("string", "id", "_id")).
			AddProperty(NewProperty().
				WithAccessModifier(ir.Public).
				WithType("string").
				WithName("Name").
				WithGetter().
				WithSetter())).
		AddEnum(NewEnum().
			WithAccessModifier(ir.Public).
			WithName("Permission").
			AsFlags().
			WithMember("None").
			WithMember("Read"))
}

func TestNamespaceBuilder_Build(t *testing.T) {
	ns, err := sampleNamespace().Build()
	require.NoError(t, err)

	assert.Equal(t, "Acme.Models", ns.Name)
	assert.Equal(t, []string{"System"}, ns.Usings)
	require.Len(t, ns.Classes, 1)
	require.Len(t, ns.Enums, 1)
	assert.Equal(t, "User", ns.Classes[0].Constructors[0].TypeName)
}

func TestNamespaceBuilder_NeverNamedFails(t *testing.T) {
	_, err := NewNamespace().AddClass(NewClass().WithName("User")).Build()
	require.Error(t, err)
	assert.True(t, sharpgen.IsCode(err, sharpgen.CodeMissingRequiredSetting))
}

func TestNamespaceBuilder_NestedFailurePropagates(t *testing.T) {
	_, err := NewNamespace().
		WithName("Acme").
		AddClass(NewClass()). // never named
		Build()
	require.Error(t, err)
	assert.True(t, sharpgen.IsCode(err, sharpgen.CodeMissingRequiredSetting))
	assert.Contains(t, err.Error(), "class")
}

func TestNamespaceBuilder_ToSourceCodeDeterministic(t *testing.T) {
	for _, formatted := range []bool{false, true} {
		b := sampleNamespace()
		first, err := b.ToSourceCode(formatted)
		require.NoError(t, err)
		second, err := b.ToSourceCode(formatted)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestNamespaceBuilder_FormattingIsCosmeticOnly(t *testing.T) {
	b := sampleNamespace()

	raw, err := b.ToSourceCode(false)
	require.NoError(t, err)
	pretty, err := b.ToSourceCode(true)
	require.NoError(t, err)

	strip := func(s string) string {
		var sb strings.Builder
		for _, line := range strings.Split(s, "\n") {
			sb.WriteString(strings.TrimSpace(line))
			sb.WriteString("\n")
		}
		return strings.TrimRight(sb.String(), "\n")
	}
	assert.Equal(t, strip(raw), strip(pretty))
	assert.Contains(t, pretty, "    public class User")
}

func TestNamespaceBuilder_String(t *testing.T) {
	s := sampleNamespace().String()
	assert.Contains(t, s, "namespace Acme.Models")
	assert.Contains(t, s, "public class User")
	assert.Contains(t, s, "[Flags]")
}

func TestNamespaceBuilder_StringReportsBuildError(t *testing.T) {
	s := NewNamespace().String()
	assert.Contains(t, s, "namespace")
	assert.Contains(t, s, "name")
}

func TestClassBuilder_ToSourceCode(t *testing.T) {
	src, err := NewClass().
		WithAccessModifier(ir.Public).
		WithName("Widget").
		ToSourceCode(true)
	require.NoError(t, err)
	assert.Equal(t, "public class Widget\n{\n}\n", src)
}
