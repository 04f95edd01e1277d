package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassBuilder_HasMember(t *testing.T) {
	b := NewClass().
		WithName("User").
		AddField(NewField().WithType("string").WithName("_name")).
		AddProperty(NewProperty().WithType("string").WithName("Name").WithGetter())

	t.Run("defaults to caseless", func(t *testing.T) {
		assert.True(t, b.HasMember("_name", MemberAny, nil))
		assert.True(t, b.HasMember("_NAME", MemberAny, nil))
		assert.True(t, b.HasMember("_NAME", MemberField, nil))
	})

	t.Run("ordinal is exact", func(t *testing.T) {
		assert.True(t, b.HasMember("_name", MemberField, Ordinal))
		assert.False(t, b.HasMember("_NAME", MemberField, Ordinal))
	})

	t.Run("kind filters collections", func(t *testing.T) {
		assert.False(t, b.HasMember("_name", MemberProperty, nil))
		assert.True(t, b.HasMember("Name", MemberProperty, nil))
		assert.False(t, b.HasMember("Name", MemberField, Ordinal))
		assert.False(t, b.HasMember("_name", MemberEnumValue, nil))
	})

	t.Run("unknown name", func(t *testing.T) {
		assert.False(t, b.HasMember("missing", MemberAny, nil))
	})
}

func TestClassBuilder_HasMemberSeesUnbuiltChildren(t *testing.T) {
	// Introspection scans attached builders as currently configured, no
	// Build call needed.
	b := NewClass().WithName("User")
	assert.False(t, b.HasMember("_id", MemberField, nil))

	fb := NewField().WithType("string")
	b.AddField(fb)
	assert.False(t, b.HasMember("_id", MemberField, nil))

	fb.WithName("_id")
	assert.True(t, b.HasMember("_id", MemberField, nil))
}

func TestEnumBuilder_HasMember(t *testing.T) {
	b := NewEnum().WithName("Permission").WithMember("Read").WithMember("Write")

	assert.True(t, b.HasMember("read", MemberEnumValue, nil))
	assert.True(t, b.HasMember("Write", MemberAny, Ordinal))
	assert.False(t, b.HasMember("read", MemberEnumValue, Ordinal))
	assert.False(t, b.HasMember("Read", MemberField, nil))
	assert.False(t, b.HasMember("Execute", MemberAny, nil))
}

func TestInterfaceBuilder_HasMember(t *testing.T) {
	b := NewInterface().
		WithName("IAuditable").
		AddProperty(NewProperty().WithType("DateTime").WithName("CreatedAt").WithGetter())

	assert.True(t, b.HasMember("createdat", MemberProperty, nil))
	assert.False(t, b.HasMember("CreatedAt", MemberField, nil))
}

func TestCaseless_FoldsBeyondASCII(t *testing.T) {
	assert.True(t, Caseless("straße", "STRASSE"))
	assert.True(t, Caseless("İstanbul", "i̇stanbul"))
	assert.False(t, Caseless("name", "nom"))
}

func TestOrdinal(t *testing.T) {
	assert.True(t, Ordinal("name", "name"))
	assert.False(t, Ordinal("name", "Name"))
}
