package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestStringBuilder(t *testing.T) {
	t.Run("basic string", func(t *testing.T) {
		raw, err := String().Desc("a color name").Build()
		require.NoError(t, err)

		m := decode(t, raw)
		assert.Equal(t, "string", m["type"])
		assert.Equal(t, "a color name", m["description"])
	})

	t.Run("enum values", func(t *testing.T) {
		raw := String().Enum("warm", "cool").MustBuild()
		m := decode(t, raw)
		assert.Equal(t, []any{"warm", "cool"}, m["enum"])
	})
}

func TestObjectBuilder(t *testing.T) {
	t.Run("required fields are tracked", func(t *testing.T) {
		raw := Object().
			Field("name", String().Required()).
			Field("note", String()).
			MustBuild()

		m := decode(t, raw)
		assert.Equal(t, "object", m["type"])
		assert.Equal(t, []any{"name"}, m["required"])

		props := m["properties"].(map[string]any)
		assert.Contains(t, props, "name")
		assert.Contains(t, props, "note")
	})

	t.Run("duplicate required field is listed once", func(t *testing.T) {
		raw := Object().
			Field("name", String().Required()).
			Field("name", String().Required()).
			MustBuild()

		m := decode(t, raw)
		assert.Equal(t, []any{"name"}, m["required"])
	})

	t.Run("nested objects validate recursively", func(t *testing.T) {
		raw, err := Object().
			Field("color", Object().
				Field("name", String().Required()).
				Field("hex", String().Required()).
				Required()).
			Build()
		require.NoError(t, err)

		m := decode(t, raw)
		color := m["properties"].(map[string]any)["color"].(map[string]any)
		assert.ElementsMatch(t, []any{"name", "hex"}, color["required"])
	})

	t.Run("non-builder field panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Object().Field("bad", 42)
		})
	})
}

func TestArrayBuilder(t *testing.T) {
	t.Run("items schema is embedded", func(t *testing.T) {
		raw := Array(String()).MustBuild()
		m := decode(t, raw)
		assert.Equal(t, "array", m["type"])
		assert.Equal(t, "string", m["items"].(map[string]any)["type"])
	})

	t.Run("invalid nested array fails validation", func(t *testing.T) {
		_, err := Object().
			Field("values", &ArrayBuilder{node: &node{Type: "array"}}).
			Build()
		assert.ErrorIs(t, err, ErrNilItems)
	})
}

func TestScalarBuilders(t *testing.T) {
	tests := []struct {
		name     string
		builder  Builder
		expected string
	}{
		{name: "int", builder: Int(), expected: "integer"},
		{name: "number", builder: Number(), expected: "number"},
		{name: "bool", builder: Bool(), expected: "boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := decode(t, tt.builder.MustBuild())
			assert.Equal(t, tt.expected, m["type"])
		})
	}
}
