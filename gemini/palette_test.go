package gemini

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueworks/aigate"
)

func TestPalettePrompt(t *testing.T) {
	assert.Equal(t,
		"Generate a color palette with 5 colors for the theme: sunset. Provide creative names for each color.",
		palettePrompt("sunset"))
}

func TestPaletteSchema(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal(paletteSchema(), &m))

	assert.Equal(t, "object", m["type"])
	assert.Equal(t, []any{"palette"}, m["required"])

	palette := m["properties"].(map[string]any)["palette"].(map[string]any)
	assert.Equal(t, "array", palette["type"])

	item := palette["items"].(map[string]any)
	assert.Equal(t, "object", item["type"])
	assert.ElementsMatch(t, []any{"name", "hex"}, item["required"])

	props := item["properties"].(map[string]any)
	assert.Equal(t, "string", props["name"].(map[string]any)["type"])
	assert.Equal(t, "string", props["hex"].(map[string]any)["type"])
}

func TestDecodePalette(t *testing.T) {
	t.Run("well-formed palette passes through unmodified", func(t *testing.T) {
		value := map[string]any{
			"palette": []any{
				map[string]any{"name": "Ember Glow", "hex": "#FF5733"},
				map[string]any{"name": "Dusk Violet", "hex": "#6B3FA0"},
			},
		}

		colors, err := decodePalette(value)
		require.NoError(t, err)
		assert.Equal(t, []aigate.PaletteColor{
			{Name: "Ember Glow", Hex: "#FF5733"},
			{Name: "Dusk Violet", Hex: "#6B3FA0"},
		}, colors)
	})

	t.Run("missing palette key is a failure", func(t *testing.T) {
		_, err := decodePalette(map[string]any{"colors": []any{}})
		assert.EqualError(t, err, "the model response has no palette array")
	})

	t.Run("palette that is not an array is a failure", func(t *testing.T) {
		_, err := decodePalette(map[string]any{"palette": "nope"})
		assert.EqualError(t, err, "the model response has no palette array")
	})

	t.Run("non-object response is a failure", func(t *testing.T) {
		_, err := decodePalette([]any{"not", "an", "object"})
		assert.EqualError(t, err, "the model response has no palette array")
	})
}
