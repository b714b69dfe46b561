package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hueworks/aigate"
	"github.com/hueworks/aigate/schema"
)

// GenerateColorPalette asks for a five-color palette matching a theme.
// The request constrains the response to an object with a required
// palette array of {name, hex} entries.
func (g *Gateway) GenerateColorPalette(ctx context.Context, theme string) ([]aigate.PaletteColor, error) {
	colors, err := g.generatePalette(ctx, theme)
	if err != nil {
		return nil, classifyError("generate color palette", err)
	}
	return colors, nil
}

func (g *Gateway) generatePalette(ctx context.Context, theme string) ([]aigate.PaletteColor, error) {
	value, err := g.generateStructured(ctx, palettePrompt(theme), paletteSchema())
	if err != nil {
		return nil, err
	}
	return decodePalette(value)
}

func palettePrompt(theme string) string {
	return fmt.Sprintf("Generate a color palette with 5 colors for the theme: %s. Provide creative names for each color.", theme)
}

func paletteSchema() json.RawMessage {
	return schema.Object().
		Field("palette", schema.Array(
			schema.Object().
				Field("name", schema.String().Desc("Creative name of the color").Required()).
				Field("hex", schema.String().Desc("Hex code of the color").Required()),
		).Required()).
		MustBuild()
}

// decodePalette extracts the palette array from the decoded response.
func decodePalette(value any) ([]aigate.PaletteColor, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, errors.New("the model response has no palette array")
	}
	raw, ok := obj["palette"].([]any)
	if !ok {
		return nil, errors.New("the model response has no palette array")
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var colors []aigate.PaletteColor
	if err := json.Unmarshal(data, &colors); err != nil {
		return nil, err
	}
	return colors, nil
}
