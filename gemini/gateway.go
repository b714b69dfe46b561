package gemini

import (
	"context"
	"fmt"

	"github.com/hueworks/aigate"
)

// Generate dispatches a request union to the matching operation and wraps
// the outcome in the result union. Callers that know the request kind at
// compile time can use the typed methods directly.
func (g *Gateway) Generate(ctx context.Context, req aigate.Request) (*aigate.Result, error) {
	switch req.Kind {
	case aigate.KindTextRequest:
		text, err := g.GenerateText(ctx, req.Prompt)
		if err != nil {
			return nil, err
		}
		return &aigate.Result{Kind: aigate.KindTextResult, Text: text}, nil

	case aigate.KindStructuredRequest:
		value, err := g.GenerateStructuredText(ctx, req.Prompt, req.Schema)
		if err != nil {
			return nil, err
		}
		return &aigate.Result{Kind: aigate.KindStructuredResult, Data: value}, nil

	case aigate.KindVisionRequest:
		return g.GenerateTextWithImage(ctx, req.Prompt, req.Image, req.AsJSON)

	case aigate.KindEditRequest:
		edit, err := g.EditImage(ctx, req.Prompt, req.Image)
		if err != nil {
			return nil, err
		}
		return &aigate.Result{Kind: aigate.KindEditResult, Edit: edit}, nil

	case aigate.KindImageRequest:
		uris, err := g.GenerateImage(ctx, req.Prompt, aigate.WithImageCount(req.Count))
		if err != nil {
			return nil, err
		}
		return &aigate.Result{Kind: aigate.KindImagesResult, Images: uris}, nil

	case aigate.KindPaletteRequest:
		colors, err := g.GenerateColorPalette(ctx, req.Prompt)
		if err != nil {
			return nil, err
		}
		return &aigate.Result{Kind: aigate.KindPaletteResult, Palette: colors}, nil

	default:
		return nil, fmt.Errorf("unsupported request kind %q", req.Kind)
	}
}
