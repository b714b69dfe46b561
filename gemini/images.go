package gemini

import (
	"context"
	"encoding/base64"
	"errors"

	"google.golang.org/genai"

	"github.com/hueworks/aigate"
)

// GenerateImage generates images from a text prompt using Imagen and
// returns one data-URI per image. Output is fixed to square JPEG; use
// aigate.WithImageCount to request more than one image (Imagen supports
// 1-4).
func (g *Gateway) GenerateImage(ctx context.Context, prompt string, opts ...aigate.ImageOption) ([]string, error) {
	uris, err := g.generateImages(ctx, prompt, opts...)
	if err != nil {
		return nil, classifyError("generate image", err)
	}
	return uris, nil
}

func (g *Gateway) generateImages(ctx context.Context, prompt string, opts ...aigate.ImageOption) ([]string, error) {
	options := aigate.ApplyImageOptions(opts...)
	client, err := g.genClient(ctx)
	if err != nil {
		return nil, err
	}

	n := options.Count
	if n <= 0 {
		n = 1
	}
	config := &genai.GenerateImagesConfig{
		NumberOfImages: int32(n),
		AspectRatio:    imageAspectRatio,
		OutputMIMEType: imageMIMEType,
	}

	resp, err := client.Models.GenerateImages(ctx, ImageModel, prompt, config)
	if err != nil {
		return nil, err
	}
	return unwrapImages(resp)
}

func unwrapImages(resp *genai.GenerateImagesResponse) ([]string, error) {
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, errors.New("no images were generated")
	}
	uris := make([]string, 0, len(resp.GeneratedImages))
	for _, img := range resp.GeneratedImages {
		var data []byte
		if img.Image != nil {
			data = img.Image.ImageBytes
		}
		uris = append(uris, dataURI(imageMIMEType, data))
	}
	return uris, nil
}

// EditImage asks the edit model to transform an image per the prompt. The
// result always carries the edited image as a data-URI; accompanying text
// is optional and empty when the model returned none.
func (g *Gateway) EditImage(ctx context.Context, prompt string, img aigate.Image) (*aigate.EditResult, error) {
	result, err := g.editImage(ctx, prompt, img)
	if err != nil {
		return nil, classifyError("edit image", err)
	}
	return result, nil
}

func (g *Gateway) editImage(ctx context.Context, prompt string, img aigate.Image) (*aigate.EditResult, error) {
	client, err := g.genClient(ctx)
	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}
	resp, err := client.Models.GenerateContent(ctx, EditModel, imagePromptContents(prompt, img), config)
	if err != nil {
		return nil, err
	}
	return unwrapEdit(resp)
}

// unwrapEdit scans all response parts. When the model returns several text
// or image parts, the last of each wins.
func unwrapEdit(resp *genai.GenerateContentResponse) (*aigate.EditResult, error) {
	result := &aigate.EditResult{}
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				result.Text = part.Text
			}
			if part.InlineData != nil {
				result.Image = dataURI(part.InlineData.MIMEType, part.InlineData.Data)
			}
		}
	}
	if result.Image == "" {
		return nil, errors.New("the service did not return an edited image")
	}
	return result, nil
}

// dataURI wraps raw bytes into a self-describing data-URI a display layer
// can embed directly.
func dataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
