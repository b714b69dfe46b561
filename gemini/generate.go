package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/genai"

	"github.com/hueworks/aigate"
)

// GenerateText sends a plain text prompt and returns the trimmed response
// text.
func (g *Gateway) GenerateText(ctx context.Context, prompt string) (string, error) {
	text, err := g.generateText(ctx, prompt)
	if err != nil {
		return "", classifyError("generate text", err)
	}
	return text, nil
}

func (g *Gateway) generateText(ctx context.Context, prompt string) (string, error) {
	client, err := g.genClient(ctx)
	if err != nil {
		return "", err
	}
	resp, err := client.Models.GenerateContent(ctx, TextModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}

// GenerateStructuredText sends a prompt with a response schema and returns
// the decoded JSON value. Unlike the vision path, a response that fails to
// decode is an error here.
func (g *Gateway) GenerateStructuredText(ctx context.Context, prompt string, schema json.RawMessage) (any, error) {
	value, err := g.generateStructured(ctx, prompt, schema)
	if err != nil {
		return nil, classifyError("generate structured text", err)
	}
	return value, nil
}

func (g *Gateway) generateStructured(ctx context.Context, prompt string, schema json.RawMessage) (any, error) {
	client, err := g.genClient(ctx)
	if err != nil {
		return nil, err
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(schema),
	}
	resp, err := client.Models.GenerateContent(ctx, TextModel, genai.Text(prompt), config)
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal([]byte(responseText(resp)), &value); err != nil {
		return nil, err
	}
	return value, nil
}

// GenerateTextWithImage sends an image alongside a text prompt. With
// asJSON set, the response is decoded as JSON when possible; a response
// the model did not format as requested comes back as a KindRawResult
// carrying the raw text instead of an error.
func (g *Gateway) GenerateTextWithImage(ctx context.Context, prompt string, img aigate.Image, asJSON bool) (*aigate.Result, error) {
	result, err := g.generateVision(ctx, prompt, img, asJSON)
	if err != nil {
		return nil, classifyError("analyze image", err)
	}
	return result, nil
}

func (g *Gateway) generateVision(ctx context.Context, prompt string, img aigate.Image, asJSON bool) (*aigate.Result, error) {
	client, err := g.genClient(ctx)
	if err != nil {
		return nil, err
	}

	contents := imagePromptContents(prompt, img)
	var config *genai.GenerateContentConfig
	if asJSON {
		config = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}
	resp, err := client.Models.GenerateContent(ctx, TextModel, contents, config)
	if err != nil {
		return nil, err
	}
	return unwrapVision(responseText(resp), asJSON), nil
}

// imagePromptContents builds the image-then-text user content shared by
// the vision and edit calls.
func imagePromptContents(prompt string, img aigate.Image) []*genai.Content {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: img.MIMEType, Data: img.Data}},
		genai.NewPartFromText(prompt),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

// unwrapVision shapes the vision response. The model does not always honor
// a requested JSON format, so decode failure falls back to the raw text.
func unwrapVision(text string, asJSON bool) *aigate.Result {
	if !asJSON {
		return &aigate.Result{Kind: aigate.KindTextResult, Text: text}
	}
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return &aigate.Result{Kind: aigate.KindRawResult, RawResponse: text}
	}
	return &aigate.Result{Kind: aigate.KindStructuredResult, Data: value}
}

// responseText concatenates the text parts of the first candidate and
// trims surrounding whitespace.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return strings.TrimSpace(text)
}
