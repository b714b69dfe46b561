package aigate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RequestKind discriminates the variants of a generation request.
type RequestKind string

const (
	// KindTextRequest asks for a plain text completion.
	KindTextRequest RequestKind = "text"
	// KindStructuredRequest asks for JSON constrained by a schema.
	KindStructuredRequest RequestKind = "structured"
	// KindVisionRequest asks about an image, optionally expecting JSON.
	KindVisionRequest RequestKind = "vision"
	// KindEditRequest asks for an edited version of an image.
	KindEditRequest RequestKind = "edit"
	// KindImageRequest asks for generated images.
	KindImageRequest RequestKind = "image"
	// KindPaletteRequest asks for a five-color palette for a theme.
	KindPaletteRequest RequestKind = "palette"
)

// Request is a tagged union over the generation request kinds. Kind
// selects the variant; the remaining fields are only read for the kinds
// documented on each one.
type Request struct {
	Kind RequestKind
	// Prompt is the text prompt, or the theme for a palette request.
	Prompt string
	// Schema is the response-schema descriptor. Only used for
	// structured requests.
	Schema json.RawMessage
	// Image is the input image. Only used for vision and edit requests.
	Image Image
	// AsJSON requests JSON-formatted output for a vision request.
	AsJSON bool
	// Count is the number of images to generate. Only used for image
	// requests; zero means one.
	Count int
}

// NewTextRequest creates a plain text completion request.
func NewTextRequest(prompt string) Request {
	return Request{Kind: KindTextRequest, Prompt: prompt}
}

// NewStructuredRequest creates a schema-constrained JSON request.
func NewStructuredRequest(prompt string, schema json.RawMessage) Request {
	return Request{Kind: KindStructuredRequest, Prompt: prompt, Schema: schema}
}

// NewVisionRequest creates an image-understanding request.
func NewVisionRequest(prompt string, img Image, asJSON bool) Request {
	return Request{Kind: KindVisionRequest, Prompt: prompt, Image: img, AsJSON: asJSON}
}

// NewEditRequest creates an image-editing request.
func NewEditRequest(prompt string, img Image) Request {
	return Request{Kind: KindEditRequest, Prompt: prompt, Image: img}
}

// NewImageRequest creates an image-generation request.
func NewImageRequest(prompt string, count int) Request {
	return Request{Kind: KindImageRequest, Prompt: prompt, Count: count}
}

// NewPaletteRequest creates a color-palette request for a theme.
func NewPaletteRequest(theme string) Request {
	return Request{Kind: KindPaletteRequest, Prompt: theme}
}

// Image is an input image as raw bytes plus its MIME type.
type Image struct {
	Data     []byte
	MIMEType string
}

// ImageFromFile reads an image from disk and infers its MIME type from the
// file extension. Unrecognized extensions default to image/png.
func ImageFromFile(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read image %s: %w", path, err)
	}
	return Image{Data: data, MIMEType: mimeTypeForExt(filepath.Ext(path))}, nil
}

func mimeTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
