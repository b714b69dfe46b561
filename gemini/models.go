package gemini

// Model identifiers for the three call families.
const (
	// TextModel serves plain, structured, and vision requests.
	TextModel = "gemini-2.5-flash"
	// ImageModel serves image generation.
	ImageModel = "imagen-3.0-generate-002"
	// EditModel serves image editing with mixed text/image output.
	EditModel = "gemini-2.5-flash-image-preview"
)

// Fixed output configuration for generated images.
const (
	imageAspectRatio = "1:1"
	imageMIMEType    = "image/jpeg"
)
