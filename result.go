package aigate

// ResultKind discriminates the variants of a generation result.
type ResultKind string

const (
	// KindTextResult carries plain text in Text.
	KindTextResult ResultKind = "text"
	// KindImagesResult carries image data-URIs in Images.
	KindImagesResult ResultKind = "images"
	// KindStructuredResult carries a decoded JSON value in Data.
	KindStructuredResult ResultKind = "structured"
	// KindEditResult carries an edited image (and optional text) in Edit.
	KindEditResult ResultKind = "edit"
	// KindRawResult carries unparsed model output in RawResponse. It is
	// produced when JSON was requested but the model did not return
	// valid JSON.
	KindRawResult ResultKind = "raw"
	// KindPaletteResult carries palette colors in Palette.
	KindPaletteResult ResultKind = "palette"
)

// Result is a tagged union over the generation result kinds. Kind selects
// the variant; only the field documented for that kind is populated.
type Result struct {
	Kind ResultKind
	// Text is the trimmed response text. Set for KindTextResult.
	Text string
	// Images holds one data-URI per generated image. Set for
	// KindImagesResult.
	Images []string
	// Data is the decoded JSON value. Set for KindStructuredResult.
	Data any
	// Edit is the image-editing result. Set for KindEditResult.
	Edit *EditResult
	// RawResponse is the raw model output when requested JSON could not
	// be parsed. Set for KindRawResult.
	RawResponse string
	// Palette holds the generated colors. Set for KindPaletteResult.
	Palette []PaletteColor
}

// EditResult is the outcome of an image-editing call.
type EditResult struct {
	// Text is commentary the model returned alongside the image. Empty
	// when the model returned no text part.
	Text string
	// Image is the edited image as a data-URI.
	Image string
}

// PaletteColor is a single named color in a generated palette.
type PaletteColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}
