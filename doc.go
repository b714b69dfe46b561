// Package aigate provides a thin gateway over the Google Gemini API for
// text generation, structured JSON output, image understanding, image
// generation, and image editing.
//
// The root package holds the boundary types shared by callers and the
// provider implementation: the request and result unions, the image input
// type, and the normalized error taxonomy. The actual remote calls live in
// [github.com/hueworks/aigate/gemini], and response-schema descriptors are
// built with [github.com/hueworks/aigate/schema].
//
// # Basic Usage
//
//	gw := gemini.New(gemini.FromEnv())
//
//	text, err := gw.GenerateText(ctx, "Write a haiku about the sea.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text)
//
// # Error Handling
//
// Every operation returns either its documented result or a normalized
// error. A missing or rejected API key surfaces as [ErrNotConfigured],
// whose message is stable and safe to show to an operator as-is. All other
// failures surface as a [GenericError] carrying the operation label and
// the underlying message, or an [UnknownError] when the failure carries no
// message at all.
//
//	palette, err := gw.GenerateColorPalette(ctx, "sunset")
//	if aigate.IsNotConfigured(err) {
//	    fmt.Println(err) // tell the operator to set GEMINI_API_KEY
//	    return
//	}
//
// # Image Results
//
// Generated and edited images are returned as data-URIs
// (data:image/jpeg;base64,...) so a display layer can embed them directly
// without knowing the transport format.
package aigate
