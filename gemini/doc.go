// Package gemini implements the aigate gateway on top of the Google GenAI
// SDK (google.golang.org/genai).
//
// A [Gateway] is constructed by the composing application with an explicit
// [Config]; the underlying SDK client is built lazily on first use and
// reused for the lifetime of the gateway. Use [FromEnv] to read the API
// key from the GEMINI_API_KEY environment variable:
//
//	gw := gemini.New(gemini.FromEnv())
//	text, err := gw.GenerateText(ctx, "Why is the sky blue?")
//
// Each operation performs exactly one remote call. Failures are normalized
// before they reach the caller: a missing or invalid API key surfaces as
// [aigate.ErrNotConfigured]; everything else surfaces as an
// [aigate.GenericError] carrying the operation label, or an
// [aigate.UnknownError] when the failure has no message.
package gemini
