package gemini

import (
	"context"
	"os"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/hueworks/aigate"
)

// Config holds the gateway configuration.
type Config struct {
	// APIKey authorizes calls to the Gemini API. Empty means not
	// configured; operations will fail with aigate.ErrNotConfigured
	// before any network activity.
	APIKey string
}

// FromEnv builds a Config from the GEMINI_API_KEY environment variable.
// An unset or empty variable is a handled state, not an error.
func FromEnv() Config {
	return Config{APIKey: os.Getenv("GEMINI_API_KEY")}
}

// Gateway is a thin client for the Gemini API. The zero value is not
// usable; construct one with New.
type Gateway struct {
	cfg Config

	once   sync.Once
	client *genai.Client
	err    error
}

// New creates a Gateway. The underlying SDK client is not built until the
// first operation runs.
func New(cfg Config) *Gateway {
	return &Gateway{cfg: cfg}
}

// genClient returns the memoized SDK client, constructing it on first use.
// The API key check runs before construction so a missing key never
// reaches the network layer.
func (g *Gateway) genClient(ctx context.Context) (*genai.Client, error) {
	if strings.TrimSpace(g.cfg.APIKey) == "" {
		return nil, aigate.ErrNotConfigured
	}
	g.once.Do(func() {
		g.client, g.err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return g.client, g.err
}
