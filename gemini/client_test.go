package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueworks/aigate"
)

func TestGenClient(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the same client on repeated calls", func(t *testing.T) {
		g := New(Config{APIKey: "test-key"})

		first, err := g.genClient(ctx)
		require.NoError(t, err)
		second, err := g.genClient(ctx)
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("empty key fails before any client is built", func(t *testing.T) {
		g := New(Config{})

		_, err := g.genClient(ctx)
		assert.ErrorIs(t, err, aigate.ErrNotConfigured)
		assert.Nil(t, g.client)
	})

	t.Run("whitespace-only key counts as unconfigured", func(t *testing.T) {
		g := New(Config{APIKey: "   "})

		_, err := g.genClient(ctx)
		assert.ErrorIs(t, err, aigate.ErrNotConfigured)
	})
}

func TestOperationsFailFastWithoutKey(t *testing.T) {
	ctx := context.Background()
	g := New(Config{})

	t.Run("GenerateText", func(t *testing.T) {
		_, err := g.GenerateText(ctx, "hello")
		assert.True(t, aigate.IsNotConfigured(err))
	})

	t.Run("GenerateImage", func(t *testing.T) {
		_, err := g.GenerateImage(ctx, "a lighthouse")
		assert.True(t, aigate.IsNotConfigured(err))
	})

	t.Run("GenerateColorPalette", func(t *testing.T) {
		_, err := g.GenerateColorPalette(ctx, "sunset")
		assert.True(t, aigate.IsNotConfigured(err))
	})

	t.Run("error message is the fixed operator-facing one", func(t *testing.T) {
		_, err := g.GenerateText(ctx, "hello")
		assert.EqualError(t, err, aigate.ErrNotConfigured.Error())
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("reads GEMINI_API_KEY", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "from-env")
		assert.Equal(t, "from-env", FromEnv().APIKey)
	})

	t.Run("unset variable yields empty config", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		assert.Equal(t, "", FromEnv().APIKey)
	})
}
