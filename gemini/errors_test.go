package gemini

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueworks/aigate"
)

func TestClassifyError(t *testing.T) {
	t.Run("configuration error passes through unchanged", func(t *testing.T) {
		err := classifyError("generate text", aigate.ErrNotConfigured)
		assert.Equal(t, aigate.ErrNotConfigured, err)

		// A second pass must not wrap it either.
		assert.Equal(t, aigate.ErrNotConfigured, classifyError("generate text", err))
	})

	t.Run("wrapped configuration error passes through unchanged", func(t *testing.T) {
		wrapped := fmt.Errorf("client init: %w", aigate.ErrNotConfigured)
		assert.Equal(t, wrapped, classifyError("generate text", wrapped))
	})

	t.Run("invalid key substring becomes the configuration error", func(t *testing.T) {
		raw := errors.New("got status 400: API key not valid. Please pass a valid API key.")
		err := classifyError("generate image", raw)
		assert.ErrorIs(t, err, aigate.ErrNotConfigured)
	})

	t.Run("structured envelope with invalid-key reason becomes the configuration error", func(t *testing.T) {
		raw := errors.New(`{"error":{"details":[{"reason":"API_KEY_INVALID"}]}}`)
		err := classifyError("generate image", raw)
		assert.ErrorIs(t, err, aigate.ErrNotConfigured)
	})

	t.Run("structured envelope with a different reason stays generic", func(t *testing.T) {
		raw := errors.New(`{"error":{"details":[{"reason":"RATE_LIMIT_EXCEEDED"}]}}`)
		err := classifyError("generate image", raw)

		var generic *aigate.GenericError
		require.ErrorAs(t, err, &generic)
		assert.Equal(t, "generate image", generic.Op)
		assert.Equal(t, raw.Error(), generic.Message)
		assert.ErrorIs(t, err, raw)
	})

	t.Run("plain failure becomes a generic error with the operation label", func(t *testing.T) {
		raw := errors.New("context deadline exceeded")
		err := classifyError("edit image", raw)

		var generic *aigate.GenericError
		require.ErrorAs(t, err, &generic)
		assert.Equal(t, "edit image: context deadline exceeded", err.Error())
	})

	t.Run("failure without a message becomes an unknown error", func(t *testing.T) {
		err := classifyError("generate text", errors.New(""))

		var unknown *aigate.UnknownError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "generate text", unknown.Op)
	})
}

func TestIsInvalidKeyMessage(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		expected bool
	}{
		{
			name:     "direct phrase",
			msg:      "API key not valid. Please pass a valid API key.",
			expected: true,
		},
		{
			name:     "reason token embedded in plain text",
			msg:      "rpc error: API_KEY_INVALID",
			expected: true,
		},
		{
			name:     "envelope with matching reason",
			msg:      `{"error":{"details":[{"reason":"API_KEY_INVALID"}]}}`,
			expected: true,
		},
		{
			name:     "envelope with matching reason among others",
			msg:      `{"error":{"details":[{"reason":"OTHER"},{"reason":"API_KEY_INVALID"}]}}`,
			expected: true,
		},
		{
			name:     "envelope with a different reason",
			msg:      `{"error":{"details":[{"reason":"QUOTA_EXCEEDED"}]}}`,
			expected: false,
		},
		{
			name:     "envelope without details",
			msg:      `{"error":{"message":"internal"}}`,
			expected: false,
		},
		{
			name:     "malformed JSON is swallowed, not an error",
			msg:      `{"error":{"details":`,
			expected: false,
		},
		{
			name:     "ordinary message",
			msg:      "connection refused",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isInvalidKeyMessage(tt.msg))
		})
	}
}
