package gemini

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/hueworks/aigate"
)

// invalidKeyReason is the detail reason the API reports for a bad key.
const invalidKeyReason = "API_KEY_INVALID"

// invalidKeyPhrases are message fragments that signal a rejected key even
// when the error text is not a structured envelope.
var invalidKeyPhrases = []string{
	"API key not valid",
	"API_KEY_INVALID",
}

// classifyError normalizes a raw failure from an operation named op.
// Already-normalized configuration errors pass through untouched so they
// are never double-wrapped.
func classifyError(op string, err error) error {
	if errors.Is(err, aigate.ErrNotConfigured) {
		return err
	}
	msg := err.Error()
	if msg == "" {
		return &aigate.UnknownError{Op: op}
	}
	if isInvalidKeyMessage(msg) {
		return aigate.ErrNotConfigured
	}
	return &aigate.GenericError{Op: op, Message: msg, Cause: err}
}

// isInvalidKeyMessage reports whether a failure message indicates an
// invalid or unconfigured API key. Direct substring matches take
// precedence; otherwise the message is probed as a JSON error envelope and
// classified on its detail reasons. A message that is not valid JSON just
// means "not a key error".
func isInvalidKeyMessage(msg string) bool {
	for _, phrase := range invalidKeyPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}

	var envelope struct {
		Error struct {
			Details []struct {
				Reason string `json:"reason"`
			} `json:"details"`
		} `json:"error"`
	}
	if json.Unmarshal([]byte(msg), &envelope) != nil {
		return false
	}
	for _, detail := range envelope.Error.Details {
		if detail.Reason == invalidKeyReason {
			return true
		}
	}
	return false
}
