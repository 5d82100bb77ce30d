// Package ai abstracts the external generative-text capability. Callers send
// a prompt and get raw text back; parsing the reply into domain shapes is the
// caller's job.
package ai

import (
	"context"
	"errors"
)

// Client abstracts generative-text providers.
type Client interface {
	// GenerateText sends a prompt and returns the model's raw text reply.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// Available reports whether a usable credential is currently configured.
	// Checked fresh on each call so credential changes apply without restart.
	Available() bool
}

// ErrUnavailable is returned when no usable credential is configured. Callers
// must treat it as a signal to use the static fallback path.
var ErrUnavailable = errors.New("ai capability unavailable")
