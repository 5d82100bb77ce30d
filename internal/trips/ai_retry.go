package trips

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"travel-backend/internal/ai"
	"travel-backend/internal/shared/telemetry"
)

const aiRetryBaseDelay = 300 * time.Millisecond

// retryingAI retries one transient failure before giving up. Unavailability
// is never retried; the fallback path handles it.
type retryingAI struct {
	base      ai.Client
	requestID string
}

func newRetryingAI(base ai.Client, requestID string) ai.Client {
	if base == nil {
		return nil
	}
	return retryingAI{base: base, requestID: requestID}
}

func (r retryingAI) Available() bool {
	return r.base.Available()
}

func (r retryingAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	text, err := r.base.GenerateText(ctx, prompt)
	if err == nil || !shouldRetryAI(err) {
		return text, err
	}

	telemetry.Warn("ai.retry", map[string]any{
		"request_id": r.requestID,
		"error":      err.Error(),
	})
	select {
	case <-time.After(aiRetryBaseDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return r.base.GenerateText(ctx, prompt)
}

func shouldRetryAI(err error) bool {
	if err == nil || errors.Is(err, ai.ErrUnavailable) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "unavailable") ||
		strings.Contains(msg, "internal") && strings.Contains(msg, "gemini") {
		return true
	}
	if strings.Contains(msg, "timeout") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}
