package llmgateway

import (
	"errors"
	"strings"
)

// Sentinel errors surfaced by the gateway.
var (
	// ErrRetriesExhausted is returned when a non-rate-limit error
	// survives the full retry ladder. The pipeline never substitutes
	// best-effort placeholder data on this path (spec.md §4.3).
	ErrRetriesExhausted = errors.New("llmgateway: retries exhausted")
)

// rateLimitMarkers are the error-message substrings that indicate a
// provider-side rate limit, per spec.md §4.3.
var rateLimitMarkers = []string{
	"rate limit",
	"quota",
	"usage limit",
	"too many requests",
	"429",
	"insufficient quota",
}

// isRateLimitError reports whether err's message matches any of the
// known rate-limit marker strings (case-insensitive substring match).
func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
