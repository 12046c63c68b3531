// Package inference wraps the external extractive question-answering
// service used when the knowledge base has no match. The service is treated
// as untrusted and unreliable: every failure mode collapses to "no answer"
// so the fallback layer can never take down a request.
package inference

import (
	"context"
	"log/slog"
)

// ConfidenceCutoff is the minimum confidence an extracted answer must
// strictly exceed to be accepted. Hand-tuned; kept as-is rather than
// re-derived.
const ConfidenceCutoff = 0.3

// Adapter asks the extractive QA capability for an answer. The question is
// the raw user message, not normalized tokens; extraction works on natural
// text. The passage is the caller's conversation context.
type Adapter interface {
	// Ask returns the extracted answer and true when the capability
	// produced one above the confidence cutoff. Any failure, timeout or
	// low-confidence result returns false.
	Ask(ctx context.Context, question, passage string) (string, bool)
	// Available reports whether the capability initialized at startup.
	Available() bool
}

// Unavailable is the permanent degraded mode used when the capability could
// not be initialized. It never attempts a call.
type Unavailable struct{}

// NewUnavailable logs the degradation once and returns the no-op adapter.
func NewUnavailable(reason string) Unavailable {
	slog.Warn("inference capability unavailable, running in knowledge-base-only mode", "reason", reason)
	return Unavailable{}
}

// Ask always reports no answer.
func (Unavailable) Ask(_ context.Context, _, _ string) (string, bool) {
	return "", false
}

// Available always reports false.
func (Unavailable) Available() bool { return false }
