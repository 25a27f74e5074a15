// ABOUTME: Generator contract for the external text-generation collaborator.
// ABOUTME: Failure is an explicit error, never conflated with an empty result.
package insight

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the external generator failed, timed out, or
// returned output that could not be understood. It is distinct from an
// empty result so callers can apply their fallback.
var ErrUnavailable = errors.New("insight generator unavailable")

// Draft is one generated insight before it is persisted.
type Draft struct {
	Type     string         `json:"type"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Generator produces insights and answers from a bounded health context.
// Implementations must respect context cancellation and deadlines; the
// caller bounds every call with a timeout.
type Generator interface {
	// GenerateInsights returns personalized insight drafts.
	GenerateInsights(ctx context.Context, hc *HealthContext) ([]Draft, error)

	// Answer returns a free-text answer to a health question.
	Answer(ctx context.Context, question string, hc *HealthContext) (string, error)
}

// Unavailable is a Generator with no backing service. Every call fails
// with ErrUnavailable so the builder's fallback path produces output.
// Used when no API key is configured.
type Unavailable struct{}

func (Unavailable) GenerateInsights(ctx context.Context, hc *HealthContext) ([]Draft, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Answer(ctx context.Context, question string, hc *HealthContext) (string, error) {
	return "", ErrUnavailable
}
