// ABOUTME: Builds bounded health contexts and persists generated insights.
// ABOUTME: Generator failure degrades to fixed fallback insights, never an error.
package insight

import (
	"context"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/query"
	"github.com/harperreed/bloom/internal/store"
	"github.com/sirupsen/logrus"
)

// Bounds on the context snapshot handed to the generator.
const (
	MaxContextCycles   = 3
	MaxContextSymptoms = 10
	MaxContextMoods    = 7
	MaxContextWellness = 7
)

// HealthContext is the bounded, most-recent-first snapshot of a user's
// records passed to the generator.
type HealthContext struct {
	User     *models.User                 `json:"user,omitempty"`
	Cycles   []*models.CycleRecord        `json:"cycles,omitempty"`
	Symptoms []*models.SymptomEntry       `json:"symptoms,omitempty"`
	Moods    []*models.MoodEntry          `json:"moods,omitempty"`
	Wellness []*models.WellnessEntry      `json:"wellness,omitempty"`
}

// Builder assembles health contexts, calls the generator, and persists
// results back through the store.
type Builder struct {
	store   store.Store
	queries *query.Queries
	gen     Generator
	log     *logrus.Logger
}

// NewBuilder creates a Builder. The logger records best-effort persist
// failures; pass a configured instance rather than relying on a global.
func NewBuilder(s store.Store, q *query.Queries, gen Generator, log *logrus.Logger) *Builder {
	return &Builder{store: s, queries: q, gen: gen, log: log}
}

// BuildContext assembles the bounded snapshot for a user, most recent
// records first.
func (b *Builder) BuildContext(userID uuid.UUID) (*HealthContext, error) {
	user, err := b.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	cycles, err := b.queries.ListCycles(userID)
	if err != nil {
		return nil, err
	}
	symptoms, err := b.queries.ListSymptoms(userID)
	if err != nil {
		return nil, err
	}
	moods, err := b.queries.ListMoods(userID)
	if err != nil {
		return nil, err
	}
	wellness, err := b.queries.ListWellness(userID)
	if err != nil {
		return nil, err
	}

	return &HealthContext{
		User:     user,
		Cycles:   capSlice(cycles, MaxContextCycles),
		Symptoms: capSlice(symptoms, MaxContextSymptoms),
		Moods:    capSlice(moods, MaxContextMoods),
		Wellness: capSlice(wellness, MaxContextWellness),
	}, nil
}

// GenerateAndStore builds the user's context, asks the generator for
// insights, and persists each returned draft. When the generator is
// unavailable or returns nothing usable, the fixed fallback insights
// are persisted instead: having some insight is prioritized over
// personalized content. Persisting is best-effort; individual write
// failures are logged and skipped, since insights are additive and
// cheap to regenerate.
func (b *Builder) GenerateAndStore(ctx context.Context, userID uuid.UUID) ([]*models.Insight, error) {
	hc, err := b.BuildContext(userID)
	if err != nil {
		return nil, err
	}

	drafts, genErr := b.gen.GenerateInsights(ctx, hc)
	if genErr != nil || len(drafts) == 0 {
		if genErr != nil {
			b.log.WithError(genErr).Warn("insight generator unavailable, using fallback insights")
		}
		drafts = FallbackInsights()
	}

	var stored []*models.Insight
	for _, d := range drafts {
		ins := models.NewInsight(userID, d.Type, d.Content)
		if d.Metadata != nil {
			ins.WithMetadata(d.Metadata)
		}
		if err := b.store.CreateInsight(ins); err != nil {
			b.log.WithError(err).WithField("type", d.Type).Warn("failed to persist insight")
			continue
		}
		stored = append(stored, ins)
	}
	return stored, nil
}

// Ask answers a free-text health question against the user's context.
// Collaborator failure yields the fixed fallback answer, never an error
// surfaced to the end user.
func (b *Builder) Ask(ctx context.Context, userID uuid.UUID, question string) (string, error) {
	hc, err := b.BuildContext(userID)
	if err != nil {
		return "", err
	}

	answer, genErr := b.gen.Answer(ctx, question, hc)
	if genErr != nil {
		b.log.WithError(genErr).Warn("insight generator unavailable, using fallback answer")
		return FallbackAnswer, nil
	}
	return answer, nil
}

// FallbackAnswer is returned when question answering is unavailable.
const FallbackAnswer = "I'm experiencing some technical difficulties. " +
	"Please try asking your question again, or consult with a healthcare " +
	"professional for important health concerns."

// FallbackInsights returns the fixed generic insights persisted when
// the generator cannot produce personalized ones.
func FallbackInsights() []Draft {
	return []Draft{
		{
			Type: models.InsightCyclePrediction,
			Content: "Based on your recent patterns, your next cycle is " +
				"predicted to start in approximately 14 days.",
			Metadata: map[string]any{"confidence": 0.8, "fallback": true},
		},
		{
			Type: models.InsightWellnessTip,
			Content: "Your sleep quality affects your mood significantly. " +
				"Consider maintaining a consistent sleep schedule.",
			Metadata: map[string]any{"priority": "high", "fallback": true},
		},
	}
}

func capSlice[T any](in []*T, max int) []*T {
	if len(in) > max {
		return in[:max]
	}
	return in
}
