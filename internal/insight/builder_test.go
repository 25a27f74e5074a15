// ABOUTME: Tests for the health context builder and insight persistence.
// ABOUTME: A scripted generator stands in for the external service.
package insight

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/query"
	"github.com/harperreed/bloom/internal/store"
	"github.com/sirupsen/logrus"
)

// fakeGenerator returns scripted drafts and answers.
type fakeGenerator struct {
	drafts  []Draft
	answer  string
	err     error
	lastCtx *HealthContext
}

func (f *fakeGenerator) GenerateInsights(ctx context.Context, hc *HealthContext) ([]Draft, error) {
	f.lastCtx = hc
	return f.drafts, f.err
}

func (f *fakeGenerator) Answer(ctx context.Context, question string, hc *HealthContext) (string, error) {
	f.lastCtx = hc
	return f.answer, f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupBuilder(t *testing.T, gen Generator) (*Builder, *models.User, store.Store) {
	t.Helper()
	s := store.NewMemory()
	u, err := store.EnsureDefaultUser(s)
	if err != nil {
		t.Fatalf("EnsureDefaultUser failed: %v", err)
	}
	return NewBuilder(s, query.New(s), gen, quietLogger()), u, s
}

func TestBuildContextBounded(t *testing.T) {
	gen := &fakeGenerator{}
	b, u, s := setupBuilder(t, gen)

	// More records than the context admits.
	day := models.Date("2025-01-01")
	for i := 0; i < MaxContextSymptoms+5; i++ {
		e := models.NewSymptomEntry(u.ID, day.AddDays(i), "cramps", 2)
		if err := s.CreateSymptom(e); err != nil {
			t.Fatalf("CreateSymptom failed: %v", err)
		}
	}
	for i := 0; i < MaxContextCycles+2; i++ {
		c := models.NewCycleRecord(u.ID, day.AddDays(i*28))
		if err := s.CreateCycle(c); err != nil {
			t.Fatalf("CreateCycle failed: %v", err)
		}
	}

	hc, err := b.BuildContext(u.ID)
	if err != nil {
		t.Fatalf("BuildContext failed: %v", err)
	}
	if len(hc.Symptoms) != MaxContextSymptoms {
		t.Errorf("got %d symptoms, want %d", len(hc.Symptoms), MaxContextSymptoms)
	}
	if len(hc.Cycles) != MaxContextCycles {
		t.Errorf("got %d cycles, want %d", len(hc.Cycles), MaxContextCycles)
	}
	// Most recent first means the newest symptom survives the cap.
	wantNewest := day.AddDays(MaxContextSymptoms + 4)
	if hc.Symptoms[0].Date != wantNewest {
		t.Errorf("newest symptom: got %s, want %s", hc.Symptoms[0].Date, wantNewest)
	}
	if hc.User == nil || hc.User.ID != u.ID {
		t.Error("context should carry the user profile")
	}
}

func TestGenerateAndStorePersistsDrafts(t *testing.T) {
	gen := &fakeGenerator{drafts: []Draft{
		{Type: models.InsightHealthTip, Content: "Drink more water.", Metadata: map[string]any{"priority": "low"}},
		{Type: models.InsightSymptomAnalysis, Content: "Cramps cluster early in your cycle."},
	}}
	b, u, s := setupBuilder(t, gen)

	stored, err := b.GenerateAndStore(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GenerateAndStore failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("got %d insights, want 2", len(stored))
	}

	persisted, err := s.InsightsByUser(u.ID)
	if err != nil {
		t.Fatalf("InsightsByUser failed: %v", err)
	}
	if len(persisted) != 2 {
		t.Errorf("got %d persisted insights, want 2", len(persisted))
	}
}

func TestGenerateFallsBackOnError(t *testing.T) {
	gen := &fakeGenerator{err: ErrUnavailable}
	b, u, s := setupBuilder(t, gen)

	stored, err := b.GenerateAndStore(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GenerateAndStore should not surface generator failure: %v", err)
	}
	if len(stored) != len(FallbackInsights()) {
		t.Fatalf("got %d insights, want %d fallbacks", len(stored), len(FallbackInsights()))
	}
	for _, ins := range stored {
		if ins.Metadata["fallback"] != true {
			t.Errorf("fallback insight should be marked, got %v", ins.Metadata)
		}
	}

	persisted, err := s.InsightsByUser(u.ID)
	if err != nil {
		t.Fatalf("InsightsByUser failed: %v", err)
	}
	if len(persisted) != len(FallbackInsights()) {
		t.Errorf("fallbacks should be persisted, got %d", len(persisted))
	}
}

func TestGenerateFallsBackOnEmptyResult(t *testing.T) {
	gen := &fakeGenerator{drafts: nil, err: nil}
	b, u, _ := setupBuilder(t, gen)

	stored, err := b.GenerateAndStore(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GenerateAndStore failed: %v", err)
	}
	if len(stored) != len(FallbackInsights()) {
		t.Errorf("empty result should trigger fallbacks, got %d insights", len(stored))
	}
}

func TestAskReturnsGeneratorAnswer(t *testing.T) {
	gen := &fakeGenerator{answer: "Your next period is due around March 29."}
	b, u, _ := setupBuilder(t, gen)

	answer, err := b.Ask(context.Background(), u.ID, "when is my next period?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != gen.answer {
		t.Errorf("got %q, want %q", answer, gen.answer)
	}
	if gen.lastCtx == nil {
		t.Error("Ask should pass a health context to the generator")
	}
}

func TestAskFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("boom: %w", ErrUnavailable)}
	b, u, _ := setupBuilder(t, gen)

	answer, err := b.Ask(context.Background(), u.ID, "why am I tired?")
	if err != nil {
		t.Fatalf("Ask should not surface generator failure: %v", err)
	}
	if answer != FallbackAnswer {
		t.Errorf("got %q, want fallback answer", answer)
	}
}

func TestUnavailableGenerator(t *testing.T) {
	b, u, _ := setupBuilder(t, Unavailable{})

	stored, err := b.GenerateAndStore(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GenerateAndStore failed: %v", err)
	}
	if len(stored) != len(FallbackInsights()) {
		t.Errorf("Unavailable generator should yield fallbacks, got %d", len(stored))
	}
}
