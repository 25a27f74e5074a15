// ABOUTME: Tests for the Gemini client against a local HTTP stub.
// ABOUTME: Covers structured parsing and the ErrUnavailable failure mapping.
package insight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harperreed/bloom/internal/models"
)

// geminiStub serves canned generateContent responses.
func geminiStub(t *testing.T, status int, candidateText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			t.Error("request missing API key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			return
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": candidateText}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func testContext() *HealthContext {
	return &HealthContext{User: models.NewUser("anna", "anna@example.com", "Anna")}
}

func TestGenerateInsightsParsesPayload(t *testing.T) {
	payload := `[
		{"type":"cycle_prediction","content":"Next period around March 29.","metadata":{"confidence":0.9}},
		{"type":"wellness_tip","content":"Aim for 7-8 hours of sleep."},
		{"type":"","content":"dropped because type is empty"}
	]`
	srv := geminiStub(t, http.StatusOK, payload)
	defer srv.Close()

	g := NewGemini("test-key", time.Second, WithBaseURL(srv.URL))
	drafts, err := g.GenerateInsights(context.Background(), testContext())
	if err != nil {
		t.Fatalf("GenerateInsights failed: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2 (empty-typed one dropped)", len(drafts))
	}
	if drafts[0].Type != models.InsightCyclePrediction {
		t.Errorf("Type: got %s", drafts[0].Type)
	}
	if drafts[0].Metadata["confidence"] != 0.9 {
		t.Errorf("Metadata: got %v", drafts[0].Metadata)
	}
}

func TestGenerateInsightsMalformedPayload(t *testing.T) {
	srv := geminiStub(t, http.StatusOK, "this is not json")
	defer srv.Close()

	g := NewGemini("test-key", time.Second, WithBaseURL(srv.URL))
	if _, err := g.GenerateInsights(context.Background(), testContext()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("got %v, want ErrUnavailable", err)
	}
}

func TestGenerateInsightsServerError(t *testing.T) {
	srv := geminiStub(t, http.StatusInternalServerError, "")
	defer srv.Close()

	g := NewGemini("test-key", time.Second, WithBaseURL(srv.URL))
	if _, err := g.GenerateInsights(context.Background(), testContext()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("got %v, want ErrUnavailable", err)
	}
}

func TestAnswerReturnsCandidateText(t *testing.T) {
	srv := geminiStub(t, http.StatusOK, "Fatigue often peaks in the luteal phase.")
	defer srv.Close()

	g := NewGemini("test-key", time.Second, WithBaseURL(srv.URL))
	answer, err := g.Answer(context.Background(), "why am I tired?", testContext())
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if answer != "Fatigue often peaks in the luteal phase." {
		t.Errorf("got %q", answer)
	}
}

func TestAnswerEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	g := NewGemini("test-key", time.Second, WithBaseURL(srv.URL))
	if _, err := g.Answer(context.Background(), "anything?", testContext()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("got %v, want ErrUnavailable", err)
	}
}

func TestUnreachableServer(t *testing.T) {
	g := NewGemini("test-key", 200*time.Millisecond, WithBaseURL("http://127.0.0.1:1"))
	if _, err := g.GenerateInsights(context.Background(), testContext()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("got %v, want ErrUnavailable", err)
	}
}
