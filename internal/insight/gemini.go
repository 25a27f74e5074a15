// ABOUTME: Gemini REST implementation of the Generator interface.
// ABOUTME: Structured-JSON insight generation plus free-text question answering.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	defaultFlashModel = "gemini-1.5-flash"
	defaultProModel   = "gemini-1.5-pro"
)

// Gemini calls the Gemini generateContent API. Insight generation uses
// the flash model with a JSON response type; question answering uses
// the pro model with a system instruction.
type Gemini struct {
	http       *resty.Client
	apiKey     string
	flashModel string
	proModel   string
}

// GeminiOption customizes the client.
type GeminiOption func(*Gemini)

// WithBaseURL overrides the API endpoint, for tests.
func WithBaseURL(url string) GeminiOption {
	return func(g *Gemini) { g.http.SetBaseURL(url) }
}

// WithModels overrides the generation models.
func WithModels(flash, pro string) GeminiOption {
	return func(g *Gemini) {
		g.flashModel = flash
		g.proModel = pro
	}
}

// NewGemini creates a Gemini client. Every request is bounded by the
// given timeout in addition to any caller-supplied context deadline.
func NewGemini(apiKey string, timeout time.Duration, opts ...GeminiOption) *Gemini {
	g := &Gemini{
		http: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(timeout).
			SetRetryCount(1),
		apiKey:     apiKey,
		flashModel: defaultFlashModel,
		proModel:   defaultProModel,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Wire types for the generateContent API.

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateInsights asks the flash model for 3-4 structured insights.
func (g *Gemini) GenerateInsights(ctx context.Context, hc *HealthContext) ([]Draft, error) {
	prompt := insightPrompt(hc)
	req := &geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{ResponseMIMEType: "application/json"},
	}

	text, err := g.generate(ctx, g.flashModel, req)
	if err != nil {
		return nil, err
	}

	var drafts []Draft
	if err := json.Unmarshal([]byte(text), &drafts); err != nil {
		return nil, fmt.Errorf("%w: malformed insight payload: %v", ErrUnavailable, err)
	}
	var valid []Draft
	for _, d := range drafts {
		if d.Type == "" || d.Content == "" {
			continue
		}
		valid = append(valid, d)
	}
	return valid, nil
}

// Answer asks the pro model a free-text question with the user's
// context as system instruction.
func (g *Gemini) Answer(ctx context.Context, question string, hc *HealthContext) (string, error) {
	req := &geminiRequest{
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: question}}}},
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: answerSystemPrompt(hc)}}},
	}

	text, err := g.generate(ctx, g.proModel, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty answer", ErrUnavailable)
	}
	return text, nil
}

// generate posts one generateContent request and extracts the first
// candidate's text. Transport failures, non-2xx statuses, and empty
// candidates all map to ErrUnavailable.
func (g *Gemini) generate(ctx context.Context, model string, req *geminiRequest) (string, error) {
	var result geminiResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(req).
		SetResult(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", model))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: %s returned status %d", ErrUnavailable, model, resp.StatusCode())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates returned", ErrUnavailable)
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

func insightPrompt(hc *HealthContext) string {
	var b strings.Builder
	b.WriteString("As a women's health AI assistant, analyze the following health data and provide personalized insights:\n\n")
	b.WriteString("Cycle Data: " + marshalForPrompt(hc.Cycles) + "\n")
	b.WriteString("Recent Symptoms: " + marshalForPrompt(hc.Symptoms) + "\n")
	b.WriteString("Mood Patterns: " + marshalForPrompt(hc.Moods) + "\n")
	b.WriteString("Wellness Data: " + marshalForPrompt(hc.Wellness) + "\n\n")
	b.WriteString("Generate 3-4 personalized health insights focusing on:\n")
	b.WriteString("1. Cycle patterns and predictions\n")
	b.WriteString("2. Symptom correlations\n")
	b.WriteString("3. Wellness trends\n")
	b.WriteString("4. Actionable health recommendations\n\n")
	b.WriteString("Format as a JSON array of objects containing: type, content, metadata")
	return b.String()
}

func answerSystemPrompt(hc *HealthContext) string {
	var b strings.Builder
	b.WriteString("You are a knowledgeable women's health AI assistant. ")
	b.WriteString("Provide helpful, evidence-based answers about women's health, menstrual cycles, pregnancy, and wellness. ")
	b.WriteString("Be supportive, informative, and always recommend consulting healthcare providers for serious concerns.\n\n")
	b.WriteString("User Context:\n")
	b.WriteString("- Recent cycles: " + marshalForPrompt(hc.Cycles) + "\n")
	b.WriteString("- Recent symptoms: " + marshalForPrompt(hc.Symptoms) + "\n")
	b.WriteString("- Recent moods: " + marshalForPrompt(hc.Moods) + "\n")
	return b.String()
}

func marshalForPrompt(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}
