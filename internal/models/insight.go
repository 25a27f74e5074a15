// ABOUTME: Insight model for AI-generated health observations.
// ABOUTME: Written only by the insight pipeline, read-only elsewhere.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Well-known insight types produced by the generator.
const (
	InsightCyclePrediction = "cycle_prediction"
	InsightSymptomAnalysis = "symptom_analysis"
	InsightHealthTip       = "health_tip"
	InsightWellnessTip     = "wellness_tip"
)

// Insight is a generated health observation persisted for later display.
// Metadata carries generator-specific extras such as confidence or priority.
type Insight struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	Content   string
	Metadata  map[string]any
	CreatedAt time.Time
}

// NewInsight creates an insight of the given type.
func NewInsight(userID uuid.UUID, insightType, content string) *Insight {
	return &Insight{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      insightType,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// WithMetadata attaches generator metadata.
func (i *Insight) WithMetadata(meta map[string]any) *Insight {
	i.Metadata = meta
	return i
}
