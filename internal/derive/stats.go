// ABOUTME: Cycle history statistics: average length, prediction, regularity.
// ABOUTME: Unknown lengths fall back to the 28-day reference cycle.
package derive

import (
	"math"

	"github.com/harperreed/bloom/internal/models"
)

// DefaultCycleLength is assumed for cycles with no recorded length.
const DefaultCycleLength = 28

// defaultRegularity is reported when history is too thin to score.
const defaultRegularity = 0.8

// CycleStats summarizes a user's cycle history.
type CycleStats struct {
	AverageLength      int         `json:"average_length"`
	PredictedNextStart models.Date `json:"predicted_next_start"`
	RegularityScore    float64     `json:"regularity_score"`
}

// Stats computes summary statistics over a cycle history. Cycles must
// be ordered most recently started first, as the query layer returns
// them. An empty history predicts a default-length cycle from asOf.
func Stats(cycles []*models.CycleRecord, asOf models.Date) CycleStats {
	if len(cycles) == 0 {
		return CycleStats{
			AverageLength:      DefaultCycleLength,
			PredictedNextStart: asOf.AddDays(DefaultCycleLength),
			RegularityScore:    defaultRegularity,
		}
	}

	var lengths []float64
	var total float64
	for _, c := range cycles {
		length := float64(DefaultCycleLength)
		if c.Length != nil {
			length = float64(*c.Length)
		}
		lengths = append(lengths, length)
		total += length
	}
	avg := total / float64(len(lengths))

	return CycleStats{
		AverageLength:      int(math.Round(avg)),
		PredictedNextStart: cycles[0].StartDate.AddDays(int(math.Round(avg))),
		RegularityScore:    regularity(lengths, avg),
	}
}

// regularity scores cycle-length consistency in [0, 1]: 1 means every
// cycle had the same length. With fewer than two known lengths the
// default score applies.
func regularity(lengths []float64, avg float64) float64 {
	if len(lengths) < 2 || avg == 0 {
		return defaultRegularity
	}
	var variance float64
	for _, l := range lengths {
		variance += (l - avg) * (l - avg)
	}
	variance /= float64(len(lengths))
	score := 1 - math.Sqrt(variance)/avg
	if score < 0 {
		return 0
	}
	return score
}
