// ABOUTME: Pure cycle-day and cycle-phase derivation.
// ABOUTME: Phase boundaries are named constants assuming a 28-day cycle.
package derive

import "github.com/harperreed/bloom/internal/models"

// Phase is a stage of the menstrual cycle.
type Phase string

const (
	PhaseMenstrual     Phase = "menstrual"
	PhaseFollicular    Phase = "follicular"
	PhaseFertileWindow Phase = "fertile_window"
	PhaseOvulation     Phase = "ovulation"
	PhaseLuteal        Phase = "luteal"
)

// Phase day boundaries for a 28-day reference cycle. Named rather than
// inlined so the 28-day assumption can be parameterized later.
const (
	MenstrualEndDay     = 5  // days 1-5
	FollicularEndDay    = 11 // days 6-11
	OvulationDay        = 14 // reported over the fertile window
	FertileWindowEndDay = 16 // days 12-16
)

// CycleDay returns the 1-based day of the cycle as of the given date:
// the start date itself is day 1. The difference is taken as an absolute
// value, so a cycle whose start date lies in the future (bad historical
// data) still yields a displayable positive number instead of an error.
func CycleDay(c *models.CycleRecord, asOf models.Date) int {
	days := models.DaysBetween(c.StartDate, asOf)
	if days < 0 {
		days = -days
	}
	return days + 1
}

// CyclePhase maps a cycle day to its phase. Day 14 reports Ovulation,
// taking precedence over the surrounding fertile window.
func CyclePhase(day int) Phase {
	switch {
	case day <= MenstrualEndDay:
		return PhaseMenstrual
	case day <= FollicularEndDay:
		return PhaseFollicular
	case day == OvulationDay:
		return PhaseOvulation
	case day <= FertileWindowEndDay:
		return PhaseFertileWindow
	default:
		return PhaseLuteal
	}
}
