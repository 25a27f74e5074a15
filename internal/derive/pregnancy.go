// ABOUTME: Pure pregnancy week, trimester, and progress derivation.
// ABOUTME: Counts gestation backward from the due date, clamped to 0-40 weeks.
package derive

import "github.com/harperreed/bloom/internal/models"

// Gestation constants.
const (
	GestationDays  = 280
	GestationWeeks = 40

	// Trimester boundaries in completed weeks. Week 26 is the last week
	// of the second trimester.
	FirstTrimesterEndWeek  = 12
	SecondTrimesterEndWeek = 26
)

// PregnancyWeek returns the current gestational week derived from the
// due date, clamped to [0, GestationWeeks]. Past the due date the days
// remaining clamp to zero, so an overdue pregnancy reports week 40
// rather than exceeding the range.
func PregnancyWeek(dueDate, asOf models.Date) int {
	daysUntil := models.DaysBetween(asOf, dueDate)
	if daysUntil < 0 {
		daysUntil = 0
	}
	week := (GestationDays - daysUntil) / 7
	if week < 0 {
		week = 0
	}
	if week > GestationWeeks {
		week = GestationWeeks
	}
	return week
}

// PregnancyProgress returns gestation progress as a percentage in [0, 100].
func PregnancyProgress(week int) float64 {
	pct := float64(week) / GestationWeeks * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Trimester maps a gestational week to trimester 1, 2, or 3.
func Trimester(week int) int {
	switch {
	case week <= FirstTrimesterEndWeek:
		return 1
	case week <= SecondTrimesterEndWeek:
		return 2
	default:
		return 3
	}
}
