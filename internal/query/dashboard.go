// ABOUTME: Dashboard assembly over the query layer.
// ABOUTME: Gathers the day's records and delegates the math to derive.
package query

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/derive"
	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/store"
)

// Dashboard assembles the daily summary for asOf. A user with no cycle
// history still gets a dashboard; the cycle fields just read zero.
func (q *Queries) Dashboard(userID uuid.UUID, asOf models.Date) (derive.DashboardStats, error) {
	var zero derive.DashboardStats

	current, err := q.CurrentCycle(userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return zero, fmt.Errorf("current cycle: %w", err)
	}

	todayWellness, err := q.WellnessOn(userID, asOf)
	if err != nil {
		return zero, fmt.Errorf("today's wellness: %w", err)
	}
	todaySymptoms, err := q.SymptomsOn(userID, asOf)
	if err != nil {
		return zero, fmt.Errorf("today's symptoms: %w", err)
	}
	todayMoods, err := q.MoodsOn(userID, asOf)
	if err != nil {
		return zero, fmt.Errorf("today's moods: %w", err)
	}

	weekWellness, err := q.WellnessBetween(userID, asOf.AddDays(-6), asOf)
	if err != nil {
		return zero, fmt.Errorf("week's wellness: %w", err)
	}

	return derive.Dashboard(current, todayWellness, todaySymptoms, todayMoods, weekWellness, asOf), nil
}
