// ABOUTME: Read-side query layer over the record store.
// ABOUTME: Owns filtering, deterministic ordering, and current-cycle selection.
package query

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/store"
)

// Queries derives filtered, ordered views from store primitives without
// mutating anything.
type Queries struct {
	store store.Store
}

// New wraps a store with the query layer.
func New(s store.Store) *Queries {
	return &Queries{store: s}
}

// sortKey gives every record a totally ordered position: primary date
// descending, then creation time descending, then id. The id tiebreak
// guarantees reproducible ordering in tests.
type sortKey struct {
	date    models.Date
	created time.Time
	id      uuid.UUID
}

func sortRecent[T any](items []*T, key func(*T) sortKey) {
	sort.Slice(items, func(i, j int) bool {
		a, b := key(items[i]), key(items[j])
		if a.date != b.date {
			return a.date > b.date
		}
		if !a.created.Equal(b.created) {
			return a.created.After(b.created)
		}
		return a.id.String() < b.id.String()
	})
}

// filterOn keeps records on exactly the given date.
func filterOn[T any](items []*T, date func(*T) models.Date, day models.Date) []*T {
	var out []*T
	for _, it := range items {
		if date(it) == day {
			out = append(out, it)
		}
	}
	return out
}

// filterRange keeps records with start <= date <= end, inclusive on both ends.
func filterRange[T any](items []*T, date func(*T) models.Date, start, end models.Date) []*T {
	var out []*T
	for _, it := range items {
		d := date(it)
		if d >= start && d <= end {
			out = append(out, it)
		}
	}
	return out
}

func cycleKey(c *models.CycleRecord) sortKey {
	return sortKey{date: c.StartDate, created: c.CreatedAt, id: c.ID}
}

func symptomKey(s *models.SymptomEntry) sortKey {
	return sortKey{date: s.Date, created: s.CreatedAt, id: s.ID}
}

func moodKey(m *models.MoodEntry) sortKey {
	return sortKey{date: m.Date, created: m.CreatedAt, id: m.ID}
}

func nutritionKey(n *models.NutritionEntry) sortKey {
	return sortKey{date: n.Date, created: n.CreatedAt, id: n.ID}
}

func wellnessKey(w *models.WellnessEntry) sortKey {
	return sortKey{date: w.Date, created: w.CreatedAt, id: w.ID}
}

// Cycles

// ListCycles returns a user's cycles, most recently started first.
func (q *Queries) ListCycles(userID uuid.UUID) ([]*models.CycleRecord, error) {
	cycles, err := q.store.CyclesByUser(userID)
	if err != nil {
		return nil, err
	}
	sortRecent(cycles, cycleKey)
	return cycles, nil
}

// CurrentCycle selects the cycle representing "now": the most recently
// started open cycle, falling back to the most recently started cycle
// overall so dashboards always have a reference cycle when history
// exists. Multiple open cycles are user-data inconsistency, not a
// programming bug, so the latest-started one wins deterministically.
func (q *Queries) CurrentCycle(userID uuid.UUID) (*models.CycleRecord, error) {
	cycles, err := q.ListCycles(userID)
	if err != nil {
		return nil, err
	}
	if len(cycles) == 0 {
		return nil, fmt.Errorf("no cycles recorded: %w", store.ErrNotFound)
	}
	for _, c := range cycles {
		if c.IsOpen() {
			return c, nil
		}
	}
	return cycles[0], nil
}

// Symptoms

// ListSymptoms returns a user's symptoms, most recent first.
func (q *Queries) ListSymptoms(userID uuid.UUID) ([]*models.SymptomEntry, error) {
	symptoms, err := q.store.SymptomsByUser(userID)
	if err != nil {
		return nil, err
	}
	sortRecent(symptoms, symptomKey)
	return symptoms, nil
}

// SymptomsOn returns symptoms recorded on exactly the given date.
func (q *Queries) SymptomsOn(userID uuid.UUID, day models.Date) ([]*models.SymptomEntry, error) {
	symptoms, err := q.ListSymptoms(userID)
	if err != nil {
		return nil, err
	}
	return filterOn(symptoms, func(s *models.SymptomEntry) models.Date { return s.Date }, day), nil
}

// SymptomsBetween returns symptoms in the inclusive date range.
func (q *Queries) SymptomsBetween(userID uuid.UUID, start, end models.Date) ([]*models.SymptomEntry, error) {
	symptoms, err := q.ListSymptoms(userID)
	if err != nil {
		return nil, err
	}
	return filterRange(symptoms, func(s *models.SymptomEntry) models.Date { return s.Date }, start, end), nil
}

// Moods

// ListMoods returns a user's mood entries, most recent first.
func (q *Queries) ListMoods(userID uuid.UUID) ([]*models.MoodEntry, error) {
	moods, err := q.store.MoodsByUser(userID)
	if err != nil {
		return nil, err
	}
	sortRecent(moods, moodKey)
	return moods, nil
}

// MoodsOn returns mood entries recorded on exactly the given date.
func (q *Queries) MoodsOn(userID uuid.UUID, day models.Date) ([]*models.MoodEntry, error) {
	moods, err := q.ListMoods(userID)
	if err != nil {
		return nil, err
	}
	return filterOn(moods, func(m *models.MoodEntry) models.Date { return m.Date }, day), nil
}

// MoodsBetween returns mood entries in the inclusive date range.
func (q *Queries) MoodsBetween(userID uuid.UUID, start, end models.Date) ([]*models.MoodEntry, error) {
	moods, err := q.ListMoods(userID)
	if err != nil {
		return nil, err
	}
	return filterRange(moods, func(m *models.MoodEntry) models.Date { return m.Date }, start, end), nil
}

// Nutrition

// ListNutrition returns a user's nutrition entries, most recent first.
func (q *Queries) ListNutrition(userID uuid.UUID) ([]*models.NutritionEntry, error) {
	entries, err := q.store.NutritionByUser(userID)
	if err != nil {
		return nil, err
	}
	sortRecent(entries, nutritionKey)
	return entries, nil
}

// NutritionOn returns nutrition entries recorded on exactly the given date.
func (q *Queries) NutritionOn(userID uuid.UUID, day models.Date) ([]*models.NutritionEntry, error) {
	entries, err := q.ListNutrition(userID)
	if err != nil {
		return nil, err
	}
	return filterOn(entries, func(n *models.NutritionEntry) models.Date { return n.Date }, day), nil
}

// NutritionBetween returns nutrition entries in the inclusive date range.
func (q *Queries) NutritionBetween(userID uuid.UUID, start, end models.Date) ([]*models.NutritionEntry, error) {
	entries, err := q.ListNutrition(userID)
	if err != nil {
		return nil, err
	}
	return filterRange(entries, func(n *models.NutritionEntry) models.Date { return n.Date }, start, end), nil
}

// Wellness

// ListWellness returns a user's wellness entries, most recent first.
func (q *Queries) ListWellness(userID uuid.UUID) ([]*models.WellnessEntry, error) {
	entries, err := q.store.WellnessByUser(userID)
	if err != nil {
		return nil, err
	}
	sortRecent(entries, wellnessKey)
	return entries, nil
}

// WellnessOn returns wellness entries recorded on exactly the given date.
// A single date may carry several entries; all are returned.
func (q *Queries) WellnessOn(userID uuid.UUID, day models.Date) ([]*models.WellnessEntry, error) {
	entries, err := q.ListWellness(userID)
	if err != nil {
		return nil, err
	}
	return filterOn(entries, func(w *models.WellnessEntry) models.Date { return w.Date }, day), nil
}

// WellnessBetween returns wellness entries in the inclusive date range.
func (q *Queries) WellnessBetween(userID uuid.UUID, start, end models.Date) ([]*models.WellnessEntry, error) {
	entries, err := q.ListWellness(userID)
	if err != nil {
		return nil, err
	}
	return filterRange(entries, func(w *models.WellnessEntry) models.Date { return w.Date }, start, end), nil
}

// Pregnancy milestones

// ListMilestones returns a user's milestones, highest week first.
func (q *Queries) ListMilestones(userID uuid.UUID) ([]*models.PregnancyMilestone, error) {
	milestones, err := q.store.MilestonesByUser(userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(milestones, func(i, j int) bool {
		a, b := milestones[i], milestones[j]
		if a.Week != b.Week {
			return a.Week > b.Week
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return milestones, nil
}

// Insights

// ListInsights returns a user's insights, newest first, optionally
// filtered by type. An empty insightType matches everything.
func (q *Queries) ListInsights(userID uuid.UUID, insightType string) ([]*models.Insight, error) {
	insights, err := q.store.InsightsByUser(userID)
	if err != nil {
		return nil, err
	}
	if insightType != "" {
		var filtered []*models.Insight
		for _, i := range insights {
			if i.Type == insightType {
				filtered = append(filtered, i)
			}
		}
		insights = filtered
	}
	sort.Slice(insights, func(i, j int) bool {
		a, b := insights[i], insights[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return insights, nil
}

// Reminders

// ListReminders returns all of a user's reminders ordered by wall-clock
// time, inactive ones included.
func (q *Queries) ListReminders(userID uuid.UUID) ([]*models.Reminder, error) {
	reminders, err := q.store.RemindersByUser(userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(reminders, func(i, j int) bool {
		a, b := reminders[i], reminders[j]
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID.String() < b.ID.String()
	})
	return reminders, nil
}

// ActiveReminders returns only reminders that have not been soft-deleted.
func (q *Queries) ActiveReminders(userID uuid.UUID) ([]*models.Reminder, error) {
	reminders, err := q.ListReminders(userID)
	if err != nil {
		return nil, err
	}
	var out []*models.Reminder
	for _, r := range reminders {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}
