// ABOUTME: Tests for pure cycle, pregnancy, and aggregate derivation.
// ABOUTME: No storage involved; everything works on in-memory records.
package derive

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/models"
)

func TestCycleDayStartIsDayOne(t *testing.T) {
	c := models.NewCycleRecord(uuid.New(), "2025-03-01")
	if got := CycleDay(c, "2025-03-01"); got != 1 {
		t.Errorf("start date: got day %d, want 1", got)
	}
	if got := CycleDay(c, "2025-03-14"); got != 14 {
		t.Errorf("two weeks in: got day %d, want 14", got)
	}
}

func TestCycleDayFutureStartStaysPositive(t *testing.T) {
	c := models.NewCycleRecord(uuid.New(), "2025-03-10")
	if got := CycleDay(c, "2025-03-05"); got <= 0 {
		t.Errorf("future start date should yield a positive day, got %d", got)
	}
}

func TestCyclePhaseBoundaries(t *testing.T) {
	cases := []struct {
		day  int
		want Phase
	}{
		{1, PhaseMenstrual},
		{5, PhaseMenstrual},
		{6, PhaseFollicular},
		{11, PhaseFollicular},
		{12, PhaseFertileWindow},
		{13, PhaseFertileWindow},
		{14, PhaseOvulation},
		{15, PhaseFertileWindow},
		{16, PhaseFertileWindow},
		{17, PhaseLuteal},
		{28, PhaseLuteal},
		{45, PhaseLuteal},
	}
	for _, c := range cases {
		if got := CyclePhase(c.day); got != c.want {
			t.Errorf("CyclePhase(%d) = %s, want %s", c.day, got, c.want)
		}
	}
}

func TestPregnancyWeek(t *testing.T) {
	// 280 days before the due date is week 0.
	due := models.Date("2025-12-01")
	conception := due.AddDays(-280)

	if got := PregnancyWeek(due, conception); got != 0 {
		t.Errorf("at gestation start: got week %d, want 0", got)
	}
	if got := PregnancyWeek(due, conception.AddDays(140)); got != 20 {
		t.Errorf("halfway: got week %d, want 20", got)
	}
	if got := PregnancyWeek(due, due); got != 40 {
		t.Errorf("on due date: got week %d, want 40", got)
	}
	// Overdue clamps instead of exceeding the range.
	if got := PregnancyWeek(due, due.AddDays(14)); got != 40 {
		t.Errorf("overdue: got week %d, want 40", got)
	}
}

func TestTrimesterBoundaries(t *testing.T) {
	cases := []struct {
		week, want int
	}{
		{0, 1}, {12, 1}, {13, 2}, {26, 2}, {27, 3}, {40, 3},
	}
	for _, c := range cases {
		if got := Trimester(c.week); got != c.want {
			t.Errorf("Trimester(%d) = %d, want %d", c.week, got, c.want)
		}
	}
}

func TestPregnancyProgress(t *testing.T) {
	if got := PregnancyProgress(20); got != 50 {
		t.Errorf("week 20: got %.1f%%, want 50", got)
	}
	if got := PregnancyProgress(0); got != 0 {
		t.Errorf("week 0: got %.1f%%, want 0", got)
	}
	if got := PregnancyProgress(40); got != 100 {
		t.Errorf("week 40: got %.1f%%, want 100", got)
	}
}

func wellnessWeek(steps []int, exercise []int) []*models.WellnessEntry {
	var out []*models.WellnessEntry
	userID := uuid.New()
	day := models.Date("2025-03-08")
	for i := 0; i < 7; i++ {
		w := models.NewWellnessEntry(userID, day.AddDays(i))
		if steps != nil && steps[i] > 0 {
			w.WithSteps(steps[i])
		}
		if exercise != nil && exercise[i] > 0 {
			w.WithExerciseMinutes(exercise[i])
		}
		out = append(out, w)
	}
	return out
}

func TestWeeklyAggregateSum(t *testing.T) {
	entries := wellnessWeek([]int{1000, 2000, 0, 3000, 0, 500, 1500}, nil)
	if got := WeeklyAggregate(entries, Steps, Sum); got != 8000 {
		t.Errorf("steps sum: got %.0f, want 8000", got)
	}
}

func TestWeeklyAggregateCountPositive(t *testing.T) {
	entries := wellnessWeek(nil, []int{0, 30, 0, 0, 45, 0, 0})
	if got := WeeklyAggregate(entries, ExerciseMinutes, CountPositive); got != 2 {
		t.Errorf("exercise days: got %.0f, want 2", got)
	}
}

func TestWeeklyAggregateEmpty(t *testing.T) {
	if got := WeeklyAggregate(nil, Steps, Sum); got != 0 {
		t.Errorf("empty window: got %.0f, want 0", got)
	}
}

func TestSelectorsTreatAbsentAsZero(t *testing.T) {
	w := models.NewWellnessEntry(uuid.New(), "2025-03-01")
	if Steps(w) != 0 || WaterLiters(w) != 0 || SleepHours(w) != 0 || ExerciseMinutes(w) != 0 {
		t.Error("absent measurements should aggregate as zero")
	}
}

func TestStatsEmptyHistory(t *testing.T) {
	got := Stats(nil, "2025-03-01")
	if got.AverageLength != DefaultCycleLength {
		t.Errorf("AverageLength: got %d, want %d", got.AverageLength, DefaultCycleLength)
	}
	if got.PredictedNextStart != "2025-03-29" {
		t.Errorf("PredictedNextStart: got %s, want 2025-03-29", got.PredictedNextStart)
	}
}

func TestStatsAveragesLengths(t *testing.T) {
	userID := uuid.New()
	mk := func(start models.Date, length int) *models.CycleRecord {
		return models.NewCycleRecord(userID, start).WithLength(length)
	}
	// Most recently started first, as the query layer orders them.
	cycles := []*models.CycleRecord{
		mk("2025-03-01", 30),
		mk("2025-02-01", 28),
		mk("2025-01-01", 26),
	}

	got := Stats(cycles, "2025-03-10")
	if got.AverageLength != 28 {
		t.Errorf("AverageLength: got %d, want 28", got.AverageLength)
	}
	if got.PredictedNextStart != "2025-03-29" {
		t.Errorf("PredictedNextStart: got %s, want 2025-03-29", got.PredictedNextStart)
	}
}

func TestRegularityPerfectlyRegular(t *testing.T) {
	userID := uuid.New()
	cycles := []*models.CycleRecord{
		models.NewCycleRecord(userID, "2025-03-01").WithLength(28),
		models.NewCycleRecord(userID, "2025-02-01").WithLength(28),
	}

	got := Stats(cycles, "2025-03-10")
	if got.RegularityScore != 1 {
		t.Errorf("identical lengths: got %.2f, want 1", got.RegularityScore)
	}
}

func TestRegularityDropsWithVariance(t *testing.T) {
	userID := uuid.New()
	regular := Stats([]*models.CycleRecord{
		models.NewCycleRecord(userID, "2025-03-01").WithLength(28),
		models.NewCycleRecord(userID, "2025-02-01").WithLength(29),
	}, "2025-03-10")
	irregular := Stats([]*models.CycleRecord{
		models.NewCycleRecord(userID, "2025-03-01").WithLength(21),
		models.NewCycleRecord(userID, "2025-02-01").WithLength(35),
	}, "2025-03-10")

	if irregular.RegularityScore >= regular.RegularityScore {
		t.Errorf("irregular history should score lower: %.2f vs %.2f",
			irregular.RegularityScore, regular.RegularityScore)
	}
	if irregular.RegularityScore < 0 || irregular.RegularityScore > 1 {
		t.Errorf("score out of range: %.2f", irregular.RegularityScore)
	}
}

func TestDashboardDefaults(t *testing.T) {
	stats := Dashboard(nil, nil, nil, nil, nil, "2025-03-14")
	if stats.CycleDay != 0 {
		t.Errorf("CycleDay without a cycle: got %d, want 0", stats.CycleDay)
	}
	if stats.Mood != "neutral" {
		t.Errorf("Mood: got %s, want neutral", stats.Mood)
	}
	if stats.Steps != 0 || stats.SleepHours != 0 {
		t.Error("empty day should report zero totals")
	}
}

func TestDashboardSumsToday(t *testing.T) {
	userID := uuid.New()
	cycle := models.NewCycleRecord(userID, "2025-03-10")

	today := []*models.WellnessEntry{
		models.NewWellnessEntry(userID, "2025-03-14").WithSteps(3000).WithSleepHours(2),
		models.NewWellnessEntry(userID, "2025-03-14").WithSteps(5000).WithSleepHours(5.5),
	}
	symptoms := []*models.SymptomEntry{
		models.NewSymptomEntry(userID, "2025-03-14", "cramps", 3),
	}
	moods := []*models.MoodEntry{
		models.NewMoodEntry(userID, "2025-03-14", "calm", 6),
	}

	stats := Dashboard(cycle, today, symptoms, moods, today, "2025-03-14")
	if stats.CycleDay != 5 {
		t.Errorf("CycleDay: got %d, want 5", stats.CycleDay)
	}
	if stats.CyclePhase != PhaseMenstrual {
		t.Errorf("CyclePhase: got %s, want menstrual", stats.CyclePhase)
	}
	if stats.Steps != 8000 {
		t.Errorf("Steps: got %d, want 8000", stats.Steps)
	}
	if math.Abs(stats.SleepHours-7.5) > 1e-9 {
		t.Errorf("SleepHours: got %.2f, want 7.5", stats.SleepHours)
	}
	if stats.Mood != "calm" {
		t.Errorf("Mood: got %s, want calm", stats.Mood)
	}
	if len(stats.Symptoms) != 1 || stats.Symptoms[0] != "cramps" {
		t.Errorf("Symptoms: got %v", stats.Symptoms)
	}
}
