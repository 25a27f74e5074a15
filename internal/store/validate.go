// ABOUTME: Insert-time validation for every entity kind.
// ABOUTME: Runs before any mutation; failures wrap ErrValidation.
package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/models"
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func validateUser(u *models.User) error {
	if u == nil {
		return validationErr("nil user")
	}
	if strings.TrimSpace(u.Username) == "" {
		return validationErr("username is required")
	}
	if strings.TrimSpace(u.Name) == "" {
		return validationErr("name is required")
	}
	if !strings.Contains(u.Email, "@") {
		return validationErr("invalid email %q", u.Email)
	}
	if u.DateOfBirth != nil && !u.DateOfBirth.Valid() {
		return validationErr("invalid date of birth %q", *u.DateOfBirth)
	}
	if u.PregnancyDueDate != nil && !u.PregnancyDueDate.Valid() {
		return validationErr("invalid due date %q", *u.PregnancyDueDate)
	}
	return nil
}

func validateCycle(c *models.CycleRecord) error {
	if c == nil {
		return validationErr("nil cycle")
	}
	if c.UserID == uuid.Nil {
		return validationErr("cycle requires a user")
	}
	if !c.StartDate.Valid() {
		return validationErr("invalid start date %q", c.StartDate)
	}
	if c.EndDate != nil && !c.EndDate.Valid() {
		return validationErr("invalid end date %q", *c.EndDate)
	}
	if c.OvulationDate != nil && !c.OvulationDate.Valid() {
		return validationErr("invalid ovulation date %q", *c.OvulationDate)
	}
	if c.FlowIntensity != nil {
		if *c.FlowIntensity < models.FlowIntensityMin || *c.FlowIntensity > models.FlowIntensityMax {
			return validationErr("flow intensity %d out of range %d-%d",
				*c.FlowIntensity, models.FlowIntensityMin, models.FlowIntensityMax)
		}
	}
	return nil
}

func validateSymptom(s *models.SymptomEntry) error {
	if s == nil {
		return validationErr("nil symptom")
	}
	if s.UserID == uuid.Nil {
		return validationErr("symptom requires a user")
	}
	if !s.Date.Valid() {
		return validationErr("invalid date %q", s.Date)
	}
	if strings.TrimSpace(s.Type) == "" {
		return validationErr("symptom type is required")
	}
	if s.Severity < models.SeverityMin || s.Severity > models.SeverityMax {
		return validationErr("severity %d out of range %d-%d",
			s.Severity, models.SeverityMin, models.SeverityMax)
	}
	return nil
}

func validateMood(m *models.MoodEntry) error {
	if m == nil {
		return validationErr("nil mood")
	}
	if m.UserID == uuid.Nil {
		return validationErr("mood requires a user")
	}
	if !m.Date.Valid() {
		return validationErr("invalid date %q", m.Date)
	}
	if strings.TrimSpace(m.Mood) == "" {
		return validationErr("mood is required")
	}
	if m.EnergyLevel < models.EnergyMin || m.EnergyLevel > models.EnergyMax {
		return validationErr("energy level %d out of range %d-%d",
			m.EnergyLevel, models.EnergyMin, models.EnergyMax)
	}
	return nil
}

func validateNutrition(n *models.NutritionEntry) error {
	if n == nil {
		return validationErr("nil nutrition entry")
	}
	if n.UserID == uuid.Nil {
		return validationErr("nutrition entry requires a user")
	}
	if !n.Date.Valid() {
		return validationErr("invalid date %q", n.Date)
	}
	if strings.TrimSpace(n.MealType) == "" {
		return validationErr("meal type is required")
	}
	if strings.TrimSpace(n.Description) == "" {
		return validationErr("description is required")
	}
	if n.Calories != nil && *n.Calories < 0 {
		return validationErr("negative calories %d", *n.Calories)
	}
	return nil
}

func validateWellness(w *models.WellnessEntry) error {
	if w == nil {
		return validationErr("nil wellness entry")
	}
	if w.UserID == uuid.Nil {
		return validationErr("wellness entry requires a user")
	}
	if !w.Date.Valid() {
		return validationErr("invalid date %q", w.Date)
	}
	if w.Steps != nil && *w.Steps < 0 {
		return validationErr("negative steps %d", *w.Steps)
	}
	if w.WaterIntakeLiters != nil && *w.WaterIntakeLiters < 0 {
		return validationErr("negative water intake %g", *w.WaterIntakeLiters)
	}
	if w.SleepHours != nil && *w.SleepHours < 0 {
		return validationErr("negative sleep hours %g", *w.SleepHours)
	}
	if w.SleepQuality != nil {
		if *w.SleepQuality < models.SleepQualityMin || *w.SleepQuality > models.SleepQualityMax {
			return validationErr("sleep quality %d out of range %d-%d",
				*w.SleepQuality, models.SleepQualityMin, models.SleepQualityMax)
		}
	}
	if w.ExerciseMinutes != nil && *w.ExerciseMinutes < 0 {
		return validationErr("negative exercise minutes %d", *w.ExerciseMinutes)
	}
	return nil
}

func validateMilestone(m *models.PregnancyMilestone) error {
	if m == nil {
		return validationErr("nil milestone")
	}
	if m.UserID == uuid.Nil {
		return validationErr("milestone requires a user")
	}
	if m.Week < 0 || m.Week > 42 {
		return validationErr("week %d out of range 0-42", m.Week)
	}
	if m.Weight != nil && *m.Weight <= 0 {
		return validationErr("non-positive weight %g", *m.Weight)
	}
	for _, a := range m.Appointments {
		if !a.Date.Valid() {
			return validationErr("invalid appointment date %q", a.Date)
		}
	}
	return nil
}

func validateInsight(i *models.Insight) error {
	if i == nil {
		return validationErr("nil insight")
	}
	if i.UserID == uuid.Nil {
		return validationErr("insight requires a user")
	}
	if strings.TrimSpace(i.Type) == "" {
		return validationErr("insight type is required")
	}
	if strings.TrimSpace(i.Content) == "" {
		return validationErr("insight content is required")
	}
	return nil
}

func validateReminder(r *models.Reminder) error {
	if r == nil {
		return validationErr("nil reminder")
	}
	if r.UserID == uuid.Nil {
		return validationErr("reminder requires a user")
	}
	if strings.TrimSpace(r.Type) == "" {
		return validationErr("reminder type is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return validationErr("reminder title is required")
	}
	if !models.ValidReminderTime(r.Time) {
		return validationErr("invalid reminder time %q (want HH:MM)", r.Time)
	}
	return nil
}
