// ABOUTME: Deep-copy helpers so stored entities are never shared by reference.
// ABOUTME: Used by the memory backend on every read and write.
package store

import "github.com/harperreed/bloom/internal/models"

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	cp.DateOfBirth = clonePtr(u.DateOfBirth)
	cp.PregnancyDueDate = clonePtr(u.PregnancyDueDate)
	return &cp
}

func cloneCycle(c *models.CycleRecord) *models.CycleRecord {
	cp := *c
	cp.EndDate = clonePtr(c.EndDate)
	cp.Length = clonePtr(c.Length)
	cp.FlowIntensity = clonePtr(c.FlowIntensity)
	cp.OvulationDate = clonePtr(c.OvulationDate)
	return &cp
}

func cloneSymptom(s *models.SymptomEntry) *models.SymptomEntry {
	cp := *s
	cp.CycleID = clonePtr(s.CycleID)
	cp.Notes = clonePtr(s.Notes)
	return &cp
}

func cloneMood(m *models.MoodEntry) *models.MoodEntry {
	cp := *m
	cp.Notes = clonePtr(m.Notes)
	return &cp
}

func cloneNutrition(n *models.NutritionEntry) *models.NutritionEntry {
	cp := *n
	cp.Calories = clonePtr(n.Calories)
	return &cp
}

func cloneWellness(w *models.WellnessEntry) *models.WellnessEntry {
	cp := *w
	cp.Steps = clonePtr(w.Steps)
	cp.WaterIntakeLiters = clonePtr(w.WaterIntakeLiters)
	cp.SleepHours = clonePtr(w.SleepHours)
	cp.SleepQuality = clonePtr(w.SleepQuality)
	cp.ExerciseMinutes = clonePtr(w.ExerciseMinutes)
	return &cp
}

func cloneMilestone(p *models.PregnancyMilestone) *models.PregnancyMilestone {
	cp := *p
	cp.Weight = clonePtr(p.Weight)
	cp.Notes = clonePtr(p.Notes)
	if p.Appointments != nil {
		cp.Appointments = make([]models.Appointment, len(p.Appointments))
		copy(cp.Appointments, p.Appointments)
	}
	return &cp
}

func cloneInsight(i *models.Insight) *models.Insight {
	cp := *i
	if i.Metadata != nil {
		cp.Metadata = make(map[string]any, len(i.Metadata))
		for k, v := range i.Metadata {
			cp.Metadata[k] = v
		}
	}
	return &cp
}

func cloneReminder(r *models.Reminder) *models.Reminder {
	cp := *r
	return &cp
}
