// ABOUTME: Merge semantics for partial-update patches.
// ABOUTME: Nil patch fields leave the stored value untouched.
package models

// Apply merges the patch into the user.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = p.DateOfBirth
	}
	if p.IsPregnant != nil {
		u.IsPregnant = *p.IsPregnant
	}
	if p.PregnancyDueDate != nil {
		u.PregnancyDueDate = p.PregnancyDueDate
	}
}

// Apply merges the patch into the cycle.
func (p CyclePatch) Apply(c *CycleRecord) {
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = p.EndDate
	}
	if p.Length != nil {
		c.Length = p.Length
	}
	if p.FlowIntensity != nil {
		c.FlowIntensity = p.FlowIntensity
	}
	if p.OvulationDate != nil {
		c.OvulationDate = p.OvulationDate
	}
}

// Apply merges the patch into the symptom entry.
func (p SymptomPatch) Apply(s *SymptomEntry) {
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Severity != nil {
		s.Severity = *p.Severity
	}
	if p.Notes != nil {
		s.Notes = p.Notes
	}
}

// Apply merges the patch into the mood entry.
func (p MoodPatch) Apply(m *MoodEntry) {
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Mood != nil {
		m.Mood = *p.Mood
	}
	if p.EnergyLevel != nil {
		m.EnergyLevel = *p.EnergyLevel
	}
	if p.Notes != nil {
		m.Notes = p.Notes
	}
}

// Apply merges the patch into the nutrition entry.
func (p NutritionPatch) Apply(n *NutritionEntry) {
	if p.Date != nil {
		n.Date = *p.Date
	}
	if p.MealType != nil {
		n.MealType = *p.MealType
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	if p.Calories != nil {
		n.Calories = p.Calories
	}
}

// Apply merges the patch into the wellness entry.
func (p WellnessPatch) Apply(w *WellnessEntry) {
	if p.Date != nil {
		w.Date = *p.Date
	}
	if p.Steps != nil {
		w.Steps = p.Steps
	}
	if p.WaterIntakeLiters != nil {
		w.WaterIntakeLiters = p.WaterIntakeLiters
	}
	if p.SleepHours != nil {
		w.SleepHours = p.SleepHours
	}
	if p.SleepQuality != nil {
		w.SleepQuality = p.SleepQuality
	}
	if p.ExerciseMinutes != nil {
		w.ExerciseMinutes = p.ExerciseMinutes
	}
}

// Apply merges the patch into the milestone.
func (p MilestonePatch) Apply(m *PregnancyMilestone) {
	if p.Week != nil {
		m.Week = *p.Week
	}
	if p.Weight != nil {
		m.Weight = p.Weight
	}
	if p.Notes != nil {
		m.Notes = p.Notes
	}
	if p.Appointments != nil {
		m.Appointments = p.Appointments
	}
}

// Apply merges the patch into the reminder.
func (p ReminderPatch) Apply(r *Reminder) {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
}
