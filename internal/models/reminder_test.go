// ABOUTME: Tests for reminder time validation and due matching.
// ABOUTME: Minute-granularity matching against wall-clock instants.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestValidReminderTime(t *testing.T) {
	valid := []string{"00:00", "08:00", "14:30", "23:59"}
	for _, s := range valid {
		if !ValidReminderTime(s) {
			t.Errorf("ValidReminderTime(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "24:00", "8:00:00", "noon", "14:60"}
	for _, s := range invalid {
		if ValidReminderTime(s) {
			t.Errorf("ValidReminderTime(%q) = true, want false", s)
		}
	}
}

func TestReminderDueAt(t *testing.T) {
	r := NewReminder(uuid.New(), ReminderMedication, "Prenatal vitamin", "08:00")

	at := time.Date(2025, 3, 14, 8, 0, 30, 0, time.Local)
	if !r.DueAt(at) {
		t.Error("reminder should be due at 08:00")
	}

	if r.DueAt(time.Date(2025, 3, 14, 8, 1, 0, 0, time.Local)) {
		t.Error("reminder should not be due at 08:01")
	}
}

func TestInactiveReminderNeverDue(t *testing.T) {
	r := NewReminder(uuid.New(), ReminderHydration, "Drink water", "14:30")
	r.IsActive = false

	if r.DueAt(time.Date(2025, 3, 14, 14, 30, 0, 0, time.Local)) {
		t.Error("inactive reminder should never be due")
	}
}

func TestReminderPatchApply(t *testing.T) {
	r := NewReminder(uuid.New(), ReminderExercise, "Evening walk", "18:00")

	newTime := "19:00"
	inactive := false
	patch := ReminderPatch{Time: &newTime, IsActive: &inactive}
	patch.Apply(r)

	if r.Time != "19:00" {
		t.Errorf("Time: got %s, want 19:00", r.Time)
	}
	if r.IsActive {
		t.Error("IsActive should be false after patch")
	}
	if r.Title != "Evening walk" {
		t.Errorf("Title should be unchanged, got %s", r.Title)
	}
}
