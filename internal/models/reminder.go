// ABOUTME: Reminder model for daily scheduled nudges.
// ABOUTME: The only entity kind the store allows deleting.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common reminder types.
const (
	ReminderMedication = "medication"
	ReminderHydration  = "hydration"
	ReminderExercise   = "exercise"
)

// Reminder is a daily nudge firing at a wall-clock time. IsActive false
// soft-deletes the reminder; hard delete goes through the store.
type Reminder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	Title     string
	Time      string // HH:MM, 24-hour
	IsActive  bool
	CreatedAt time.Time
}

// NewReminder creates an active reminder firing daily at the given HH:MM time.
func NewReminder(userID uuid.UUID, reminderType, title, at string) *Reminder {
	return &Reminder{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      reminderType,
		Title:     title,
		Time:      at,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

// ValidReminderTime reports whether s is a valid HH:MM wall-clock time.
func ValidReminderTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// DueAt reports whether the reminder fires at the given instant's minute.
func (r *Reminder) DueAt(t time.Time) bool {
	return r.IsActive && r.Time == fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ReminderPatch describes a partial update to a Reminder.
type ReminderPatch struct {
	Type     *string
	Title    *string
	Time     *string
	IsActive *bool
}
