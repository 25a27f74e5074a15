// ABOUTME: PregnancyMilestone model with structured appointment list.
// ABOUTME: Milestones are keyed by gestational week rather than date.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a scheduled visit attached to a pregnancy milestone.
type Appointment struct {
	Title    string `json:"title"`
	Date     Date   `json:"date"`
	Location string `json:"location,omitempty"`
}

// PregnancyMilestone records progress at a gestational week.
type PregnancyMilestone struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Week         int
	Weight       *float64
	Notes        *string
	Appointments []Appointment
	CreatedAt    time.Time
}

// NewPregnancyMilestone creates a milestone for the given week.
func NewPregnancyMilestone(userID uuid.UUID, week int) *PregnancyMilestone {
	return &PregnancyMilestone{
		ID:        uuid.New(),
		UserID:    userID,
		Week:      week,
		CreatedAt: time.Now(),
	}
}

// WithWeight sets the recorded weight in kilograms.
func (p *PregnancyMilestone) WithWeight(kg float64) *PregnancyMilestone {
	p.Weight = &kg
	return p
}

// WithNotes sets notes on the milestone.
func (p *PregnancyMilestone) WithNotes(notes string) *PregnancyMilestone {
	p.Notes = &notes
	return p
}

// WithAppointment appends an appointment to the milestone.
func (p *PregnancyMilestone) WithAppointment(a Appointment) *PregnancyMilestone {
	p.Appointments = append(p.Appointments, a)
	return p
}

// MilestonePatch describes a partial update to a PregnancyMilestone.
// Appointments, when set, replaces the whole list.
type MilestonePatch struct {
	Week         *int
	Weight       *float64
	Notes        *string
	Appointments []Appointment
}
