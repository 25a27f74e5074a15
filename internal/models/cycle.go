// ABOUTME: CycleRecord model for menstrual cycle tracking.
// ABOUTME: A cycle with no end date is "open" and represents the current cycle.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Flow intensity bounds (1 = spotting, 5 = very heavy).
const (
	FlowIntensityMin = 1
	FlowIntensityMax = 5
)

// CycleRecord represents one menstrual cycle. EndDate absent means the
// cycle is still open.
type CycleRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	StartDate     Date
	EndDate       *Date
	Length        *int
	FlowIntensity *int
	OvulationDate *Date
	CreatedAt     time.Time
}

// NewCycleRecord creates an open cycle starting on the given date.
func NewCycleRecord(userID uuid.UUID, start Date) *CycleRecord {
	return &CycleRecord{
		ID:        uuid.New(),
		UserID:    userID,
		StartDate: start,
		CreatedAt: time.Now(),
	}
}

// WithEndDate closes the cycle on the given date.
func (c *CycleRecord) WithEndDate(end Date) *CycleRecord {
	c.EndDate = &end
	return c
}

// WithLength sets the cycle length in days.
func (c *CycleRecord) WithLength(days int) *CycleRecord {
	c.Length = &days
	return c
}

// WithFlowIntensity sets the flow intensity on the 1-5 scale.
func (c *CycleRecord) WithFlowIntensity(intensity int) *CycleRecord {
	c.FlowIntensity = &intensity
	return c
}

// WithOvulationDate sets the observed ovulation date.
func (c *CycleRecord) WithOvulationDate(d Date) *CycleRecord {
	c.OvulationDate = &d
	return c
}

// IsOpen reports whether the cycle has no end date yet.
func (c *CycleRecord) IsOpen() bool {
	return c.EndDate == nil
}

// CyclePatch describes a partial update to a CycleRecord.
type CyclePatch struct {
	StartDate     *Date
	EndDate       *Date
	Length        *int
	FlowIntensity *int
	OvulationDate *Date
}
