// ABOUTME: Store interface and error taxonomy for health record storage.
// ABOUTME: Defines per-entity CRUD contract shared by memory and badger backends.
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/models"
)

// Sentinel errors returned by Store implementations. Callers classify
// failures with errors.Is and decide whether they are fatal.
var (
	// ErrNotFound is returned when a lookup by id, username, or email
	// matches nothing. Recoverable; callers decide whether it is fatal.
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation is returned when a create would break a
	// uniqueness constraint (username, email). The entity is not created.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrValidation is returned for malformed input records, before any
	// store mutation. Store state is unchanged.
	ErrValidation = errors.New("validation failed")
)

// Store is the per-user health record store. Entities other than
// reminders are append-mostly histories: they can be created and
// partially updated but never deleted, preserving time-series integrity
// for the derivation layer.
//
// List primitives (XByUser) return records in no particular order; the
// query layer owns ordering and filtering.
type Store interface {
	// Users
	CreateUser(u *models.User) error
	GetUser(id uuid.UUID) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(id uuid.UUID, patch models.UserPatch) (*models.User, error)

	// Cycles
	CreateCycle(c *models.CycleRecord) error
	GetCycle(id uuid.UUID) (*models.CycleRecord, error)
	UpdateCycle(id uuid.UUID, patch models.CyclePatch) (*models.CycleRecord, error)
	CyclesByUser(userID uuid.UUID) ([]*models.CycleRecord, error)

	// Symptoms
	CreateSymptom(s *models.SymptomEntry) error
	UpdateSymptom(id uuid.UUID, patch models.SymptomPatch) (*models.SymptomEntry, error)
	SymptomsByUser(userID uuid.UUID) ([]*models.SymptomEntry, error)

	// Moods
	CreateMood(m *models.MoodEntry) error
	UpdateMood(id uuid.UUID, patch models.MoodPatch) (*models.MoodEntry, error)
	MoodsByUser(userID uuid.UUID) ([]*models.MoodEntry, error)

	// Nutrition
	CreateNutrition(n *models.NutritionEntry) error
	UpdateNutrition(id uuid.UUID, patch models.NutritionPatch) (*models.NutritionEntry, error)
	NutritionByUser(userID uuid.UUID) ([]*models.NutritionEntry, error)

	// Wellness
	CreateWellness(w *models.WellnessEntry) error
	UpdateWellness(id uuid.UUID, patch models.WellnessPatch) (*models.WellnessEntry, error)
	WellnessByUser(userID uuid.UUID) ([]*models.WellnessEntry, error)

	// Pregnancy milestones
	CreateMilestone(m *models.PregnancyMilestone) error
	UpdateMilestone(id uuid.UUID, patch models.MilestonePatch) (*models.PregnancyMilestone, error)
	MilestonesByUser(userID uuid.UUID) ([]*models.PregnancyMilestone, error)

	// Insights (write-only from the insight pipeline, read-only elsewhere)
	CreateInsight(i *models.Insight) error
	InsightsByUser(userID uuid.UUID) ([]*models.Insight, error)

	// Reminders (the only entity kind with hard delete)
	CreateReminder(r *models.Reminder) error
	GetReminder(id uuid.UUID) (*models.Reminder, error)
	UpdateReminder(id uuid.UUID, patch models.ReminderPatch) (*models.Reminder, error)
	RemindersByUser(userID uuid.UUID) ([]*models.Reminder, error)
	DeleteReminder(id uuid.UUID) (bool, error)

	// Lifecycle
	Close() error
}

// Seed data for the default profile created on first access. A single
// documented convenience so the CLI works out of the box, not general
// auto-provisioning.
const (
	DefaultUsername = "anna"
	DefaultEmail    = "anna@example.com"
	DefaultName     = "Anna"
)

// EnsureDefaultUser returns the default user, creating it with fixed
// seed data if no such user exists yet.
func EnsureDefaultUser(s Store) (*models.User, error) {
	u, err := s.GetUserByUsername(DefaultUsername)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	seed := models.NewUser(DefaultUsername, DefaultEmail, DefaultName)
	dob, _ := models.ParseDate("1990-05-15")
	seed.WithDateOfBirth(dob)
	if err := s.CreateUser(seed); err != nil {
		// Lost a race with another bootstrap; re-read the winner.
		if errors.Is(err, ErrConstraintViolation) {
			return s.GetUserByUsername(DefaultUsername)
		}
		return nil, fmt.Errorf("seed default user: %w", err)
	}
	return seed, nil
}
