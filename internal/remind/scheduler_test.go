// ABOUTME: Tests for reminder due-matching and scheduler ticks.
// ABOUTME: The tick path is driven directly instead of waiting on cron.
package remind

import (
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/query"
	"github.com/harperreed/bloom/internal/store"
	"github.com/sirupsen/logrus"
)

func TestDueMatchesMinute(t *testing.T) {
	morning := models.NewReminder(uuid.New(), models.ReminderMedication, "Prenatal vitamin", "08:00")
	afternoon := models.NewReminder(uuid.New(), models.ReminderHydration, "Drink water", "14:30")
	inactive := models.NewReminder(uuid.New(), models.ReminderExercise, "Walk", "08:00")
	inactive.IsActive = false

	reminders := []*models.Reminder{morning, afternoon, inactive}

	at := time.Date(2025, 3, 14, 8, 0, 15, 0, time.Local)
	due := Due(reminders, at)
	if len(due) != 1 || due[0].ID != morning.ID {
		t.Errorf("at 08:00 only the morning reminder should fire, got %d", len(due))
	}

	if got := Due(reminders, time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)); len(got) != 0 {
		t.Errorf("nothing should fire at noon, got %d", len(got))
	}
}

func TestSchedulerTickNotifies(t *testing.T) {
	s := store.NewMemory()
	u, err := store.EnsureDefaultUser(s)
	if err != nil {
		t.Fatalf("EnsureDefaultUser failed: %v", err)
	}

	r := models.NewReminder(u.ID, models.ReminderMedication, "Prenatal vitamin", "08:00")
	if err := s.CreateReminder(r); err != nil {
		t.Fatalf("CreateReminder failed: %v", err)
	}

	var fired []string
	notify := func(r *models.Reminder) { fired = append(fired, r.Title) }

	log := logrus.New()
	log.SetOutput(io.Discard)
	sched := NewScheduler(query.New(s), u.ID, notify, log)

	sched.tick(time.Date(2025, 3, 14, 8, 0, 0, 0, time.Local))
	if len(fired) != 1 || fired[0] != "Prenatal vitamin" {
		t.Errorf("tick at 08:00 should notify once, got %v", fired)
	}

	sched.tick(time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local))
	if len(fired) != 1 {
		t.Errorf("tick at 09:00 should not notify, got %v", fired)
	}
}
