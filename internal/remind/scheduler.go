// ABOUTME: Cron-driven reminder scheduler firing active reminders each minute.
// ABOUTME: Due-matching is a pure function so it can be tested without cron.
package remind

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/query"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Notifier delivers one due reminder to the user.
type Notifier func(r *models.Reminder)

// Scheduler wakes every minute and fires the user's reminders whose
// wall-clock time matches the current minute.
type Scheduler struct {
	queries *query.Queries
	userID  uuid.UUID
	notify  Notifier
	log     *logrus.Logger
	cron    *cron.Cron
}

// NewScheduler creates a scheduler for one user's reminders.
func NewScheduler(q *query.Queries, userID uuid.UUID, notify Notifier, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		queries: q,
		userID:  userID,
		notify:  notify,
		log:     log,
		cron:    cron.New(cron.WithLocation(time.Local)),
	}
}

// Start begins the minute tick. It returns immediately; the cron engine
// runs jobs on its own goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", func() { s.tick(time.Now()) }); err != nil {
		return err
	}
	s.cron.Start()
	s.log.WithField("user", s.userID).Info("reminder scheduler started")
	return nil
}

// Stop halts the tick and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("reminder scheduler stopped")
}

func (s *Scheduler) tick(now time.Time) {
	reminders, err := s.queries.ActiveReminders(s.userID)
	if err != nil {
		s.log.WithError(err).Warn("failed to load reminders")
		return
	}
	for _, r := range Due(reminders, now) {
		s.notify(r)
	}
}

// Due returns the reminders firing at the given instant's minute.
func Due(reminders []*models.Reminder, at time.Time) []*models.Reminder {
	var out []*models.Reminder
	for _, r := range reminders {
		if r.DueAt(at) {
			out = append(out, r)
		}
	}
	return out
}
