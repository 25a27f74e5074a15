// ABOUTME: In-memory Store backend over plain maps.
// ABOUTME: One coarse RWMutex serializes writes; reads may run concurrently.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/models"
)

// Memory is the in-memory Store backend. All state lives in per-kind
// maps guarded by a single RWMutex. Entities are copied on the way in
// and out so the store exclusively owns its instances.
type Memory struct {
	mu sync.RWMutex

	users      map[uuid.UUID]*models.User
	cycles     map[uuid.UUID]*models.CycleRecord
	symptoms   map[uuid.UUID]*models.SymptomEntry
	moods      map[uuid.UUID]*models.MoodEntry
	nutrition  map[uuid.UUID]*models.NutritionEntry
	wellness   map[uuid.UUID]*models.WellnessEntry
	milestones map[uuid.UUID]*models.PregnancyMilestone
	insights   map[uuid.UUID]*models.Insight
	reminders  map[uuid.UUID]*models.Reminder
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:      make(map[uuid.UUID]*models.User),
		cycles:     make(map[uuid.UUID]*models.CycleRecord),
		symptoms:   make(map[uuid.UUID]*models.SymptomEntry),
		moods:      make(map[uuid.UUID]*models.MoodEntry),
		nutrition:  make(map[uuid.UUID]*models.NutritionEntry),
		wellness:   make(map[uuid.UUID]*models.WellnessEntry),
		milestones: make(map[uuid.UUID]*models.PregnancyMilestone),
		insights:   make(map[uuid.UUID]*models.Insight),
		reminders:  make(map[uuid.UUID]*models.Reminder),
	}
}

// Close releases nothing for the memory backend.
func (m *Memory) Close() error {
	return nil
}

// ensureIdentity assigns id and creation timestamp when the caller has
// not done so already.
func ensureIdentity(id *uuid.UUID, createdAt *time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now()
	}
}

// userExistsLocked checks the foreign key under an already-held lock.
func (m *Memory) userExistsLocked(userID uuid.UUID) error {
	if _, ok := m.users[userID]; !ok {
		return validationErr("unknown user %s", userID)
	}
	return nil
}

// Users

func (m *Memory) CreateUser(u *models.User) error {
	if err := validateUser(u); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == u.Username {
			return fmt.Errorf("%w: username %q already taken", ErrConstraintViolation, u.Username)
		}
		if existing.Email == u.Email {
			return fmt.Errorf("%w: email %q already registered", ErrConstraintViolation, u.Email)
		}
	}

	ensureIdentity(&u.ID, &u.CreatedAt)
	m.users[u.ID] = cloneUser(u)
	return nil
}

func (m *Memory) GetUser(id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return cloneUser(u), nil
}

func (m *Memory) GetUserByUsername(username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, fmt.Errorf("username %q: %w", username, ErrNotFound)
}

func (m *Memory) GetUserByEmail(email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, fmt.Errorf("email %q: %w", email, ErrNotFound)
}

func (m *Memory) UpdateUser(id uuid.UUID, patch models.UserPatch) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	updated := cloneUser(u)
	patch.Apply(updated)
	if err := validateUser(updated); err != nil {
		return nil, err
	}
	m.users[id] = updated
	return cloneUser(updated), nil
}

// Cycles

func (m *Memory) CreateCycle(c *models.CycleRecord) error {
	if err := validateCycle(c); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.userExistsLocked(c.UserID); err != nil {
		return err
	}
	ensureIdentity(&c.ID, &c.CreatedAt)
	m.cycles[c.ID] = cloneCycle(c)
	return nil
}

func (m *Memory) GetCycle(id uuid.UUID) (*models.CycleRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cycles[id]
	if !ok {
		return nil, fmt.Errorf("cycle %s: %w", id, ErrNotFound)
	}
	return cloneCycle(c), nil
}

func (m *Memory) UpdateCycle(id uuid.UUID, patch models.CyclePatch) (*models.CycleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cycles[id]
	if !ok {
		return nil, fmt.Errorf("cycle %s: %w", id, ErrNotFound)
	}
	updated := cloneCycle(c)
	patch.Apply(updated)
	if err := validateCycle(updated); err != nil {
		return nil, err
	}
	m.cycles[id] = updated
	return cloneCycle(updated), nil
}

func (m *Memory) CyclesByUser(userID uuid.UUID) ([]*models.CycleRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.CycleRecord
	for _, c := range m.cycles {
		if c.UserID == userID {
			out = append(out, cloneCycle(c))
		}
	}
	return out, nil
}

// Symptoms

func (m *Memory) CreateSymptom(s *models.SymptomEntry) error {
	if err := validateSymptom(s); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.userExistsLocked(s.UserID); err != nil {
		return err
	}
	// CycleID is a weak reference: it is not checked here and may dangle
	// later without invalidating the entry.
	ensureIdentity(&s.ID, &s.CreatedAt)
	m.symptoms[s.ID] = cloneSymptom(s)
	return nil
}

func (m *Memory) UpdateSymptom(id uuid.UUID, patch models.SymptomPatch) (*models.SymptomEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.symptoms[id]
	if !ok {
		return nil, fmt.Errorf("symptom %s: %w", id, ErrNotFound)
	}
	updated := cloneSymptom(s)
	patch.Apply(updated)
	if err := validateSymptom(updated); err != nil {
		return nil, err
	}
	m.symptoms[id] = updated
	return cloneSymptom(updated), nil
}

func (m *Memory) SymptomsByUser(userID uuid.UUID) ([]*models.SymptomEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.SymptomEntry
	for _, s := range m.symptoms {
		if s.UserID == userID {
			out = append(out, cloneSymptom(s))
		}
	}
	return out, nil
}

// Moods

func (m *Memory) CreateMood(e *models.MoodEntry) error {
	if err := validateMood(e); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.userExistsLocked(e.UserID); err != nil {
		return err
	}
	ensureIdentity(&e.ID, &e.CreatedAt)
	m.moods[e.ID] = cloneMood(e)
	return nil
}

func (m *Memory) UpdateMood(id uuid.UUID, patch models.MoodPatch) (*models.MoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.moods[id]
	if !ok {
		return nil, fmt.Errorf("mood %s: %w", id, ErrNotFound)
	}
	updated := cloneMood(e)
	patch.Apply(updated)
	if err := validateMood(updated); err != nil {
		return nil, err
	}
	m.moods[id] = updated
	return cloneMood(updated), nil
}

func (m *Memory) MoodsByUser(userID uuid.UUID) ([]*models.MoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.MoodEntry
	for _, e := range m.moods {
		if e.UserID == userID {
			out = append(out, cloneMood(e))
		}
	}
	return out, nil
}

// Nutrition

func (m *Memory) CreateNutrition(n *models.NutritionEntry) error {
	if err := validateNutrition(n); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.userExistsLocked(n.UserID); err != nil {
		return err
	}
	ensureIdentity(&n.ID, &n.CreatedAt)
	m.nutrition[n.ID] = cloneNutrition(n)
	return nil
}

func (m *Memory) UpdateNutrition(id uuid.UUID, patch models.NutritionPatch) (*models.NutritionEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nutrition[id]
	if !ok {
		return nil, fmt.Errorf("nutrition entry %s: %w", id, ErrNotFound)
	}
	updated := cloneNutrition(n)
	patch.Apply(updated)
	if err := validateNutrition(updated); err != nil {
		return nil, err
	}
	m.nutrition[id] = updated
	return cloneNutrition(updated), nil
}

func (m *Memory) NutritionByUser(userID uuid.UUID) ([]*models.NutritionEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.NutritionEntry
	for _, n := range m.nutrition {
		if n.UserID == userID {
			out = append(out, cloneNutrition(n))
		}
	}
	return out, nil
}

// Wellness

func (m *Memory) CreateWellness(w *models.WellnessEntry) error {
	if err := validateWellness(w); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.userExistsLocked(w.UserID); err != nil {
		return err
	}
	ensureIdentity(&w.ID, &w.CreatedAt)
	m.wellness[w.ID] = cloneWellness(w)
	return nil
}

func (m *Memory) UpdateWellness(id uuid.UUID, patch models.WellnessPatch) (*models.WellnessEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wellness[id]
	if !ok {
		return nil, fmt.Errorf("wellness entry %s: %w", id, ErrNotFound)
	}
	updated := cloneWellness(w)
	patch.Apply(updated)
	if err := validateWellness(updated); err != nil {
		return nil, err
	}
	m.wellness[id] = updated
	return cloneWellness(updated), nil
}

func (m *Memory) WellnessByUser(userID uuid.UUID) ([]*models.WellnessEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.WellnessEntry
	for _, w := range m.wellness {
		if w.UserID == userID {
			out = append(out, cloneWellness(w))
		}
	}
	return out, nil
}

// Pregnancy milestones

func (m *Memory) CreateMilestone(p *models.PregnancyMilestone) error {
	if err := validateMilestone(p); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.userExistsLocked(p.UserID); err != nil {
		return err
	}
	ensureIdentity(&p.ID, &p.CreatedAt)
	m.milestones[p.ID] = cloneMilestone(p)
	return nil
}

func (m *Memory) UpdateMilestone(id uuid.UUID, patch models.MilestonePatch) (*models.PregnancyMilestone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.milestones[id]
	if !ok {
		return nil, fmt.Errorf("milestone %s: %w", id, ErrNotFound)
	}
	updated := cloneMilestone(p)
	patch.Apply(updated)
	if err := validateMilestone(updated); err != nil {
		return nil, err
	}
	m.milestones[id] = updated
	return cloneMilestone(updated), nil
}

func (m *Memory) MilestonesByUser(userID uuid.UUID) ([]*models.PregnancyMilestone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.PregnancyMilestone
	for _, p := range m.milestones {
		if p.UserID == userID {
			out = append(out, cloneMilestone(p))
		}
	}
	return out, nil
}

// Insights

func (m *Memory) CreateInsight(i *models.Insight) error {
	if err := validateInsight(i); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.userExistsLocked(i.UserID); err != nil {
		return err
	}
	ensureIdentity(&i.ID, &i.CreatedAt)
	m.insights[i.ID] = cloneInsight(i)
	return nil
}

func (m *Memory) InsightsByUser(userID uuid.UUID) ([]*models.Insight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.Insight
	for _, i := range m.insights {
		if i.UserID == userID {
			out = append(out, cloneInsight(i))
		}
	}
	return out, nil
}

// Reminders

func (m *Memory) CreateReminder(r *models.Reminder) error {
	if err := validateReminder(r); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.userExistsLocked(r.UserID); err != nil {
		return err
	}
	ensureIdentity(&r.ID, &r.CreatedAt)
	m.reminders[r.ID] = cloneReminder(r)
	return nil
}

func (m *Memory) GetReminder(id uuid.UUID) (*models.Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.reminders[id]
	if !ok {
		return nil, fmt.Errorf("reminder %s: %w", id, ErrNotFound)
	}
	return cloneReminder(r), nil
}

func (m *Memory) UpdateReminder(id uuid.UUID, patch models.ReminderPatch) (*models.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.reminders[id]
	if !ok {
		return nil, fmt.Errorf("reminder %s: %w", id, ErrNotFound)
	}
	updated := cloneReminder(r)
	patch.Apply(updated)
	if err := validateReminder(updated); err != nil {
		return nil, err
	}
	m.reminders[id] = updated
	return cloneReminder(updated), nil
}

func (m *Memory) RemindersByUser(userID uuid.UUID) ([]*models.Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.Reminder
	for _, r := range m.reminders {
		if r.UserID == userID {
			out = append(out, cloneReminder(r))
		}
	}
	return out, nil
}

func (m *Memory) DeleteReminder(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reminders[id]; !ok {
		return false, nil
	}
	delete(m.reminders, id)
	return true, nil
}
