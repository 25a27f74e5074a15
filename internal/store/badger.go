// ABOUTME: Badger-backed Store with type-prefixed keys and JSON values.
// ABOUTME: Supports on-disk and in-memory modes behind the same interface.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/models"
)

// Key prefixes, one per entity kind.
const (
	userPrefix      = "user:"
	cyclePrefix     = "cycle:"
	symptomPrefix   = "symptom:"
	moodPrefix      = "mood:"
	nutritionPrefix = "nutrition:"
	wellnessPrefix  = "wellness:"
	milestonePrefix = "milestone:"
	insightPrefix   = "insight:"
	reminderPrefix  = "reminder:"
)

// Badger is the persistent Store backend. Records are stored as JSON
// under type-prefixed keys; filtering happens client-side on read.
// A coarse mutex serializes writes, matching the memory backend's model.
type Badger struct {
	db *badger.DB
	mu sync.Mutex
}

// OpenBadger opens or creates a badger store rooted at dir.
func OpenBadger(dir string) (*Badger, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	opts := badger.DefaultOptions(filepath.Join(dir, "records")).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &Badger{db: db}, nil
}

// OpenBadgerInMemory opens a badger store with no on-disk state, for
// tests and ephemeral runs.
func OpenBadgerInMemory() (*Badger, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger store: %w", err)
	}
	return &Badger{db: db}, nil
}

// Close closes the underlying database.
func (b *Badger) Close() error {
	return b.db.Close()
}

// set stores v as JSON under key.
func (b *Badger) set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getKey loads the raw value at key, mapping misses to ErrNotFound.
func (b *Badger) getKey(key string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return data, nil
}

// getTyped loads and unmarshals a single record.
func getTyped[T any](b *Badger, key string) (*T, error) {
	data, err := b.getKey(key)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return &v, nil
}

// listPrefix unmarshals every record under a type prefix. Entries that
// fail to decode are skipped rather than failing the whole scan.
func listPrefix[T any](b *Badger, prefix string) ([]*T, error) {
	var out []*T
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var v T
			if err := json.Unmarshal(data, &v); err != nil {
				continue
			}
			out = append(out, &v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}
	return out, nil
}

func (b *Badger) userExists(userID uuid.UUID) error {
	if _, err := b.getKey(userPrefix + userID.String()); err != nil {
		if errors.Is(err, ErrNotFound) {
			return validationErr("unknown user %s", userID)
		}
		return err
	}
	return nil
}

// Users

func (b *Badger) CreateUser(u *models.User) error {
	if err := validateUser(u); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	existing, err := listPrefix[models.User](b, userPrefix)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.Username == u.Username {
			return fmt.Errorf("%w: username %q already taken", ErrConstraintViolation, u.Username)
		}
		if e.Email == u.Email {
			return fmt.Errorf("%w: email %q already registered", ErrConstraintViolation, u.Email)
		}
	}

	ensureIdentity(&u.ID, &u.CreatedAt)
	return b.set(userPrefix+u.ID.String(), u)
}

func (b *Badger) GetUser(id uuid.UUID) (*models.User, error) {
	return getTyped[models.User](b, userPrefix+id.String())
}

func (b *Badger) GetUserByUsername(username string) (*models.User, error) {
	users, err := listPrefix[models.User](b, userPrefix)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("username %q: %w", username, ErrNotFound)
}

func (b *Badger) GetUserByEmail(email string) (*models.User, error) {
	users, err := listPrefix[models.User](b, userPrefix)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("email %q: %w", email, ErrNotFound)
}

func (b *Badger) UpdateUser(id uuid.UUID, patch models.UserPatch) (*models.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	u, err := getTyped[models.User](b, userPrefix+id.String())
	if err != nil {
		return nil, err
	}
	patch.Apply(u)
	if err := validateUser(u); err != nil {
		return nil, err
	}
	if err := b.set(userPrefix+id.String(), u); err != nil {
		return nil, err
	}
	return u, nil
}

// Cycles

func (b *Badger) CreateCycle(c *models.CycleRecord) error {
	if err := validateCycle(c); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.userExists(c.UserID); err != nil {
		return err
	}
	ensureIdentity(&c.ID, &c.CreatedAt)
	return b.set(cyclePrefix+c.ID.String(), c)
}

func (b *Badger) GetCycle(id uuid.UUID) (*models.CycleRecord, error) {
	return getTyped[models.CycleRecord](b, cyclePrefix+id.String())
}

func (b *Badger) UpdateCycle(id uuid.UUID, patch models.CyclePatch) (*models.CycleRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, err := getTyped[models.CycleRecord](b, cyclePrefix+id.String())
	if err != nil {
		return nil, err
	}
	patch.Apply(c)
	if err := validateCycle(c); err != nil {
		return nil, err
	}
	if err := b.set(cyclePrefix+id.String(), c); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *Badger) CyclesByUser(userID uuid.UUID) ([]*models.CycleRecord, error) {
	all, err := listPrefix[models.CycleRecord](b, cyclePrefix)
	if err != nil {
		return nil, err
	}
	return filterByUser(all, userID, func(c *models.CycleRecord) uuid.UUID { return c.UserID }), nil
}

// Symptoms

func (b *Badger) CreateSymptom(s *models.SymptomEntry) error {
	if err := validateSymptom(s); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.userExists(s.UserID); err != nil {
		return err
	}
	ensureIdentity(&s.ID, &s.CreatedAt)
	return b.set(symptomPrefix+s.ID.String(), s)
}

func (b *Badger) UpdateSymptom(id uuid.UUID, patch models.SymptomPatch) (*models.SymptomEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := getTyped[models.SymptomEntry](b, symptomPrefix+id.String())
	if err != nil {
		return nil, err
	}
	patch.Apply(s)
	if err := validateSymptom(s); err != nil {
		return nil, err
	}
	if err := b.set(symptomPrefix+id.String(), s); err != nil {
		return nil, err
	}
	return s, nil
}

func (b *Badger) SymptomsByUser(userID uuid.UUID) ([]*models.SymptomEntry, error) {
	all, err := listPrefix[models.SymptomEntry](b, symptomPrefix)
	if err != nil {
		return nil, err
	}
	return filterByUser(all, userID, func(s *models.SymptomEntry) uuid.UUID { return s.UserID }), nil
}

// Moods

func (b *Badger) CreateMood(m *models.MoodEntry) error {
	if err := validateMood(m); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.userExists(m.UserID); err != nil {
		return err
	}
	ensureIdentity(&m.ID, &m.CreatedAt)
	return b.set(moodPrefix+m.ID.String(), m)
}

func (b *Badger) UpdateMood(id uuid.UUID, patch models.MoodPatch) (*models.MoodEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, err := getTyped[models.MoodEntry](b, moodPrefix+id.String())
	if err != nil {
		return nil, err
	}
	patch.Apply(m)
	if err := validateMood(m); err != nil {
		return nil, err
	}
	if err := b.set(moodPrefix+id.String(), m); err != nil {
		return nil, err
	}
	return m, nil
}

func (b *Badger) MoodsByUser(userID uuid.UUID) ([]*models.MoodEntry, error) {
	all, err := listPrefix[models.MoodEntry](b, moodPrefix)
	if err != nil {
		return nil, err
	}
	return filterByUser(all, userID, func(m *models.MoodEntry) uuid.UUID { return m.UserID }), nil
}

// Nutrition

func (b *Badger) CreateNutrition(n *models.NutritionEntry) error {
	if err := validateNutrition(n); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.userExists(n.UserID); err != nil {
		return err
	}
	ensureIdentity(&n.ID, &n.CreatedAt)
	return b.set(nutritionPrefix+n.ID.String(), n)
}

func (b *Badger) UpdateNutrition(id uuid.UUID, patch models.NutritionPatch) (*models.NutritionEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, err := getTyped[models.NutritionEntry](b, nutritionPrefix+id.String())
	if err != nil {
		return nil, err
	}
	patch.Apply(n)
	if err := validateNutrition(n); err != nil {
		return nil, err
	}
	if err := b.set(nutritionPrefix+id.String(), n); err != nil {
		return nil, err
	}
	return n, nil
}

func (b *Badger) NutritionByUser(userID uuid.UUID) ([]*models.NutritionEntry, error) {
	all, err := listPrefix[models.NutritionEntry](b, nutritionPrefix)
	if err != nil {
		return nil, err
	}
	return filterByUser(all, userID, func(n *models.NutritionEntry) uuid.UUID { return n.UserID }), nil
}

// Wellness

func (b *Badger) CreateWellness(w *models.WellnessEntry) error {
	if err := validateWellness(w); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.userExists(w.UserID); err != nil {
		return err
	}
	ensureIdentity(&w.ID, &w.CreatedAt)
	return b.set(wellnessPrefix+w.ID.String(), w)
}

func (b *Badger) UpdateWellness(id uuid.UUID, patch models.WellnessPatch) (*models.WellnessEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w, err := getTyped[models.WellnessEntry](b, wellnessPrefix+id.String())
	if err != nil {
		return nil, err
	}
	patch.Apply(w)
	if err := validateWellness(w); err != nil {
		return nil, err
	}
	if err := b.set(wellnessPrefix+id.String(), w); err != nil {
		return nil, err
	}
	return w, nil
}

func (b *Badger) WellnessByUser(userID uuid.UUID) ([]*models.WellnessEntry, error) {
	all, err := listPrefix[models.WellnessEntry](b, wellnessPrefix)
	if err != nil {
		return nil, err
	}
	return filterByUser(all, userID, func(w *models.WellnessEntry) uuid.UUID { return w.UserID }), nil
}

// Pregnancy milestones

func (b *Badger) CreateMilestone(m *models.PregnancyMilestone) error {
	if err := validateMilestone(m); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.userExists(m.UserID); err != nil {
		return err
	}
	ensureIdentity(&m.ID, &m.CreatedAt)
	return b.set(milestonePrefix+m.ID.String(), m)
}

func (b *Badger) UpdateMilestone(id uuid.UUID, patch models.MilestonePatch) (*models.PregnancyMilestone, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, err := getTyped[models.PregnancyMilestone](b, milestonePrefix+id.String())
	if err != nil {
		return nil, err
	}
	patch.Apply(m)
	if err := validateMilestone(m); err != nil {
		return nil, err
	}
	if err := b.set(milestonePrefix+id.String(), m); err != nil {
		return nil, err
	}
	return m, nil
}

func (b *Badger) MilestonesByUser(userID uuid.UUID) ([]*models.PregnancyMilestone, error) {
	all, err := listPrefix[models.PregnancyMilestone](b, milestonePrefix)
	if err != nil {
		return nil, err
	}
	return filterByUser(all, userID, func(m *models.PregnancyMilestone) uuid.UUID { return m.UserID }), nil
}

// Insights

func (b *Badger) CreateInsight(i *models.Insight) error {
	if err := validateInsight(i); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.userExists(i.UserID); err != nil {
		return err
	}
	ensureIdentity(&i.ID, &i.CreatedAt)
	return b.set(insightPrefix+i.ID.String(), i)
}

func (b *Badger) InsightsByUser(userID uuid.UUID) ([]*models.Insight, error) {
	all, err := listPrefix[models.Insight](b, insightPrefix)
	if err != nil {
		return nil, err
	}
	return filterByUser(all, userID, func(i *models.Insight) uuid.UUID { return i.UserID }), nil
}

// Reminders

func (b *Badger) CreateReminder(r *models.Reminder) error {
	if err := validateReminder(r); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.userExists(r.UserID); err != nil {
		return err
	}
	ensureIdentity(&r.ID, &r.CreatedAt)
	return b.set(reminderPrefix+r.ID.String(), r)
}

func (b *Badger) GetReminder(id uuid.UUID) (*models.Reminder, error) {
	return getTyped[models.Reminder](b, reminderPrefix+id.String())
}

func (b *Badger) UpdateReminder(id uuid.UUID, patch models.ReminderPatch) (*models.Reminder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, err := getTyped[models.Reminder](b, reminderPrefix+id.String())
	if err != nil {
		return nil, err
	}
	patch.Apply(r)
	if err := validateReminder(r); err != nil {
		return nil, err
	}
	if err := b.set(reminderPrefix+id.String(), r); err != nil {
		return nil, err
	}
	return r, nil
}

func (b *Badger) RemindersByUser(userID uuid.UUID) ([]*models.Reminder, error) {
	all, err := listPrefix[models.Reminder](b, reminderPrefix)
	if err != nil {
		return nil, err
	}
	return filterByUser(all, userID, func(r *models.Reminder) uuid.UUID { return r.UserID }), nil
}

func (b *Badger) DeleteReminder(id uuid.UUID) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := []byte(reminderPrefix + id.String())
	found := false
	err := b.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		found = true
		return txn.Delete(key)
	})
	if err != nil {
		return false, fmt.Errorf("delete reminder: %w", err)
	}
	return found, nil
}

// filterByUser keeps only records owned by userID.
func filterByUser[T any](in []*T, userID uuid.UUID, owner func(*T) uuid.UUID) []*T {
	var out []*T
	for _, v := range in {
		if owner(v) == userID {
			out = append(out, v)
		}
	}
	return out
}
