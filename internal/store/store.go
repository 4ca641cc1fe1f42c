package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pavan-459/My-Job-Dasboard/internal/models"
)

// ErrValidation is returned when a draft is missing required fields after
// trimming.
var ErrValidation = errors.New("company and role are required")

// DefaultKey namespaces the collection when the identity gate is disabled.
const DefaultKey = "job-tracker-items"

// KeyForEmail derives the storage key namespacing one account's records.
func KeyForEmail(email string) string {
	return DefaultKey + "-" + strings.ToLower(strings.TrimSpace(email))
}

// Draft carries the user-editable fields of a record.
type Draft struct {
	Company string
	Role    string
	Source  string
	Status  models.Status
	Date    string
	Notes   string
}

// Store owns one account's record collection, newest first. Every mutation
// rewrites the backing file before returning, so memory and disk never drift
// apart; a failed write rolls the in-memory change back.
type Store struct {
	mu    sync.Mutex
	path  string
	log   *zap.Logger
	items []models.ApplicationRecord
}

// Open loads the collection persisted under key in dataDir. Anything wrong
// with the stored blob — missing file, unreadable file, bad JSON, top level
// not an array — degrades to an empty collection, never an error.
func Open(dataDir, key string, log *zap.Logger) *Store {
	s := &Store{
		path: filepath.Join(dataDir, key+".json"),
		log:  log,
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("failed to read stored records, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		s.items = []models.ApplicationRecord{}
		return s
	}

	var items []models.ApplicationRecord
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn("stored records are corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		items = nil
	}
	if items == nil {
		items = []models.ApplicationRecord{}
	}
	s.items = items
	return s
}

// List returns a copy of the collection so callers never alias the owned slice.
func (s *Store) List() []models.ApplicationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ApplicationRecord, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// normalize trims the required fields and fills defaults. Status falls back to
// Applied, a missing date becomes today.
func normalize(d Draft) (Draft, error) {
	d.Company = strings.TrimSpace(d.Company)
	d.Role = strings.TrimSpace(d.Role)
	if d.Company == "" || d.Role == "" {
		return d, ErrValidation
	}
	if !models.ValidStatus(d.Status) {
		d.Status = models.StatusApplied
	}
	if strings.TrimSpace(d.Date) == "" {
		d.Date = time.Now().UTC().Format("2006-01-02")
	}
	return d, nil
}

// Create validates the draft, assigns a fresh id and prepends the record.
func (s *Store) Create(draft Draft) (*models.ApplicationRecord, error) {
	d, err := normalize(draft)
	if err != nil {
		return nil, err
	}

	rec := models.ApplicationRecord{
		ID:      uuid.NewString(),
		Company: d.Company,
		Role:    d.Role,
		Source:  d.Source,
		Status:  d.Status,
		Date:    d.Date,
		Notes:   d.Notes,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.ApplicationRecord{rec}, s.items...)
	if err := s.persistLocked(); err != nil {
		s.items = s.items[1:]
		return nil, err
	}
	return &rec, nil
}

// Update replaces the record matching id wholesale, keeping only the id.
// An absent id is a silent no-op returning (nil, nil): callers are expected to
// only update ids they got from the store.
func (s *Store) Update(id string, draft Draft) (*models.ApplicationRecord, error) {
	d, err := normalize(draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		prev := s.items[i]
		s.items[i] = models.ApplicationRecord{
			ID:      id,
			Company: d.Company,
			Role:    d.Role,
			Source:  d.Source,
			Status:  d.Status,
			Date:    d.Date,
			Notes:   d.Notes,
		}
		if err := s.persistLocked(); err != nil {
			s.items[i] = prev
			return nil, err
		}
		rec := s.items[i]
		return &rec, nil
	}
	return nil, nil
}

// Delete removes the record matching id, if present. Absent ids are a no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		prev := s.items
		next := make([]models.ApplicationRecord, 0, len(s.items)-1)
		next = append(next, s.items[:i]...)
		next = append(next, s.items[i+1:]...)
		s.items = next
		if err := s.persistLocked(); err != nil {
			s.items = prev
			return err
		}
		return nil
	}
	return nil
}

// ReplaceAll swaps in an imported collection wholesale. Individual records are
// trusted as-is; the codec already checked the top-level shape.
func (s *Store) ReplaceAll(records []models.ApplicationRecord) error {
	next := make([]models.ApplicationRecord, len(records))
	copy(next, records)

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.items
	s.items = next
	if err := s.persistLocked(); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// persistLocked writes the full collection through a temp file + rename so a
// crash mid-write cannot leave a torn blob behind. Caller holds the lock.
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}
