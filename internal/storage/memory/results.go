// Package memory provides in-process implementations of the storage interfaces.
package memory

import (
	"sync"

	"github.com/mmynk/investcalc/internal/models"
	"github.com/mmynk/investcalc/internal/storage"
)

// Ensure ResultStore implements storage.ResultStore
var _ storage.ResultStore = (*ResultStore)(nil)

// ResultStore is a single replace-on-write holder for the latest projection.
type ResultStore struct {
	mu      sync.RWMutex
	records []models.YearRecord
	set     bool

	// notifyMu serializes Replace so subscribers see replacements in the
	// order they were stored.
	notifyMu sync.Mutex

	subMu  sync.Mutex
	nextID int
	subs   map[int]func([]models.YearRecord)
}

// NewResultStore creates an empty ResultStore.
func NewResultStore() *ResultStore {
	return &ResultStore{subs: make(map[int]func([]models.YearRecord))}
}

// Get returns a copy of the current projection and whether one has been set.
func (s *ResultStore) Get() ([]models.YearRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return nil, false
	}
	return cloneRecords(s.records), true
}

// Replace stores a copy of records and then notifies subscribers.
// Subscribers may call Get but must not call Replace.
func (s *ResultStore) Replace(records []models.YearRecord) {
	held := cloneRecords(records)

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.records = held
	s.set = true
	s.mu.Unlock()

	for _, fn := range s.subscribers() {
		fn(cloneRecords(held))
	}
}

// Subscribe registers fn to be called after every Replace.
func (s *ResultStore) Subscribe(fn func([]models.YearRecord)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// subscribers snapshots the callbacks in registration order so they run without the lock held.
func (s *ResultStore) subscribers() []func([]models.YearRecord) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	fns := make([]func([]models.YearRecord), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

func cloneRecords(records []models.YearRecord) []models.YearRecord {
	out := make([]models.YearRecord, len(records))
	copy(out, records)
	return out
}
