// Package results keeps a history of finished runs.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrNoHistory is returned when no run has been recorded yet.
var ErrNoHistory = errors.New("no runs recorded")

// Outcome is how a run ended.
type Outcome string

const (
	Won      Outcome = "won"
	Lost     Outcome = "lost"
	TimedOut Outcome = "timeout"
)

// Record describes one finished run.
type Record struct {
	Finished    time.Time `json:"finished"`
	Level       string    `json:"level"`
	Seed        int64     `json:"seed"`
	Outcome     Outcome   `json:"outcome"`
	Ticks       int       `json:"ticks"`
	EnemiesLeft int       `json:"enemiesLeft"`
}

// Better reports whether r ranks above other: wins first, faster wins
// before slower ones; otherwise fewer enemies left, then longer survival.
func (r Record) Better(other Record) bool {
	rw, ow := r.Outcome == Won, other.Outcome == Won
	switch {
	case rw != ow:
		return rw
	case rw:
		return r.Ticks < other.Ticks
	case r.EnemiesLeft != other.EnemiesLeft:
		return r.EnemiesLeft < other.EnemiesLeft
	default:
		return r.Ticks > other.Ticks
	}
}

// Store persists the encoded history blob.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// historyKey is the item the history is stored under.
const historyKey = "runs"

// History appends and ranks records on top of a Store.
type History struct {
	mu    sync.Mutex
	store Store
	keep  int
}

// NewHistory wraps store. Only the keep most recent runs are retained;
// keep <= 0 keeps everything.
func NewHistory(store Store, keep int) *History {
	return &History{store: store, keep: keep}
}

// Add appends a record.
func (h *History) Add(r Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.load()
	if err != nil {
		return err
	}
	records = append(records, r)
	if h.keep > 0 && len(records) > h.keep {
		records = records[len(records)-h.keep:]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := h.store.SaveItem(historyKey, data); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Records returns every retained record, oldest first.
func (h *History) Records() ([]Record, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

// Best returns the highest ranked record.
func (h *History) Best() (Record, error) {
	records, err := h.Records()
	if err != nil {
		return Record{}, err
	}
	if len(records) == 0 {
		return Record{}, ErrNoHistory
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Better(records[j])
	})
	return records[0], nil
}

func (h *History) load() ([]Record, error) {
	data, err := h.store.LoadItem(historyKey)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return records, nil
}

// MemoryStore keeps items in memory.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

// LoadItem implements Store. Missing items load as nil.
func (s *MemoryStore) LoadItem(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

// SaveItem implements Store.
func (s *MemoryStore) SaveItem(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), data...)
	return nil
}
