// Package quote picks one motivational line per calendar day and caches
// it in a key/value store so restarts on the same day show the same line.
package quote

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const (
	QuoteKey = "dailyQuote"
	DayKey   = "quoteDate"

	dayLayout = "2006-01-02"
)

var ErrEmptyPool = errors.New("quote pool is empty")

// Pool is the fixed set of quotes a day can draw from.
var Pool = []string{
	"Small steps every day add up to big results.",
	"Done is better than perfect.",
	"The secret of getting ahead is getting started.",
	"Focus on being productive instead of busy.",
	"You don't have to see the whole staircase, just take the first step.",
	"One task at a time.",
	"Action is the foundational key to all success.",
}

// Store is the subset of a key/value store the cache needs.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryStore keeps values for the life of the process only.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Picker returns an index in [0, n).
type Picker func(n int) int

// RandomPicker draws uniformly.
func RandomPicker(n int) int {
	return rand.Intn(n)
}

// Day formats t as the calendar day used for the cache marker.
func Day(t time.Time) string {
	return t.Format(dayLayout)
}

// Resolve returns today's quote, drawing and storing a new one when the
// stored day is not today. A failed read still yields a fresh quote along
// with the error.
func Resolve(now time.Time, store Store, pool []string, pick Picker) (string, error) {
	today := Day(now)

	stored, hasQuote, err := store.Get(QuoteKey)
	if err != nil {
		q, pickErr := draw(pool, pick)
		if pickErr != nil {
			return "", pickErr
		}
		return q, fmt.Errorf("read cached quote: %w", err)
	}
	day, hasDay, err := store.Get(DayKey)
	if err != nil {
		q, pickErr := draw(pool, pick)
		if pickErr != nil {
			return "", pickErr
		}
		return q, fmt.Errorf("read cached quote day: %w", err)
	}
	if hasQuote && stored != "" && hasDay && day == today {
		return stored, nil
	}

	q, err := draw(pool, pick)
	if err != nil {
		return "", err
	}
	if err := store.Set(QuoteKey, q); err != nil {
		return q, fmt.Errorf("store quote: %w", err)
	}
	if err := store.Set(DayKey, today); err != nil {
		return q, fmt.Errorf("store quote day: %w", err)
	}
	return q, nil
}

func draw(pool []string, pick Picker) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	i := pick(len(pool))
	if i < 0 || i >= len(pool) {
		return "", fmt.Errorf("quote index %d out of range [0,%d)", i, len(pool))
	}
	return pool[i], nil
}
