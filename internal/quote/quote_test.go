package quote

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tada/internal/storage"
)

type mapStore struct {
	values map[string]string
	getErr error
}

func newMapStore() *mapStore {
	return &mapStore{values: map[string]string{}}
}

func (m *mapStore) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mapStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}

// sequence returns successive indexes so tests can tell a fresh draw
// from a cached one.
func sequence(idx ...int) Picker {
	i := 0
	return func(n int) int {
		v := idx[i%len(idx)] % n
		i++
		return v
	}
}

func TestResolveSameDayReturnsCachedQuote(t *testing.T) {
	store := newMapStore()
	pick := sequence(0, 1)
	morning := time.Date(2026, 10, 19, 8, 0, 0, 0, time.Local)
	evening := time.Date(2026, 10, 19, 22, 30, 0, 0, time.Local)

	first, err := Resolve(morning, store, Pool, pick)
	require.NoError(t, err)
	second, err := Resolve(evening, store, Pool, pick)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "2026-10-19", store.values[DayKey])
}

func TestResolveNewDayDrawsAgain(t *testing.T) {
	store := newMapStore()
	pick := sequence(0, 1)

	first, err := Resolve(time.Date(2026, 10, 18, 9, 0, 0, 0, time.Local), store, Pool, pick)
	require.NoError(t, err)
	second, err := Resolve(time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local), store, Pool, pick)
	require.NoError(t, err)

	assert.Contains(t, Pool, first)
	assert.Contains(t, Pool, second)
	assert.Equal(t, Pool[0], first)
	assert.Equal(t, Pool[1], second)
	assert.Equal(t, "2026-10-19", store.values[DayKey])
	assert.Equal(t, second, store.values[QuoteKey])
}

func TestResolveQuoteWithoutDayMarkerIsRedrawn(t *testing.T) {
	store := newMapStore()
	store.values[QuoteKey] = "stale"

	q, err := Resolve(time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local), store, Pool, sequence(2))
	require.NoError(t, err)
	assert.Equal(t, Pool[2], q)
}

func TestResolveEmptyCachedQuoteIsRedrawn(t *testing.T) {
	store := newMapStore()
	store.values[QuoteKey] = ""
	store.values[DayKey] = "2026-10-19"

	q, err := Resolve(time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local), store, Pool, sequence(4))
	require.NoError(t, err)
	assert.Equal(t, Pool[4], q)
	assert.Equal(t, Pool[4], store.values[QuoteKey])
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	_, ok, err := s.Get(QuoteKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(QuoteKey, "hi"))
	v, ok, err := s.Get(QuoteKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hi", v)
}

func TestResolveEmptyPool(t *testing.T) {
	_, err := Resolve(time.Now(), newMapStore(), nil, RandomPicker)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestResolveReadFailureStillReturnsQuote(t *testing.T) {
	store := newMapStore()
	store.getErr = errors.New("disk gone")

	q, err := Resolve(time.Now(), store, Pool, sequence(3))
	assert.Error(t, err)
	assert.Equal(t, Pool[3], q)
}

func TestRandomPickerStaysInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomPicker(len(Pool))
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, len(Pool))
	}
}

func TestResolveWithSQLiteStore(t *testing.T) {
	s, err := storage.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer s.Close()

	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)
	first, err := Resolve(day, s, Pool, RandomPicker)
	require.NoError(t, err)
	second, err := Resolve(day.Add(time.Hour), s, Pool, RandomPicker)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
