package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundtrip(t *testing.T) {
	store := NewMemory()

	require.NoError(t, store.Set("k", "hello", time.Minute))

	var got string
	require.NoError(t, store.Get("k", &got))
	assert.Equal(t, "hello", got)
}

func TestMemoryMiss(t *testing.T) {
	store := NewMemory()

	var got string
	err := store.Get("absent", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryExpiry(t *testing.T) {
	store := NewMemory()

	require.NoError(t, store.Set("k", 42, time.Millisecond*10))
	time.Sleep(time.Millisecond * 30)

	var got int
	err := store.Get("k", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDeleteIdempotent(t *testing.T) {
	store := NewMemory()

	require.NoError(t, store.Set("keep", "v", time.Minute))

	// deleting an absent key twice must not error and must not touch other keys
	assert.NoError(t, store.Delete("absent"))
	assert.NoError(t, store.Delete("absent"))

	var got string
	require.NoError(t, store.Get("keep", &got))
	assert.Equal(t, "v", got)
}

func TestSetMutexGetSet(t *testing.T) {
	store := NewMemory()
	set := NewSet[[]string](store, "zones")

	calls := 0
	producer := func() ([]string, error) {
		calls++
		return []string{"Block 5"}, nil
	}

	var dest []string
	calculated, err := set.MutexGetSet("caloocan", &dest, producer, time.Minute)
	require.NoError(t, err)
	assert.True(t, calculated)
	assert.Equal(t, []string{"Block 5"}, dest)

	// second read is a cache hit; the producer must not run again
	var dest2 []string
	calculated, err = set.MutexGetSet("caloocan", &dest2, producer, time.Minute)
	require.NoError(t, err)
	assert.False(t, calculated)
	assert.Equal(t, []string{"Block 5"}, dest2)
	assert.Equal(t, 1, calls)
}

func TestSetMutexGetSetProducerFailure(t *testing.T) {
	store := NewMemory()
	set := NewSet[[]string](store, "zones")

	boom := assert.AnError
	var dest []string
	_, err := set.MutexGetSet("caloocan", &dest, func() ([]string, error) {
		return nil, boom
	}, time.Minute)
	assert.ErrorIs(t, err, boom)

	// a failed producer must not populate the key
	err = set.Get("caloocan", &dest)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetDeleteRepopulates(t *testing.T) {
	store := NewMemory()
	set := NewSet[int](store, "export")

	value := 1
	producer := func() (int, error) { return value, nil }

	var dest int
	_, err := set.MutexGetSet("caloocan", &dest, producer, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, dest)

	value = 2
	require.NoError(t, set.Delete("caloocan"))

	_, err = set.MutexGetSet("caloocan", &dest, producer, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, dest)
}

func TestSetKeyScoping(t *testing.T) {
	store := NewMemory()
	zones := NewSet[string](store, "zones")
	types := NewSet[string](store, "zone_types")

	require.NoError(t, zones.Set("caloocan", "z", time.Minute))
	require.NoError(t, types.Set("caloocan", "t", time.Minute))
	require.NoError(t, zones.Delete("caloocan"))

	var got string
	assert.ErrorIs(t, zones.Get("caloocan", &got), ErrNotFound)
	require.NoError(t, types.Get("caloocan", &got))
	assert.Equal(t, "t", got)
}
