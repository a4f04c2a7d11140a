package overrides

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	s := NewStore()

	s.Set("latency_budget_ms", "250")
	assert.Equal(t, "250", s.Get("latency_budget_ms"))

	v, ok := s.Lookup("latency_budget_ms")
	assert.True(t, ok)
	assert.Equal(t, "250", v)
}

func TestGetAbsentKeyReturnsEmpty(t *testing.T) {
	s := NewStore()

	assert.Equal(t, "", s.Get("never_set"))

	v, ok := s.Lookup("never_set")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestSetOverwrites(t *testing.T) {
	s := NewStore()

	s.Set("workers", "4")
	s.Set("workers", "8")
	assert.Equal(t, "8", s.Get("workers"))
	assert.Equal(t, 1, s.Len())
}

func TestStringValueDefault(t *testing.T) {
	s := NewStore()

	assert.Equal(t, "fallback", s.StringValue("missing", "fallback"))

	s.Set("present", "actual")
	assert.Equal(t, "actual", s.StringValue("present", "fallback"))
}

func TestUintValue(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		set      bool
		def      uint32
		expected uint32
	}{
		{name: "absent key returns default", set: false, def: 7, expected: 7},
		{name: "valid value parses", stored: "123", set: true, def: 7, expected: 123},
		{name: "zero parses", stored: "0", set: true, def: 7, expected: 0},
		{name: "max uint32 parses", stored: "4294967295", set: true, def: 7, expected: 4294967295},
		{name: "negative falls back", stored: "-5", set: true, def: 7, expected: 7},
		{name: "overflow falls back", stored: "4294967296", set: true, def: 7, expected: 7},
		{name: "non-numeric falls back", stored: "fast", set: true, def: 7, expected: 7},
		{name: "empty string falls back", stored: "", set: true, def: 7, expected: 7},
		{name: "float falls back", stored: "1.5", set: true, def: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			if tt.set {
				s.Set("k", tt.stored)
			}
			assert.Equal(t, tt.expected, s.UintValue("k", tt.def))
		})
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.Set("a", "1")
	s.Set("b", "2")

	snap := s.Snapshot()
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, snap)

	snap["a"] = "mutated"
	assert.Equal(t, "1", s.Get("a"))
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Set("a", "1")
	s.Set("b", "2")

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.Get("a"))

	// Clearing an empty store is a no-op.
	s.Clear()
	assert.Equal(t, 0, s.Len())

	// The store is usable after a clear.
	s.Set("c", "3")
	assert.Equal(t, "3", s.Get("c"))
}

func TestConcurrentWritersLoseNoUpdates(t *testing.T) {
	s := NewStore()

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Set(fmt.Sprintf("key_%d", n), fmt.Sprintf("value_%d", n))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, writers, s.Len())
	for i := 0; i < writers; i++ {
		assert.Equal(t, fmt.Sprintf("value_%d", i), s.Get(fmt.Sprintf("key_%d", i)))
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	s := NewStore()
	s.Set("shared", "0")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set("shared", fmt.Sprintf("%d", n))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Get("shared")
				_ = s.Snapshot()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = s.UintValue("shared", 0)
			}
		}()
	}
	wg.Wait()

	_, ok := s.Lookup("shared")
	assert.True(t, ok)
}
