// Package overrides implements the runtime configuration override store.
//
// Overrides are string key/value pairs set by operators while a load test
// is running. They supersede compiled-in defaults until the scheduler is
// paused, which clears the whole store: pausing resets all runtime
// overrides back to defaults. That reset is deliberate policy.
//
// The store is the synchronization boundary: control API handlers call it
// from concurrent requests and must not be expected to serialize access
// themselves.
package overrides

import (
	"strconv"
	"sync"

	"github.com/windtunnel-io/gale/internal/logger"
)

// Store is a thread-safe string-keyed override mapping.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore creates an empty override store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Set inserts or overwrites the value for key.
func (s *Store) Set(key, value string) {
	logger.Info("Configuration override set", "key", key, "value", value)
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
}

// Get returns the stored value for key, or the empty string if the key
// is absent. Absence is not an error.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Lookup returns the stored value for key and whether it was present.
func (s *Store) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// StringValue returns the stored value for key, or defaultValue if the
// key is absent.
func (s *Store) StringValue(key, defaultValue string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return defaultValue
}

// UintValue returns the stored value for key parsed as a uint32.
//
// If the key is absent, defaultValue is returned. If the stored value is
// present but not parseable as an unsigned 32-bit integer (negative,
// overflowing, or non-numeric), a warning is logged and defaultValue is
// returned; the failure is never surfaced to the caller.
func (s *Store) UintValue(key string, defaultValue uint32) uint32 {
	v, ok := s.Lookup(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		logger.Warn("Failed to parse override as unsigned integer",
			"key", key, "value", v, "error", err)
		return defaultValue
	}
	return uint32(parsed)
}

// Snapshot returns a copy of all stored overrides.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Len returns the number of stored overrides.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Clear removes every override, returning the store to its initial
// empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	cleared := len(s.values)
	s.values = make(map[string]string)
	s.mu.Unlock()
	if cleared > 0 {
		logger.Info("Configuration overrides cleared", "count", cleared)
	}
}
