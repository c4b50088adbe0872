// Package cache provides a bounded, time-expiring in-memory store for the
// read path. It is single-process and best effort: absence and expiration
// are states, never errors.
package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

var (
	ErrInvalidTTL      = errors.New("cache ttl must be positive")
	ErrInvalidCapacity = errors.New("cache capacity must be at least 1")
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Stats counts store activity since construction or the last Clear.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Expirations uint64
	Evictions   uint64
}

type settings struct {
	now func() time.Time
}

type Option func(*settings)

// WithClock replaces time.Now as the source of insertion and lookup times.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

// Store maps keys to values for a fixed TTL. When full, inserting a new key
// evicts the oldest inserted entry. Lookups never change insertion order, so
// this is not an LRU.
//
// Every method runs as one critical section.
type Store[V any] struct {
	mu      sync.Mutex
	entries *simplelru.LRU[string, entry[V]]
	ttl     time.Duration
	now     func() time.Time
	stats   Stats
}

func NewStore[V any](ttl time.Duration, maxEntries int, opts ...Option) (*Store[V], error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if maxEntries < 1 {
		return nil, ErrInvalidCapacity
	}

	s := settings{now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}

	entries, err := simplelru.NewLRU[string, entry[V]](maxEntries, nil)
	if err != nil {
		return nil, err
	}

	return &Store[V]{
		entries: entries,
		ttl:     ttl,
		now:     s.now,
	}, nil
}

// Get returns the value stored under key. ok is false when the key was never
// set, was removed, or has reached its TTL; an expired entry is dropped.
func (s *Store[V]) Get(key string) (value V, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, found := s.entries.Peek(key)
	if !found {
		s.stats.Misses++
		return value, false
	}

	if s.now().Sub(e.storedAt) >= s.ttl {
		s.entries.Remove(key)
		s.stats.Expirations++
		s.stats.Misses++
		return value, false
	}

	s.stats.Hits++
	return e.value, true
}

// Set stores value under key stamped with the current time, replacing any
// previous entry. A zero value (such as a nil pointer) is a valid value.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if evicted := s.entries.Add(key, entry[V]{value: value, storedAt: s.now()}); evicted {
		s.stats.Evictions++
	}
}

func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries.Remove(key)
}

// Clear drops every entry and resets the counters.
func (s *Store[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries.Purge()
	s.stats = Stats{}
}

// Len counts stored entries, including expired ones not yet read back.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entries.Len()
}

// Keys lists stored keys from oldest to newest insertion.
func (s *Store[V]) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entries.Keys()
}

func (s *Store[V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stats
}
