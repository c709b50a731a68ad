package cache

import (
	"sync"
	"time"
)

// Eviction reasons reported to the metrics recorder.
const (
	ReasonExpired = "expired"
	ReasonLRU     = "lru"
)

// Metrics receives cache events. Implementations must be safe for
// concurrent use. A nil Metrics is valid and records nothing.
type Metrics interface {
	Hit()
	Miss()
	Eviction(reason string)
	SetEntries(n int)
}

// nopMetrics discards all events.
type nopMetrics struct{}

func (nopMetrics) Hit()            {}
func (nopMetrics) Miss()           {}
func (nopMetrics) Eviction(string) {}
func (nopMetrics) SetEntries(int)  {}

// entry is a cached value with its expiry and access bookkeeping.
type entry struct {
	value          []byte
	expiresAt      time.Time
	createdAt      time.Time
	lastAccessedAt time.Time
	accessCount    int64
}

// expired reports whether the entry is past its expiry at the given time.
// A zero expiry never expires.
func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Store is a thread-safe key to bytes cache with per-entry TTL and LRU
// eviction. Entries are treated as absent once expired: Get removes them
// lazily and PruneExpired sweeps them eagerly. When the store reaches max
// capacity, inserting a new key evicts the least recently accessed entry.
//
// Values are copied on the way in and on the way out, so callers can never
// alias cached bytes.
type Store struct {
	// entries maps cache keys to stored entries
	entries map[string]*entry

	// maxEntries is the maximum number of entries (0 = unlimited)
	maxEntries int

	// mu protects concurrent access to the store
	mu sync.RWMutex

	// closed makes Get and Put no-ops once the store is shut down
	closed bool

	metrics Metrics
}

// Options configures a Store.
type Options struct {
	// MaxEntries bounds the store size. 0 means unlimited.
	MaxEntries int

	// Metrics receives cache events. May be nil.
	Metrics Metrics
}

// New creates an empty store.
func New(opts Options) *Store {
	m := opts.Metrics
	if m == nil {
		m = nopMetrics{}
	}

	return &Store{
		entries:    make(map[string]*entry),
		maxEntries: opts.MaxEntries,
		metrics:    m,
	}
}

// Get retrieves the value stored under key.
// Returns (value, true) if found and not expired.
// Returns (nil, false) if not found or expired; an expired entry is
// removed as a side effect.
func (s *Store) Get(key string) ([]byte, bool) {
	now := time.Now()

	// First check with read lock
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		s.metrics.Miss()
		return nil, false
	}
	e, ok := s.entries[key]
	if !ok {
		s.mu.RUnlock()
		s.metrics.Miss()
		return nil, false
	}

	if e.expired(now) {
		s.mu.RUnlock()

		// Remove the stale entry under write lock
		s.mu.Lock()
		// Re-check: another goroutine may have replaced it already
		if cur, ok := s.entries[key]; ok && cur.expired(time.Now()) {
			delete(s.entries, key)
			s.metrics.Eviction(ReasonExpired)
			s.metrics.SetEntries(len(s.entries))
		}
		s.mu.Unlock()

		s.metrics.Miss()
		return nil, false
	}

	value := append([]byte(nil), e.value...)
	s.mu.RUnlock()

	// Update access time and count with write lock
	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		e.lastAccessedAt = time.Now()
		e.accessCount++
	}
	s.mu.Unlock()

	s.metrics.Hit()
	return value, true
}

// Put stores value under key with the given TTL. A ttl of 0 or less means
// the entry never expires. If the store is full, the least recently used
// entry is evicted first. An existing entry for the same key is replaced
// without eviction.
func (s *Store) Put(key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		if _, exists := s.entries[key]; !exists {
			s.evictLRU()
		}
	}

	now := time.Now()
	expiresAt := time.Time{}
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}

	s.entries[key] = &entry{
		value:          append([]byte(nil), value...),
		expiresAt:      expiresAt,
		createdAt:      now,
		lastAccessedAt: now,
		accessCount:    0,
	}
	s.metrics.SetEntries(len(s.entries))
}

// Delete removes an entry from the store.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	s.metrics.SetEntries(len(s.entries))
}

// Len returns the current number of entries, expired ones included until
// they are swept.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Clear removes all entries from the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*entry)
	s.metrics.SetEntries(0)
}

// Close empties the store and marks it closed. A closed store answers
// every Get with a miss and drops every Put. Close is idempotent and safe
// to call while readers are active.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.entries = make(map[string]*entry)
	s.metrics.SetEntries(0)
}

// PruneExpired removes every expired entry and returns how many were
// removed.
func (s *Store) PruneExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
			s.metrics.Eviction(ReasonExpired)
			removed++
		}
	}
	if removed > 0 {
		s.metrics.SetEntries(len(s.entries))
	}
	return removed
}

// Stats is a point-in-time snapshot of the store.
type Stats struct {
	Entries    int
	MaxEntries int
}

// Stats returns a snapshot of the store's size.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Entries:    len(s.entries),
		MaxEntries: s.maxEntries,
	}
}

// evictLRU evicts the least recently accessed entry.
// Must be called with write lock held.
func (s *Store) evictLRU() {
	if len(s.entries) == 0 {
		return
	}

	var oldestKey string
	var oldestTime time.Time

	for key, e := range s.entries {
		if oldestKey == "" || e.lastAccessedAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = e.lastAccessedAt
		}
	}

	if oldestKey != "" {
		delete(s.entries, oldestKey)
		s.metrics.Eviction(ReasonLRU)
	}
}
