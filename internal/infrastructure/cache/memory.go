package cache

import (
	"sync"
	"time"

	"github.com/petscout/backend/internal/domain"
)

// entry is a single cached value with its expiration
type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// TTLCache is a thread-safe in-memory cache with a fixed TTL per table.
// Expired entries are evicted lazily: a read past the expiry deletes the
// entry and reports a miss. There is no background sweeper.
type TTLCache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[T]
	now     func() time.Time
}

// New creates a cache whose entries live for ttl after each Set
func New[T any](ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// Get retrieves a value from the cache. Returns domain.ErrCacheMiss both
// for unknown keys and for entries whose TTL has passed.
func (c *TTLCache[T]) Get(key string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.entries[key]
	if !ok {
		return zero, domain.ErrCacheMiss
	}

	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return zero, domain.ErrCacheMiss
	}

	return e.value, nil
}

// Set stores a value, overwriting any existing entry and restarting its
// TTL window from now
func (c *TTLCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Clear removes all entries
func (c *TTLCache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}

// Len returns the current number of entries, expired or not (for debugging/monitoring)
func (c *TTLCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Store groups the three cache tables the client uses, each with its own
// TTL matched to how fast the underlying data changes.
type Store struct {
	Searches      *TTLCache[[]domain.Animal]
	Animals       *TTLCache[domain.Animal]
	Organizations *TTLCache[[]domain.Organization]
}

// Options configures the per-table TTLs of a Store
type Options struct {
	SearchTTL       time.Duration
	AnimalTTL       time.Duration
	OrganizationTTL time.Duration
}

// NewStore creates the three tables. Zero TTLs fall back to the defaults
// used in production.
func NewStore(opts Options) *Store {
	if opts.SearchTTL == 0 {
		opts.SearchTTL = 60 * time.Second
	}
	if opts.AnimalTTL == 0 {
		opts.AnimalTTL = 5 * time.Minute
	}
	if opts.OrganizationTTL == 0 {
		opts.OrganizationTTL = 15 * time.Minute
	}

	return &Store{
		Searches:      New[[]domain.Animal](opts.SearchTTL),
		Animals:       New[domain.Animal](opts.AnimalTTL),
		Organizations: New[[]domain.Organization](opts.OrganizationTTL),
	}
}

// ClearAll empties all three tables unconditionally
func (s *Store) ClearAll() {
	s.Searches.Clear()
	s.Animals.Clear()
	s.Organizations.Clear()
}
