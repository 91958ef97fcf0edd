// Package memory provides an in-memory key-value store implementation,
// used for tests and as the default backend when Redis is not configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fridgechef/v2/internal/ports/outbound"
)

// item is a stored value with optional expiry
type item struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (i item) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}

// Store implements outbound.KeyValueStore on a mutex-guarded map
type Store struct {
	mu   sync.RWMutex
	data map[string]item
	done chan struct{}
}

// NewStore creates a new in-memory store with a background janitor that
// evicts expired entries.
func NewStore() *Store {
	s := &Store{
		data: make(map[string]item),
		done: make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Get retrieves a value; outbound.ErrKeyNotFound when absent or expired
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.data[key]
	if !ok || it.expired(time.Now()) {
		return nil, outbound.ErrKeyNotFound
	}

	value := make([]byte, len(it.value))
	copy(value, it.value)
	return value, nil
}

// Set stores a value. A ttl of zero or less means the value never expires.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = item{value: stored, expiresAt: expiresAt}
	return nil
}

// Delete removes a key
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Exists checks whether a live value is stored under the key
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.data[key]
	return ok && !it.expired(time.Now()), nil
}

// Close stops the janitor goroutine
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for key, it := range s.data {
				if it.expired(now) {
					delete(s.data, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
