package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store holds values that expire after ttl without access. Reading a value
// through GetOrCreate pushes its expiry back.
type Store[V any] struct {
	items *gocache.Cache
}

func New[V any](ttl, cleanupInterval time.Duration) *Store[V] {
	return &Store[V]{items: gocache.New(ttl, cleanupInterval)}
}

// GetOrCreate returns the live value for key, creating it with create when
// absent or expired.
func (s *Store[V]) GetOrCreate(key string, create func() V) V {
	if v, ok := s.items.Get(key); ok {
		s.items.SetDefault(key, v)
		return v.(V)
	}

	v := create()
	if err := s.items.Add(key, v, gocache.DefaultExpiration); err != nil {
		// lost the race to another request for the same key
		if existing, ok := s.items.Get(key); ok {
			return existing.(V)
		}
	}
	return v
}

func (s *Store[V]) Len() int {
	return s.items.ItemCount()
}
