package store

import (
	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps values in process memory. State does not survive a
// restart; meant for tests and throwaway sessions.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemoryStore) Get(key string) (string, error) {
	if x, found := s.cache.Get(key); found {
		return x.(string), nil
	}
	return "", ErrNotFound
}

func (s *MemoryStore) Set(key, value string) error {
	s.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.cache.Delete(key)
	return nil
}
