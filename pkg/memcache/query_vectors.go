// pkg/memcache/query_vectors.go
package memcache

import (
	"sync"
	"time"
)

// QueryVectorStore caches embeddings of rendered kiosk queries so repeated
// identical intents skip the provider round-trip.
type QueryVectorStore interface {
	Set(text string, vector []float32, ttl time.Duration)

	// Get returns the cached vector for text if not expired.
	Get(text string) ([]float32, bool)
}

type entry struct {
	vector    []float32
	expiresAt time.Time
}

type QueryVectors struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewQueryVectors() *QueryVectors {
	return &QueryVectors{
		data: make(map[string]entry),
	}
}

func (s *QueryVectors) Set(text string, vector []float32, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[text] = entry{
		vector:    vector,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *QueryVectors) Get(text string) ([]float32, bool) {
	s.mu.RLock()
	e, ok := s.data[text]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, text) // cleanup expired
		s.mu.Unlock()
		return nil, false
	}
	return e.vector, true
}
