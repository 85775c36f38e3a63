package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryVectors(t *testing.T) {
	t.Run("returns cached vector before expiry", func(t *testing.T) {
		store := NewQueryVectors()
		store.Set("서울 여행", []float32{0.1, 0.2}, time.Minute)

		vec, ok := store.Get("서울 여행")
		assert.True(t, ok)
		assert.Equal(t, []float32{0.1, 0.2}, vec)
	})

	t.Run("misses on unknown key", func(t *testing.T) {
		store := NewQueryVectors()

		_, ok := store.Get("부산 여행")
		assert.False(t, ok)
	})

	t.Run("expired entries are evicted", func(t *testing.T) {
		store := NewQueryVectors()
		store.Set("서울 여행", []float32{0.1}, -time.Second)

		_, ok := store.Get("서울 여행")
		assert.False(t, ok)

		// The expired entry is gone, not just hidden.
		store.mu.RLock()
		_, present := store.data["서울 여행"]
		store.mu.RUnlock()
		assert.False(t, present)
	})
}
