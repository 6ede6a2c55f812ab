package persona

import (
	"math/rand"
	"sync"
)

// lockedSource serializes access to an underlying rand.Source so one
// generator can feed selectors running on different goroutines.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewRand returns a seeded generator that is safe to share across
// goroutines, unlike rand.New(rand.NewSource(seed)).
func NewRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed)})
}
