package nn

import (
	"math/rand"
	"sync"
	"time"
)

// Float64Source yields uniform values in [0, 1).
type Float64Source interface {
	Float64() float64
}

// lockedSource serializes access to a *rand.Rand shared between a network
// and its clones.
type lockedSource struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func newLockedSource(r *rand.Rand) *lockedSource {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &lockedSource{rand: r}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Float64()
}

// symmetric maps a draw from src onto [-1, 1).
func symmetric(src Float64Source) float64 {
	return src.Float64()*2 - 1
}
