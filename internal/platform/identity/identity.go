// Package identity provides the id-generation collaborators injected
// into the customer and order services.
package identity

import (
	"sync"

	"github.com/google/uuid"
)

// UUIDGenerator issues random unique ids.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// PrefixedGenerator issues random ids under a readable prefix, e.g.
// "order-5f0c...".
type PrefixedGenerator struct {
	Prefix string
}

func (g PrefixedGenerator) NewID() string { return g.Prefix + "-" + uuid.NewString() }

// Sequence issues monotonically increasing numbers, used for
// human-readable order numbers.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

// NewSequence starts a sequence at start.
func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.next
	s.next++
	return n
}
