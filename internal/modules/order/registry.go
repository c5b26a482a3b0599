package order

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no order has the requested id. The
// error text doubles as the envelope code.
var ErrNotFound = errors.New("not-found")

// Registry holds created orders keyed by id. It is injected into the
// service so tests can run against isolated instances. Put with an
// existing id overwrites: last writer wins, by explicit choice.
type Registry interface {
	Put(order Order)
	Get(id string) (Order, error)
	Len() int
}

type memoryRegistry struct {
	mu     sync.RWMutex
	orders map[string]Order
}

// NewMemoryRegistry returns the mutex-guarded in-process registry used
// in production wiring and tests alike.
func NewMemoryRegistry() Registry {
	return &memoryRegistry{orders: make(map[string]Order)}
}

func (r *memoryRegistry) Put(order Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = order
}

func (r *memoryRegistry) Get(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return order, nil
}

func (r *memoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}

var _ Registry = (*memoryRegistry)(nil)
