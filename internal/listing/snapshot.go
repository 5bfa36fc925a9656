package listing

import (
	"sync"

	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

// Snapshot indexes the orders of the last successful load by id. It is
// replaced wholesale on every load and never outlives the listing.
type Snapshot[T orders.View] struct {
	mu    sync.RWMutex
	byID  map[int64]T
	order []int64
}

func NewSnapshot[T orders.View]() *Snapshot[T] {
	return &Snapshot[T]{byID: make(map[int64]T)}
}

// Replace swaps in a new set of orders, keeping their listing order.
func (s *Snapshot[T]) Replace(list []T) {
	byID := make(map[int64]T, len(list))
	ids := make([]int64, 0, len(list))
	for _, v := range list {
		id := v.OrderID()
		if _, dup := byID[id]; !dup {
			ids = append(ids, id)
		}
		byID[id] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = byID
	s.order = ids
}

func (s *Snapshot[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[id]
	return v, ok
}

func (s *Snapshot[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *Snapshot[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *Snapshot[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[int64]T)
	s.order = nil
}
