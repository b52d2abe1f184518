package transposition

import "sync"

// Sync is a Table safe for concurrent get/insert from independent search
// workers, backed by a sync.Map. Workers racing to insert bounds for the
// same position are harmless: both bounds are proven, either may win.
type Sync[K comparable] struct {
	entries sync.Map
}

func NewSync[K comparable]() *Sync[K] {
	return &Sync[K]{}
}

func (s *Sync[K]) Get(key K) (Bound, bool) {
	v, ok := s.entries.Load(key)
	if !ok {
		return Bound{}, false
	}
	return v.(Bound), true
}

func (s *Sync[K]) Insert(key K, bound Bound) {
	s.entries.Store(key, bound)
}
