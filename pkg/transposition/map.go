package transposition

// Map is the simplest Table: a plain Go map. It is not safe for concurrent
// use; hand it to sequential solves only.
type Map[K comparable] struct {
	entries map[K]Bound
}

func NewMap[K comparable]() *Map[K] {
	return &Map[K]{entries: make(map[K]Bound)}
}

func (m *Map[K]) Get(key K) (Bound, bool) {
	b, ok := m.entries[key]
	return b, ok
}

func (m *Map[K]) Insert(key K, bound Bound) {
	m.entries[key] = bound
}

// Len returns the number of stored bounds.
func (m *Map[K]) Len() int {
	return len(m.entries)
}
