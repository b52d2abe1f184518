package transposition

import (
	"fmt"
	"sync/atomic"
)

// Stats is a snapshot of a Counting table's counters.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Inserts uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("hits=%d misses=%d inserts=%d", s.Hits, s.Misses, s.Inserts)
}

// Counting wraps a Table and counts lookups and inserts with atomics, so it
// can sit in front of a concurrently shared table without extra locking.
type Counting[K comparable] struct {
	inner   Table[K]
	hits    atomic.Uint64
	misses  atomic.Uint64
	inserts atomic.Uint64
}

func NewCounting[K comparable](inner Table[K]) *Counting[K] {
	return &Counting[K]{inner: inner}
}

func (c *Counting[K]) Get(key K) (Bound, bool) {
	b, ok := c.inner.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return b, ok
}

func (c *Counting[K]) Insert(key K, bound Bound) {
	c.inserts.Add(1)
	c.inner.Insert(key, bound)
}

func (c *Counting[K]) Stats() Stats {
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Inserts: c.inserts.Load(),
	}
}
