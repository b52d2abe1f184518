package transposition

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to the 64-bit value used to pick its shard. It does not
// need to be collision-free (shards hold full keys), only cheap and well
// distributed.
type Hasher[K comparable] func(K) uint64

// StringHasher builds a Hasher from the key's String form using xxhash, a
// fast non-cryptographic hash. Most positions already carry a String method
// for display, which makes this a reasonable default.
func StringHasher[K interface {
	comparable
	fmt.Stringer
}]() Hasher[K] {
	return func(key K) uint64 {
		return xxhash.Sum64String(key.String())
	}
}

// Sharded is a Table split across stripe-locked map shards, so concurrent
// workers mostly contend on different locks. Use it instead of Sync when a
// cheap position hash is available and insert traffic is heavy.
type Sharded[K comparable] struct {
	shards []shard[K]
	mask   uint64
	hash   Hasher[K]
}

type shard[K comparable] struct {
	mu      sync.RWMutex
	entries map[K]Bound
}

// NewSharded creates a table with the given shard count, rounded up to a
// power of two, distributing keys with hash.
func NewSharded[K comparable](shards int, hash Hasher[K]) *Sharded[K] {
	size := 1
	for size < shards {
		size *= 2
	}

	t := &Sharded[K]{
		shards: make([]shard[K], size),
		mask:   uint64(size - 1),
		hash:   hash,
	}
	for i := range t.shards {
		t.shards[i].entries = make(map[K]Bound)
	}
	return t
}

func (t *Sharded[K]) shardFor(key K) *shard[K] {
	return &t.shards[t.hash(key)&t.mask]
}

func (t *Sharded[K]) Get(key K) (Bound, bool) {
	s := t.shardFor(key)
	s.mu.RLock()
	b, ok := s.entries[key]
	s.mu.RUnlock()
	return b, ok
}

func (t *Sharded[K]) Insert(key K, bound Bound) {
	s := t.shardFor(key)
	s.mu.Lock()
	s.entries[key] = bound
	s.mu.Unlock()
}

// Len returns the total number of stored bounds across all shards.
func (t *Sharded[K]) Len() int {
	n := 0
	for i := range t.shards {
		t.shards[i].mu.RLock()
		n += len(t.shards[i].entries)
		t.shards[i].mu.RUnlock()
	}
	return n
}
