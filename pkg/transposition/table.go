// Package transposition provides the memo stores the solver consults to
// recognize positions it has already proven bounds for, regardless of the
// move order that reached them.
package transposition

import "fmt"

type boundKind uint8

const (
	upperBound boundKind = iota
	lowerBound
)

// Bound is a proven score bound for a position. It is not necessarily the
// exact value: the solver stores the tightest window it established, and a
// stored bound stays sound no matter which search produced it.
type Bound struct {
	kind  boundKind
	value int
}

// UpperBound states the position's value is at most v.
func UpperBound(v int) Bound {
	return Bound{kind: upperBound, value: v}
}

// LowerBound states the position's value is at least v.
func LowerBound(v int) Bound {
	return Bound{kind: lowerBound, value: v}
}

// Upper returns the bound value if this is an upper bound.
func (b Bound) Upper() (int, bool) {
	return b.value, b.kind == upperBound
}

// Lower returns the bound value if this is a lower bound.
func (b Bound) Lower() (int, bool) {
	return b.value, b.kind == lowerBound
}

// Value returns the bound value regardless of direction.
func (b Bound) Value() int {
	return b.value
}

func (b Bound) String() string {
	if b.kind == upperBound {
		return fmt.Sprintf("<=%d", b.value)
	}
	return fmt.Sprintf(">=%d", b.value)
}

// Table is a keyed store of proven bounds. A missing entry means "no known
// bound" and is never an error. Implementations choose their own capacity
// and eviction strategy; the solver works with whatever is retained.
type Table[K comparable] interface {
	Get(key K) (Bound, bool)
	Insert(key K, bound Bound)
}
