package aoc

import (
	"errors"
	"fmt"
)

// ErrNoCycle is returned when a state sequence does not repeat within the
// iteration cap.
var ErrNoCycle = errors.New("aoc: no cycle found")

// Cycle records an eventually periodic sequence of observed values: the
// first PreLength values are never seen again, after which the sequence
// repeats with period CycleLength.
type Cycle[V any] struct {
	PreLength   int
	CycleLength int
	// Values holds the observed value at indexes [0, PreLength+CycleLength).
	Values []V
}

// Index maps a sequence index onto the recorded value index.
func (c *Cycle[V]) Index(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("aoc: negative cycle index %d", n))
	}
	if n < c.PreLength {
		return n
	}
	return c.PreLength + (n-c.PreLength)%c.CycleLength
}

// ValueAt returns the observed value after n applications of the transform.
func (c *Cycle[V]) ValueAt(n int) V {
	return c.Values[c.Index(n)]
}

// DetectCycle applies next to initial until a state repeats, recording
// observe of every state along the way. The transform must be pure.
//
// At most maxIter transforms are applied; if no state has repeated by then,
// it returns ErrNoCycle. A maxIter <= 0 means no cap.
func DetectCycle[S comparable, V any](initial S, next func(S) S, observe func(S) V, maxIter int) (*Cycle[V], error) {
	return DetectCycleFunc(initial, next, func(s S) S { return s }, observe, maxIter)
}

// DetectCycleFunc is DetectCycle for states that are not comparable
// themselves. Two states are the same state when key returns equal values
// for them (for grids, Grid.Hash).
func DetectCycleFunc[S any, K comparable, V any](initial S, next func(S) S, key func(S) K, observe func(S) V, maxIter int) (*Cycle[V], error) {
	var (
		seen   = make(map[K]int) // state key -> first index
		values []V
		s      = initial
	)
	for i := 0; ; i++ {
		k := key(s)
		if first, ok := seen[k]; ok {
			return &Cycle[V]{
				PreLength:   first,
				CycleLength: i - first,
				Values:      values,
			}, nil
		}
		if maxIter > 0 && i == maxIter {
			return nil, fmt.Errorf("%w within %d iterations", ErrNoCycle, maxIter)
		}
		seen[k] = i
		values = append(values, observe(s))
		s = next(s)
	}
}
