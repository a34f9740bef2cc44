package aoc

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ReachableAfter returns the states reachable from starts in exactly steps
// moves. Each move replaces the frontier with the union of its neighbors, so
// a state reached early is kept only if the walk can come back to it on the
// final step.
func ReachableAfter[S comparable](starts []S, neighbors func(S) []S, steps int) mapset.Set[S] {
	if steps < 0 {
		panic(fmt.Sprintf("aoc: negative step count %d", steps))
	}
	frontier := mapset.Of(starts...)
	for range steps {
		next := mapset.New[S]()
		frontier.Each(func(s S) {
			for _, n := range neighbors(s) {
				next.Put(n)
			}
		})
		frontier = next
	}
	return frontier
}

// ReachableAfterDivided is ReachableAfter computed by halving the step count
// with a fresh Reacher.
func ReachableAfterDivided[S comparable](starts []S, neighbors func(S) []S, steps int) mapset.Set[S] {
	return NewReacher(neighbors).FromAll(starts, steps)
}

type reachKey[S comparable] struct {
	s     S
	steps int
}

// Reacher computes exact-step reachable sets by divide and conquer:
// reach(s, n) = reach(reach(s, n/2), n - n/2). Every (state, steps) pair it
// resolves is memoized, and the same remaining step counts recur across
// branches, so one Reacher should be reused for repeated queries over the
// same neighbor function and discarded afterwards.
type Reacher[S comparable] struct {
	neighbors func(S) []S
	memo      map[reachKey[S]]mapset.Set[S]
}

func NewReacher[S comparable](neighbors func(S) []S) *Reacher[S] {
	return &Reacher[S]{
		neighbors: neighbors,
		memo:      make(map[reachKey[S]]mapset.Set[S]),
	}
}

// From returns the states reachable from s in exactly steps moves. The
// returned set is shared with the cache and must not be modified.
func (r *Reacher[S]) From(s S, steps int) mapset.Set[S] {
	switch {
	case steps < 0:
		panic(fmt.Sprintf("aoc: negative step count %d", steps))
	case steps == 0:
		return mapset.Of(s)
	}
	k := reachKey[S]{s, steps}
	if got, ok := r.memo[k]; ok {
		return got
	}
	var out mapset.Set[S]
	if steps == 1 {
		out = mapset.Of(r.neighbors(s)...)
	} else {
		half := steps / 2
		out = mapset.New[S]()
		r.From(s, half).Each(func(mid S) {
			r.From(mid, steps-half).Each(out.Put)
		})
	}
	r.memo[k] = out
	return out
}

// FromAll returns the union of From over starts as a new set.
func (r *Reacher[S]) FromAll(starts []S, steps int) mapset.Set[S] {
	out := mapset.New[S]()
	for _, s := range starts {
		r.From(s, steps).Each(out.Put)
	}
	return out
}

// CacheSize returns the number of memoized (state, steps) entries.
func (r *Reacher[S]) CacheSize() int {
	return len(r.memo)
}

// Reached flood-fills from starts and returns the number of moves to reach
// every reachable state.
func Reached[S comparable](starts []S, neighbors func(S) []S) map[S]int {
	dist := make(map[S]int, len(starts))
	var q Queue[S]
	for _, s := range starts {
		if _, ok := dist[s]; !ok {
			dist[s] = 0
			q.Push(s)
		}
	}
	q.While(func(s S) bool {
		for _, n := range neighbors(s) {
			if _, ok := dist[n]; ok {
				continue
			}
			dist[n] = dist[s] + 1
			q.Push(n)
		}
		return true
	})
	return dist
}
