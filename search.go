package aoc

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoPath is returned when a search exhausts its frontier without reaching
// a goal.
var ErrNoPath = errors.New("aoc: no path found")

// Search is a best-first (A*) search over an implicit state graph.
//
// States are popped in order of cost so far plus Heuristic. With an
// admissible heuristic the first goal popped is reached at minimal cost; a
// nil Heuristic degrades to uniform-cost search (Dijkstra).
type Search[S comparable] struct {
	// Neighbors returns the states reachable from s in one move.
	Neighbors func(s S) []S
	// Cost returns the non-negative cost of moving from one state to a
	// neighbor. Nil means every move costs 1.
	Cost func(from, to S) int
	// Heuristic returns a lower bound on the remaining cost to a goal.
	Heuristic func(s S) int
	// IsGoal reports whether s ends the search.
	IsGoal func(s S) bool
}

// Result is a path found by Search.
type Result[S comparable] struct {
	// Path runs from a start state to the goal, inclusive.
	Path []S
	// Cost is the total cost of Path.
	Cost int
	// Expanded is the number of states popped from the frontier.
	Expanded int
}

// Goal returns the last state of the path.
func (r Result[S]) Goal() S {
	return r.Path[len(r.Path)-1]
}

// Solve searches from the given start states (at least one), all of which
// begin with cost 0. It returns ErrNoPath if no goal is reachable.
//
// Ties in priority are broken by insertion order, so a search over the same
// graph always yields the same path.
func (s Search[S]) Solve(starts ...S) (Result[S], error) {
	if len(starts) == 0 {
		panic("aoc: Search.Solve needs a start state")
	}
	cost := s.Cost
	if cost == nil {
		cost = func(S, S) int { return 1 }
	}
	h := s.Heuristic
	if h == nil {
		h = func(S) int { return 0 }
	}

	var (
		best  = make(map[S]int)     // lowest known cost to reach a state
		prev  = make(map[S]S)       // back-pointers along the best path
		items = make(map[S]*PQI[S]) // frontier entry of each queued state
		front = MinQueue[S]()
	)
	push := func(st S, g int) {
		best[st] = g
		p := g + h(st)
		if it, ok := items[st]; ok && it.Index() != -1 {
			it.P = p
			front.Update(it)
			return
		}
		it := &PQI[S]{V: st, P: p}
		items[st] = it
		front.Push(it)
	}
	for _, st := range starts {
		if _, ok := best[st]; !ok {
			push(st, 0)
		}
	}

	expanded := 0
	for front.Len() > 0 {
		cur := front.Pop().V
		expanded++
		g := best[cur]
		if s.IsGoal(cur) {
			return Result[S]{
				Path:     backtrack(prev, cur),
				Cost:     g,
				Expanded: expanded,
			}, nil
		}
		for _, n := range s.Neighbors(cur) {
			c := cost(cur, n)
			if c < 0 {
				panic(fmt.Sprintf("aoc: negative cost %d from %v to %v", c, cur, n))
			}
			ng := g + c
			if old, ok := best[n]; ok && old <= ng {
				continue
			}
			prev[n] = cur
			push(n, ng)
		}
	}
	return Result[S]{Expanded: expanded}, ErrNoPath
}

func backtrack[S comparable](prev map[S]S, goal S) []S {
	path := []S{goal}
	for {
		p, ok := prev[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, p)
	}
	slices.Reverse(path)
	return path
}

// SolvePath runs a Search from start and returns the path and its total
// cost, or ErrNoPath.
func SolvePath[S comparable](
	start S,
	isGoal func(S) bool,
	neighbors func(S) []S,
	cost func(from, to S) int,
	heuristic func(S) int,
) ([]S, int, error) {
	r, err := Search[S]{
		Neighbors: neighbors,
		Cost:      cost,
		Heuristic: heuristic,
		IsGoal:    isGoal,
	}.Solve(start)
	if err != nil {
		return nil, 0, err
	}
	return r.Path, r.Cost, nil
}
