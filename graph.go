package aoc

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Graph is a directed graph with integer arc weights. Neighbors and Inputs
// are returned in the order arcs were added, so traversals are repeatable.
type Graph[K comparable] struct {
	Nodes map[K]bool
	// Edges[a][b] is the weight of the arc a->b.
	Edges map[K]map[K]int

	out map[K][]K
	in  map[K][]K
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	out.out = cloneAdj(g.out)
	out.in = cloneAdj(g.in)
	return &out
}

func cloneAdj[K comparable](m map[K][]K) map[K][]K {
	out := maps.Clone(m)
	for k, v := range out {
		out[k] = slices.Clone(v)
	}
	return out
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds or reweights the arc a->b.
func (g *Graph[K]) AddArc(a, b K, w int) {
	g.AddNode(a)
	g.AddNode(b)
	InitMap(&g.Edges)
	InitMap(&g.out)
	InitMap(&g.in)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if _, ok := g.Edges[a][b]; !ok {
		g.out[a] = append(g.out[a], b)
		g.in[b] = append(g.in[b], a)
	}
	g.Edges[a][b] = w
}

// AddEdge adds arcs in both directions.
func (g *Graph[K]) AddEdge(a, b K, w int) {
	g.AddArc(a, b, w)
	g.AddArc(b, a, w)
}

func (g *Graph[K]) RemoveArc(a, b K) {
	if _, ok := g.Edges[a][b]; !ok {
		return
	}
	delete(g.Edges[a], b)
	g.out[a] = slices.DeleteFunc(g.out[a], func(k K) bool { return k == b })
	g.in[b] = slices.DeleteFunc(g.in[b], func(k K) bool { return k == a })
}

func (g *Graph[K]) RemoveNode(a K) {
	for _, b := range slices.Clone(g.out[a]) {
		g.RemoveArc(a, b)
	}
	for _, b := range slices.Clone(g.in[a]) {
		g.RemoveArc(b, a)
	}
	delete(g.Edges, a)
	delete(g.out, a)
	delete(g.in, a)
	delete(g.Nodes, a)
}

// Neighbors returns the targets of a's outgoing arcs.
func (g *Graph[K]) Neighbors(a K) []K {
	return g.out[a]
}

// Inputs returns the sources of b's incoming arcs.
func (g *Graph[K]) Inputs(b K) []K {
	return g.in[b]
}

func (g *Graph[K]) Weight(a, b K) (int, bool) {
	w, ok := g.Edges[a][b]
	return w, ok
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for _, k := range g.out[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// ShortestPath returns the cheapest path from a to b by arc weight.
func (g *Graph[K]) ShortestPath(a, b K) ([]K, int, error) {
	r, err := Search[K]{
		Neighbors: g.Neighbors,
		Cost: func(from, to K) int {
			return g.Edges[from][to]
		},
		IsGoal: func(k K) bool { return k == b },
	}.Solve(a)
	if err != nil {
		return nil, 0, err
	}
	return r.Path, r.Cost, nil
}

// Loop is the result of FindLoop.
type Loop[S comparable] struct {
	// Path holds every state visited, in order, without repeats.
	Path []S
	// Start is the index in Path that the walk returned to, or -1 if it
	// reached a dead end instead.
	Start int
}

// Closed reports whether the walk ended by revisiting a state.
func (l Loop[S]) Closed() bool {
	return l.Start >= 0
}

// Cycle returns the states that form the loop, or nil for an open walk.
func (l Loop[S]) Cycle() []S {
	if !l.Closed() {
		return nil
	}
	return l.Path[l.Start:]
}

// FindLoop walks from start, asking next for the successor of cur given the
// state before it (on the first call prev == cur == start), until the walk
// revisits a state or next reports a dead end.
func FindLoop[S comparable](start S, next func(prev, cur S) (S, bool)) Loop[S] {
	index := map[S]int{start: 0}
	path := []S{start}
	prev, cur := start, start
	for {
		n, ok := next(prev, cur)
		if !ok {
			return Loop[S]{Path: path, Start: -1}
		}
		if i, seen := index[n]; seen {
			return Loop[S]{Path: path, Start: i}
		}
		index[n] = len(path)
		path = append(path, n)
		prev, cur = cur, n
	}
}
