package aoc

import (
	"fmt"
	"slices"
)

// Range is the half-open integer interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Span returns the range of n integers starting at lo.
func Span(lo, n int) Range {
	return Range{lo, lo + n}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi)
}

func (r Range) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

func (r Range) Empty() bool {
	return r.Hi <= r.Lo
}

func (r Range) Contains(v int) bool {
	return r.Lo <= v && v < r.Hi
}

// Intersect returns the overlap of r and o, which may be empty.
func (r Range) Intersect(o Range) Range {
	out := Range{max(r.Lo, o.Lo), min(r.Hi, o.Hi)}
	if out.Hi < out.Lo {
		out.Hi = out.Lo
	}
	return out
}

func (r Range) Shift(d int) Range {
	return Range{r.Lo + d, r.Hi + d}
}

// SplitRange cuts r at every boundary that lies strictly inside it. The
// pieces are sorted, non-empty and disjoint, and their union is r; each one
// lies wholly on one side of every boundary. An empty r yields no pieces.
func SplitRange(r Range, boundaries ...int) []Range {
	if r.Empty() {
		return nil
	}
	var cuts []int
	for _, b := range boundaries {
		if r.Lo < b && b < r.Hi {
			cuts = append(cuts, b)
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	out := make([]Range, 0, len(cuts)+1)
	lo := r.Lo
	for _, c := range cuts {
		out = append(out, Range{lo, c})
		lo = c
	}
	return append(out, Range{lo, r.Hi})
}

// SplitRanges applies SplitRange to each of rs.
func SplitRanges(rs []Range, boundaries ...int) []Range {
	var out []Range
	for _, r := range rs {
		out = append(out, SplitRange(r, boundaries...)...)
	}
	return out
}

// MapRule shifts the values of Src so that Src.Lo lands on Dst.
type MapRule struct {
	Src Range
	Dst int
}

func (m MapRule) Delta() int {
	return m.Dst - m.Src.Lo
}

// RangeMap is a piecewise-linear transform: a value covered by a rule is
// shifted by that rule, any other value maps to itself. The first matching
// rule wins.
type RangeMap struct {
	Name  string
	Rules []MapRule
}

// Apply maps a single value.
func (m RangeMap) Apply(v int) int {
	return v + m.delta(v)
}

func (m RangeMap) delta(v int) int {
	for _, r := range m.Rules {
		if r.Src.Contains(v) {
			return r.Delta()
		}
	}
	return 0
}

// Boundaries returns the ends of every rule's source range.
func (m RangeMap) Boundaries() []int {
	out := make([]int, 0, 2*len(m.Rules))
	for _, r := range m.Rules {
		out = append(out, r.Src.Lo, r.Src.Hi)
	}
	return out
}

// ApplyRange maps every value of r without enumerating them: r is split at
// the rule boundaries and each piece, being uniformly covered, is shifted as
// a whole.
func (m RangeMap) ApplyRange(r Range) []Range {
	pieces := SplitRange(r, m.Boundaries()...)
	for i, p := range pieces {
		pieces[i] = p.Shift(m.delta(p.Lo))
	}
	return pieces
}

// Chain is a sequence of maps applied in order.
type Chain []RangeMap

func (c Chain) Apply(v int) int {
	for _, m := range c {
		v = m.Apply(v)
	}
	return v
}

// ApplyRanges maps each of rs through every map in the chain.
func (c Chain) ApplyRanges(rs []Range) []Range {
	for _, m := range c {
		var next []Range
		for _, r := range rs {
			next = append(next, m.ApplyRange(r)...)
		}
		rs = next
	}
	return rs
}
