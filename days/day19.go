package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jgriffin/aoc"
)

// Part ratings are indexed x, m, a, s.
const categories = "xmas"

// ratingRange is the span of every rating in part 2.
var ratingRange = aoc.Range{Lo: 1, Hi: 4001}

type Part [4]int

// Rule sends a part to Target when its rating in category Cat compares
// to Val by Op. An Op of 0 always matches.
type Rule struct {
	Cat    int
	Op     byte
	Val    int
	Target string
}

func (r Rule) matches(v int) bool {
	switch r.Op {
	case '<':
		return v < r.Val
	case '>':
		return v > r.Val
	}
	return true
}

// boundary is where the outcome of the comparison flips.
func (r Rule) boundary() int {
	if r.Op == '>' {
		return r.Val + 1
	}
	return r.Val
}

type Workflows map[string][]Rule

type Sorting struct {
	Workflows Workflows
	Parts     []Part
}

func ParseDay19(input string) (Sorting, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 {
		return Sorting{}, fmt.Errorf("day 19: got %d sections, want 2", len(blocks))
	}
	s := Sorting{Workflows: make(Workflows)}
	for _, l := range aoc.Lines(blocks[0]) {
		name, body, ok := strings.Cut(strings.TrimSuffix(l, "}"), "{")
		if !ok {
			return Sorting{}, fmt.Errorf("day 19: bad workflow %q", l)
		}
		for _, rs := range strings.Split(body, ",") {
			r, err := parseRule(rs)
			if err != nil {
				return Sorting{}, fmt.Errorf("day 19: workflow %s: %w", name, err)
			}
			s.Workflows[name] = append(s.Workflows[name], r)
		}
	}
	for _, l := range aoc.Lines(blocks[1]) {
		f := aoc.Fields(l)
		if len(f) != 4 {
			return Sorting{}, fmt.Errorf("day 19: bad part %q", l)
		}
		s.Parts = append(s.Parts, Part(f))
	}
	return s, nil
}

func parseRule(s string) (Rule, error) {
	cond, target, ok := strings.Cut(s, ":")
	if !ok {
		return Rule{Target: s}, nil
	}
	if len(cond) < 3 {
		return Rule{}, fmt.Errorf("bad rule %q", s)
	}
	cat := strings.IndexByte(categories, cond[0])
	if cat < 0 {
		return Rule{}, fmt.Errorf("bad category in %q", s)
	}
	if cond[1] != '<' && cond[1] != '>' {
		return Rule{}, fmt.Errorf("bad comparison in %q", s)
	}
	v, err := strconv.Atoi(cond[2:])
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", s, err)
	}
	return Rule{Cat: cat, Op: cond[1], Val: v, Target: target}, nil
}

// Accepted runs p through the workflows starting at "in".
func (w Workflows) Accepted(p Part) bool {
	name := "in"
	for {
		switch name {
		case "A":
			return true
		case "R":
			return false
		}
		next := "R"
		for _, r := range w[name] {
			if r.matches(p[r.Cat]) {
				next = r.Target
				break
			}
		}
		name = next
	}
}

// partRanges is a box of parts, one rating range per category.
type partRanges [4]aoc.Range

func (pr partRanges) count() int {
	n := 1
	for _, r := range pr {
		n *= r.Len()
	}
	return n
}

// AcceptedCount returns how many distinct parts with every rating in
// ratingRange the workflows accept. Boxes of parts are split at each rule
// boundary so every piece follows a single route.
func (w Workflows) AcceptedCount() int {
	type item struct {
		parts    partRanges
		workflow string
	}
	total := 0
	var stack aoc.Stack[item]
	route := func(pr partRanges, target string) {
		switch target {
		case "A":
			total += pr.count()
		case "R":
		default:
			stack.Push(item{pr, target})
		}
	}
	route(partRanges{ratingRange, ratingRange, ratingRange, ratingRange}, "in")
	stack.While(func(it item) bool {
		rest := it.parts
		for _, r := range w[it.workflow] {
			if r.Op == 0 {
				route(rest, r.Target)
				return true
			}
			var unmatched []partRanges
			for _, piece := range aoc.SplitRange(rest[r.Cat], r.boundary()) {
				pr := rest
				pr[r.Cat] = piece
				if r.matches(piece.Lo) {
					route(pr, r.Target)
				} else {
					unmatched = append(unmatched, pr)
				}
			}
			if len(unmatched) == 0 {
				return true
			}
			rest = unmatched[0]
		}
		return true
	})
	return total
}

func Day19Part1(s Sorting) int {
	total := 0
	for _, p := range s.Parts {
		if s.Workflows.Accepted(p) {
			total += aoc.Sum(p[:]...)
		}
	}
	return total
}

func Day19Part2(s Sorting) int {
	return s.Workflows.AcceptedCount()
}
