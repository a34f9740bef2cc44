package days

import (
	"fmt"
	"strings"

	"github.com/jgriffin/aoc"
)

// HeatMap holds the heat lost entering each city block.
type HeatMap = aoc.Grid[int]

func ParseDay17(input string) (HeatMap, error) {
	lines := aoc.Lines(input)
	for y, l := range lines {
		if i := strings.IndexFunc(l, func(r rune) bool {
			return r < '0' || r > '9'
		}); i >= 0 {
			return nil, fmt.Errorf("day 17: line %d: bad block %q", y+1, l[i])
		}
	}
	return aoc.ParseGrid(lines, aoc.Digit), nil
}

// crucible is a search state: the block a straight run ended on and the
// heading of that run. The next run must turn.
type crucible struct {
	Pt  aoc.Pt
	Dir aoc.Direction
}

// MinHeatLoss returns the least heat lost moving a crucible from the top
// left block to the bottom right one, when each straight run must cover
// between minRun and maxRun blocks.
func MinHeatLoss(g HeatMap, minRun, maxRun int) (int, error) {
	end := g.Size().Sub(aoc.Pt{X: 1, Y: 1})
	r, err := aoc.Search[crucible]{
		Neighbors: func(c crucible) []crucible {
			var out []crucible
			for _, d := range []aoc.Direction{c.Dir.Turn(false), c.Dir.Turn(true)} {
				p := c.Pt
				for k := 1; k <= maxRun; k++ {
					p = p.Add(d.Offset())
					if !g.InBounds(p) {
						break
					}
					if k >= minRun {
						out = append(out, crucible{p, d})
					}
				}
			}
			return out
		},
		Cost: func(from, to crucible) int {
			heat := 0
			step := to.Dir.Offset()
			for p := from.Pt; p != to.Pt; {
				p = p.Add(step)
				heat += g.At(p)
			}
			return heat
		},
		Heuristic: func(c crucible) int {
			return c.Pt.MDist(end)
		},
		IsGoal: func(c crucible) bool {
			return c.Pt == end
		},
	}.Solve(
		crucible{aoc.Pt{}, aoc.Right},
		crucible{aoc.Pt{}, aoc.Down},
	)
	if err != nil {
		return 0, fmt.Errorf("day 17: %w", err)
	}
	return r.Cost, nil
}

func Day17Part1(g HeatMap) (int, error) {
	return MinHeatLoss(g, 1, 3)
}

// Day17Part2 moves an ultra crucible, which runs 4 to 10 blocks.
func Day17Part2(g HeatMap) (int, error) {
	return MinHeatLoss(g, 4, 10)
}
