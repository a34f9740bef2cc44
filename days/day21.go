package days

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jgriffin/aoc"
)

// gardenSteps is the step count of part 2.
const gardenSteps = 26501365

// Garden is a map of garden plots '.' and rocks '#' with a start plot.
type Garden struct {
	Grid  aoc.Grid[rune]
	Start aoc.Pt
}

func ParseDay21(input string) (Garden, error) {
	lines := aoc.Lines(input)
	for y, l := range lines {
		if i := strings.IndexFunc(l, func(r rune) bool {
			return r != '.' && r != '#' && r != 'S'
		}); i >= 0 {
			return Garden{}, fmt.Errorf("day 21: line %d: bad tile %q", y+1, l[i])
		}
	}
	g := Garden{Grid: aoc.ParseGrid(lines, func(r rune) rune { return r })}
	start, ok := g.Grid.Find(func(r rune) bool { return r == 'S' })
	if !ok {
		return Garden{}, errors.New("day 21: no start plot")
	}
	g.Start = start
	return g, nil
}

func isPlot(r rune) bool {
	return r != '#'
}

func (g Garden) Rocks() int {
	return g.Grid.Count(func(r rune) bool { return !isPlot(r) })
}

// Reachable returns the number of plots reachable in exactly steps steps
// within the map.
func (g Garden) Reachable(steps int) int {
	return aoc.ReachableAfter([]aoc.Pt{g.Start}, g.Grid.Stepper(aoc.Orthogonal, isPlot), steps).Size()
}

// ReachableTiled is Reachable on the map repeated infinitely in every
// direction.
func (g Garden) ReachableTiled(steps int) int {
	return aoc.ReachableAfter([]aoc.Pt{g.Start}, g.Grid.TorusStepper(aoc.Orthogonal, isPlot), steps).Size()
}

// ReachableTiledDivided is ReachableTiled computed by halving the step
// count.
func (g Garden) ReachableTiledDivided(steps int) int {
	return aoc.ReachableAfterDivided([]aoc.Pt{g.Start}, g.Grid.TorusStepper(aoc.Orthogonal, isPlot), steps).Size()
}

func Day21Part1(g Garden, steps int) int {
	return g.Reachable(steps)
}

// Day21Part2 returns ReachableTiled(gardenSteps). On a square map with the
// start in the middle of a clear row and column, the count at
// rem + k*size steps is quadratic in k, so it is extrapolated from the
// first three values.
func Day21Part2(g Garden) (int, error) {
	size := g.Grid.Size()
	if size.X != size.Y || g.Start != (aoc.Pt{X: size.X / 2, Y: size.Y / 2}) {
		return 0, fmt.Errorf("day 21: need a square map with a centered start, got %v start %v", size, g.Start)
	}
	n := size.X
	rem, k := gardenSteps%n, gardenSteps/n
	seq := []int{
		g.ReachableTiled(rem),
		g.ReachableTiled(rem + n),
		g.ReachableTiled(rem + 2*n),
	}
	for i := 3; i <= k; i++ {
		seq = append(seq[1:], aoc.Extrapolate(seq, true))
	}
	return seq[min(k, 2)], nil
}
