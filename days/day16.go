package days

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jgriffin/aoc"
)

// Contraption is a grid of empty space '.', mirrors '/' '\' and
// splitters '|' '-'.
type Contraption = aoc.Grid[rune]

func ParseDay16(input string) (Contraption, error) {
	lines := aoc.Lines(input)
	for y, l := range lines {
		if i := strings.IndexFunc(l, func(r rune) bool {
			return !strings.ContainsRune(`./\|-`, r)
		}); i >= 0 {
			return nil, fmt.Errorf("day 16: line %d: bad tile %q", y+1, l[i])
		}
	}
	return aoc.ParseGrid(lines, func(r rune) rune { return r }), nil
}

// deflect returns the headings of a beam leaving tile r when it entered
// heading d.
func deflect(r rune, d aoc.Direction) []aoc.Direction {
	switch r {
	case '/':
		switch d {
		case aoc.Right:
			return []aoc.Direction{aoc.Up}
		case aoc.Up:
			return []aoc.Direction{aoc.Right}
		case aoc.Left:
			return []aoc.Direction{aoc.Down}
		default:
			return []aoc.Direction{aoc.Left}
		}
	case '\\':
		switch d {
		case aoc.Right:
			return []aoc.Direction{aoc.Down}
		case aoc.Down:
			return []aoc.Direction{aoc.Right}
		case aoc.Left:
			return []aoc.Direction{aoc.Up}
		default:
			return []aoc.Direction{aoc.Left}
		}
	case '|':
		if d == aoc.Left || d == aoc.Right {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if d == aoc.Up || d == aoc.Down {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{d}
}

func beamStepper(g Contraption) func(aoc.Path) []aoc.Path {
	return func(p aoc.Path) []aoc.Path {
		var out []aoc.Path
		for _, d := range deflect(g.At(p.Pt), p.Dir) {
			if n, ok := g.Move(aoc.Path{Pt: p.Pt, Dir: d}); ok {
				out = append(out, n)
			}
		}
		return out
	}
}

// Energized returns the number of tiles a beam entering at start passes
// through.
func Energized(g Contraption, start aoc.Path) int {
	tiles := make(map[aoc.Pt]bool)
	for p := range aoc.Reached([]aoc.Path{start}, beamStepper(g)) {
		tiles[p.Pt] = true
	}
	return len(tiles)
}

func Day16Part1(g Contraption) int {
	return Energized(g, aoc.Path{Pt: aoc.Pt{}, Dir: aoc.Right})
}

// Day16Part2 returns the most tiles energized by a beam entering from any
// edge tile.
func Day16Part2(g Contraption) int {
	counts := aoc.Parallel(g.EdgePaths(), func(p aoc.Path) int {
		return Energized(g, p)
	})
	return slices.Max(counts)
}
