package days

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jgriffin/aoc"
)

// pipeOffsets lists the two directions each pipe tile connects. The start
// tile hides its pipe, so it may connect anywhere.
var pipeOffsets = map[rune][]aoc.Pt{
	'|': {{0, -1}, {0, 1}},
	'-': {{-1, 0}, {1, 0}},
	'L': {{0, -1}, {1, 0}},
	'J': {{0, -1}, {-1, 0}},
	'7': {{0, 1}, {-1, 0}},
	'F': {{0, 1}, {1, 0}},
	'.': nil,
	'S': aoc.Orthogonal,
}

func tileOffsets(r rune) []aoc.Pt {
	return pipeOffsets[r]
}

// PipeMaze is a field of pipes with one start tile.
type PipeMaze struct {
	Grid  aoc.Grid[rune]
	Start aoc.Pt
}

func ParseDay10(input string) (PipeMaze, error) {
	var m PipeMaze
	for y, l := range aoc.Lines(input) {
		if i := strings.IndexFunc(l, func(r rune) bool {
			_, ok := pipeOffsets[r]
			return !ok
		}); i >= 0 {
			return PipeMaze{}, fmt.Errorf("day 10: line %d: bad tile %q", y+1, l[i])
		}
	}
	m.Grid = aoc.ParseGrid(aoc.Lines(input), func(r rune) rune { return r })
	start, ok := m.Grid.Find(func(r rune) bool { return r == 'S' })
	if !ok {
		return PipeMaze{}, errors.New("day 10: no start tile")
	}
	m.Start = start
	return m, nil
}

// connected returns the tiles that p connects to and that connect back.
func (m PipeMaze) connected(p aoc.Pt) []aoc.Pt {
	var out []aoc.Pt
	for _, n := range m.Grid.TileNeighbors(p, tileOffsets) {
		if slices.Contains(m.Grid.TileNeighbors(n, tileOffsets), p) {
			out = append(out, n)
		}
	}
	return out
}

// Loop returns the tiles of the pipe loop through the start tile, in walk
// order beginning at the start.
func (m PipeMaze) Loop() ([]aoc.Pt, error) {
	for _, first := range m.connected(m.Start) {
		l := aoc.FindLoop(m.Start, func(prev, cur aoc.Pt) (aoc.Pt, bool) {
			if cur == m.Start {
				return first, true
			}
			for _, n := range m.connected(cur) {
				if n != prev {
					return n, true
				}
			}
			return aoc.Pt{}, false
		})
		if l.Closed() && l.Start == 0 {
			return l.Path, nil
		}
	}
	return nil, errors.New("day 10: start tile is not on a loop")
}

// Day10Part1 returns the number of steps to the tile farthest along the loop.
func Day10Part1(m PipeMaze) (int, error) {
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

// Day10Part2 returns the number of tiles enclosed by the loop.
func Day10Part2(m PipeMaze) (int, error) {
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return aoc.PolygonInteriorPoints(loop), nil
}
