package days

import (
	"fmt"
	"strings"

	"github.com/jgriffin/aoc"
)

// Platform is a grid of round rocks 'O', cube rocks '#' and empty space.
type Platform = aoc.Grid[byte]

// spinCycles is the number of spin cycles in part 2.
const spinCycles = 1_000_000_000

func ParseDay14(input string) (Platform, error) {
	lines := aoc.Lines(input)
	for y, l := range lines {
		if i := strings.IndexFunc(l, func(r rune) bool {
			return r != 'O' && r != '#' && r != '.'
		}); i >= 0 {
			return nil, fmt.Errorf("day 14: line %d: bad tile %q", y+1, l[i])
		}
	}
	return aoc.ParseGrid(lines, func(r rune) byte { return byte(r) }), nil
}

// tiltNorth rolls every round rock north in place.
func tiltNorth(g Platform) {
	size := g.Size()
	for x := range size.X {
		free := 0
		for y := range size.Y {
			switch g[y][x] {
			case '#':
				free = y + 1
			case 'O':
				g[y][x] = '.'
				g[free][x] = 'O'
				free++
			}
		}
	}
}

// TiltNorth returns a copy of g with every round rock rolled north.
func TiltNorth(g Platform) Platform {
	out := g.Clone()
	tiltNorth(out)
	return out
}

// Spin tilts a copy of g north, west, south and east in turn.
func Spin(g Platform) Platform {
	out := g.Clone()
	for range 4 {
		tiltNorth(out)
		out = out.RotateClockwise()
	}
	return out
}

// NorthLoad weighs each round rock by its distance from the south edge.
func NorthLoad(g Platform) int {
	rows := g.Size().Y
	load := 0
	for y, row := range g {
		for _, v := range row {
			if v == 'O' {
				load += rows - y
			}
		}
	}
	return load
}

func formatPlatform(g Platform) string {
	return g.Format(func(b byte) rune { return rune(b) })
}

func Day14Part1(g Platform) int {
	return NorthLoad(TiltNorth(g))
}

// Day14Part2 returns the north load after a billion spin cycles.
func Day14Part2(g Platform) (int, error) {
	c, err := aoc.DetectCycleFunc(g, Spin, Platform.Hash, NorthLoad, 10_000)
	if err != nil {
		return 0, fmt.Errorf("day 14: %w", err)
	}
	return c.ValueAt(spinCycles), nil
}
