package days

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jgriffin/aoc"
)

// Almanac is the seed list and the chain of maps from seed to location.
type Almanac struct {
	Seeds []int
	Maps  aoc.Chain
}

func ParseDay05(input string) (Almanac, error) {
	blocks := aoc.Blocks(input)
	seeds, ok := strings.CutPrefix(blocks[0], "seeds:")
	if !ok {
		return Almanac{}, fmt.Errorf("day 05: missing seeds line: %q", blocks[0])
	}
	a := Almanac{Seeds: aoc.Fields(seeds)}
	for _, b := range blocks[1:] {
		lines := aoc.Lines(b)
		name, ok := strings.CutSuffix(lines[0], " map:")
		if !ok {
			return Almanac{}, fmt.Errorf("day 05: bad map header %q", lines[0])
		}
		m := aoc.RangeMap{Name: name}
		for _, l := range lines[1:] {
			f := aoc.Fields(l)
			if len(f) != 3 {
				return Almanac{}, fmt.Errorf("day 05: %s: bad rule %q", name, l)
			}
			m.Rules = append(m.Rules, aoc.MapRule{
				Src: aoc.Span(f[1], f[2]),
				Dst: f[0],
			})
		}
		a.Maps = append(a.Maps, m)
	}
	return a, nil
}

// Location maps a seed through every map.
func (a Almanac) Location(seed int) int {
	return a.Maps.Apply(seed)
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a Almanac) SeedRanges() []aoc.Range {
	var out []aoc.Range
	for s := range slices.Chunk(a.Seeds, 2) {
		if len(s) == 2 {
			out = append(out, aoc.Span(s[0], s[1]))
		}
	}
	return out
}

// LocationRanges maps whole seed ranges to location ranges.
func (a Almanac) LocationRanges() []aoc.Range {
	return a.Maps.ApplyRanges(a.SeedRanges())
}

// Day05Part1 returns the lowest location of any listed seed.
func Day05Part1(a Almanac) int {
	lowest := -1
	for _, s := range a.Seeds {
		if l := a.Location(s); lowest < 0 || l < lowest {
			lowest = l
		}
	}
	return lowest
}

// Day05Part2 returns the lowest location of any seed in the seed ranges.
func Day05Part2(a Almanac) int {
	lowest := -1
	for _, r := range a.LocationRanges() {
		if lowest < 0 || r.Lo < lowest {
			lowest = r.Lo
		}
	}
	return lowest
}
