package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jgriffin/aoc"
)

// DigStep is one line of a dig plan.
type DigStep struct {
	Dir   aoc.Direction
	N     int
	Color string
}

var digDirs = map[string]aoc.Direction{
	"U": aoc.Up,
	"R": aoc.Right,
	"D": aoc.Down,
	"L": aoc.Left,
}

func ParseDay18(input string) ([]DigStep, error) {
	var plan []DigStep
	for i, l := range aoc.Lines(input) {
		f := strings.Fields(l)
		if len(f) != 3 {
			return nil, fmt.Errorf("day 18: line %d: bad step %q", i+1, l)
		}
		d, ok := digDirs[f[0]]
		if !ok {
			return nil, fmt.Errorf("day 18: line %d: bad direction %q", i+1, f[0])
		}
		n, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("day 18: line %d: %w", i+1, err)
		}
		color := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
		if len(color) != 6 {
			return nil, fmt.Errorf("day 18: line %d: bad color %q", i+1, f[2])
		}
		plan = append(plan, DigStep{Dir: d, N: n, Color: color})
	}
	return plan, nil
}

// Decode reads the step hidden in the color: five hex digits of distance
// then one digit of direction, 0 to 3 meaning R D L U.
func (s DigStep) Decode() (DigStep, error) {
	n, err := strconv.ParseInt(s.Color[:5], 16, 64)
	if err != nil {
		return DigStep{}, fmt.Errorf("day 18: color %s: %w", s.Color, err)
	}
	var d aoc.Direction
	switch s.Color[5] {
	case '0':
		d = aoc.Right
	case '1':
		d = aoc.Down
	case '2':
		d = aoc.Left
	case '3':
		d = aoc.Up
	default:
		return DigStep{}, fmt.Errorf("day 18: color %s: bad direction digit", s.Color)
	}
	return DigStep{Dir: d, N: int(n), Color: s.Color}, nil
}

// LagoonSize returns the number of cubic meters dug out by the plan: the
// trench and everything it encloses.
func LagoonSize(plan []DigStep) int {
	var (
		p   aoc.Pt
		pts []aoc.Pt
	)
	for _, s := range plan {
		p = p.Add(s.Dir.Offset().Scale(s.N))
		pts = append(pts, p)
	}
	return aoc.PolygonBoundedPoints(pts)
}

func Day18Part1(plan []DigStep) int {
	return LagoonSize(plan)
}

func Day18Part2(plan []DigStep) (int, error) {
	decoded := make([]DigStep, len(plan))
	for i, s := range plan {
		d, err := s.Decode()
		if err != nil {
			return 0, err
		}
		decoded[i] = d
	}
	return LagoonSize(decoded), nil
}
