package aoc

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// ErrOutOfBounds is the panic value (wrapped) when a grid is indexed outside
// its bounds. It indicates a bug in the caller's offset logic.
var ErrOutOfBounds = errors.New("aoc: point out of bounds")

// Grid is a row-major 2D grid of tiles. g[y][x] is the tile at Pt{x, y}.
type Grid[T any] [][]T

// MakeGrid returns a zeroed grid with x columns and y rows.
func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid builds a grid from lines of text, converting each rune with tile.
// Blank lines are skipped.
func ParseGrid[T any](lines []string, tile func(rune) T) Grid[T] {
	var g Grid[T]
	for _, line := range lines {
		if line == "" {
			continue
		}
		row := make([]T, 0, len(line))
		for _, r := range line {
			row = append(row, tile(r))
		}
		g = append(g, row)
	}
	return g
}

// Size returns the number of columns as X and rows as Y.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// InBounds reports whether p lies within the grid.
func (g Grid[T]) InBounds(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

// At returns the tile at p. It panics if p is out of bounds; use AtOk or
// InBounds first when p may be outside the grid.
func (g Grid[T]) At(p Pt) T {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v in grid of size %v", ErrOutOfBounds, p, g.Size()))
	}
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v in grid of size %v", ErrOutOfBounds, p, g.Size()))
	}
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Points returns every coordinate of the grid in row-major order.
func (g Grid[T]) Points() []Pt {
	var out []Pt
	for y, row := range g {
		for x := range row {
			out = append(out, Pt{x, y})
		}
	}
	return out
}

// Find returns the first point in row-major order whose tile matches.
func (g Grid[T]) Find(match func(T) bool) (Pt, bool) {
	for y, row := range g {
		for x, v := range row {
			if match(v) {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

// Count returns the number of tiles that match.
func (g Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if match(v) {
				n++
			}
		}
	}
	return n
}

// TileNeighbors applies the offsets that the tile at p connects through and
// returns the in-bounds results. The tile to offsets mapping belongs to the
// caller (e.g. a pipe only connects in two directions).
func (g Grid[T]) TileNeighbors(p Pt, offsets func(T) []Pt) []Pt {
	v, ok := g.AtOk(p)
	if !ok {
		return nil
	}
	var out []Pt
	for _, n := range p.Neighbors(offsets(v)) {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Stepper returns a neighbor function for the reachability and search
// engines: the offsets from p that stay inside the grid and land on an open
// tile.
func (g Grid[T]) Stepper(offsets []Pt, open func(T) bool) func(Pt) []Pt {
	return func(p Pt) []Pt {
		var out []Pt
		for _, o := range offsets {
			n := p.Add(o)
			if v, ok := g.AtOk(n); ok && open(v) {
				out = append(out, n)
			}
		}
		return out
	}
}

// TorusStepper is like Stepper but treats the grid as one tile of an
// infinite plane: points outside the grid are wrapped with WrapPt before the
// open test, and the returned points are left unwrapped.
func (g Grid[T]) TorusStepper(offsets []Pt, open func(T) bool) func(Pt) []Pt {
	size := g.Size()
	return func(p Pt) []Pt {
		var out []Pt
		for _, o := range offsets {
			n := p.Add(o)
			w := WrapPt(n, size)
			if open(g[w.Y][w.X]) {
				out = append(out, n)
			}
		}
		return out
	}
}

// Clone returns a deep copy of the grid, for simulations that need a
// mutable snapshot.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for i, row := range g {
		out[i] = append([]T(nil), row...)
	}
	return out
}

var hashers sync.Map // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a hash of the grid contents. Equal grids hash equally, which
// makes it usable as a cycle detection key for grid states.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// RotateClockwise returns a new grid rotated a quarter turn clockwise, so the
// west edge becomes the north edge.
func (g Grid[T]) RotateClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for y, row := range g {
		for x, v := range row {
			out[x][size.Y-1-y] = v
		}
	}
	return out
}

// Format renders the grid one line per row.
func (g Grid[T]) Format(tile func(T) rune) string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			sb.WriteRune(tile(v))
		}
	}
	return sb.String()
}

// EdgePaths returns a path entering the grid from every border cell, headed
// inward.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false if that
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(p.Dir.Offset())
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = []Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Offset returns the unit step for d. Up decreases Y.
func (d Direction) Offset() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic(fmt.Sprintf("bad direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Offset sets for Pt.Neighbors.
var (
	// Orthogonal is the 4-neighborhood: up, right, down, left.
	Orthogonal = []Pt{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	// AllDirections is the 8-neighborhood in row-major order.
	AllDirections = []Pt{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

type Pt = Pt2[int]

// Pt2 is a 2D point. X is the column and Y the row.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

// Compare orders points by row, then column.
func (p Pt2[T]) Compare(q Pt2[T]) int {
	if c := cmp.Compare(p.Y, q.Y); c != 0 {
		return c
	}
	return cmp.Compare(p.X, q.X)
}

func (p Pt2[T]) Less(q Pt2[T]) bool {
	return p.Compare(q) < 0
}

// Neighbors returns p moved by each of the offsets, unfiltered.
func (p Pt2[T]) Neighbors(offsets []Pt2[T]) []Pt2[T] {
	out := make([]Pt2[T], len(offsets))
	for i, o := range offsets {
		out[i] = p.Add(o)
	}
	return out
}

// WrapPt maps p onto its equivalent inside a grid of the given size, as if
// the grid tiled the plane.
func WrapPt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
