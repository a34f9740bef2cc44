package aoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeGrid(lines ...string) Grid[rune] {
	return ParseGrid(lines, func(r rune) rune { return r })
}

func runeTile(r rune) rune { return r }

func TestParseGrid(t *testing.T) {
	g := runeGrid("abc", "", "def")
	assert.Equal(t, Pt{3, 2}, g.Size())
	assert.Equal(t, 'f', g.At(Pt{2, 1}))
	assert.Equal(t, "abc\ndef", g.Format(runeTile))
}

func TestGridBounds(t *testing.T) {
	g := MakeGrid[int](4, 3)
	pts := g.Points()
	require.Len(t, pts, 12)
	assert.Equal(t, Pt{0, 0}, pts[0])
	assert.Equal(t, Pt{1, 0}, pts[1])
	assert.Equal(t, Pt{3, 2}, pts[11])
	for _, p := range pts {
		assert.True(t, g.InBounds(p), "%v", p)
		assert.NotPanics(t, func() { g.At(p) })
	}
	for _, p := range []Pt{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		assert.False(t, g.InBounds(p), "%v", p)
		_, ok := g.AtOk(p)
		assert.False(t, ok)
	}
}

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := MakeGrid[int](2, 2)
	err := recoverError(func() { g.At(Pt{2, 0}) })
	assert.True(t, errors.Is(err, ErrOutOfBounds), "At: %v", err)
	err = recoverError(func() { g.Set(Pt{0, -1}, 1) })
	assert.True(t, errors.Is(err, ErrOutOfBounds), "Set: %v", err)
}

func TestFindCount(t *testing.T) {
	g := runeGrid("..#", "#S.")
	p, ok := g.Find(func(r rune) bool { return r == 'S' })
	assert.True(t, ok)
	assert.Equal(t, Pt{1, 1}, p)
	p, ok = g.Find(func(r rune) bool { return r == '#' })
	assert.True(t, ok)
	assert.Equal(t, Pt{2, 0}, p, "row-major order")
	_, ok = g.Find(func(r rune) bool { return r == 'x' })
	assert.False(t, ok)
	assert.Equal(t, 2, g.Count(func(r rune) bool { return r == '#' }))
}

func TestTileNeighbors(t *testing.T) {
	g := runeGrid("-|", "..")
	offsets := func(r rune) []Pt {
		switch r {
		case '-':
			return []Pt{{-1, 0}, {1, 0}}
		case '|':
			return []Pt{{0, -1}, {0, 1}}
		}
		return nil
	}
	assert.Equal(t, []Pt{{1, 0}}, g.TileNeighbors(Pt{0, 0}, offsets))
	assert.Equal(t, []Pt{{1, 1}}, g.TileNeighbors(Pt{1, 0}, offsets))
	assert.Empty(t, g.TileNeighbors(Pt{0, 1}, offsets))
	assert.Empty(t, g.TileNeighbors(Pt{5, 5}, offsets))
}

func TestStepper(t *testing.T) {
	g := runeGrid("..#", "...")
	open := func(r rune) bool { return r != '#' }
	step := g.Stepper(Orthogonal, open)
	assert.Equal(t, []Pt{{1, 1}, {0, 0}}, step(Pt{1, 0}))
	assert.Equal(t, []Pt{{1, 1}}, step(Pt{2, 1}))
	assert.Empty(t, step(Pt{5, 5}))

	torus := g.TorusStepper(Orthogonal, open)
	// (2,0) is a rock, so moving right from (1,0) is blocked, while up
	// wraps onto (1,1).
	assert.Equal(t, []Pt{{1, -1}, {1, 1}, {0, 0}}, torus(Pt{1, 0}))
	assert.Equal(t, []Pt{{3, 0}, {4, 1}, {3, 2}, {2, 1}}, torus(Pt{3, 1}))
}

func TestWrapPt(t *testing.T) {
	size := Pt{3, 2}
	tests := []struct {
		in, want Pt
	}{
		{Pt{1, 1}, Pt{1, 1}},
		{Pt{3, 0}, Pt{0, 0}},
		{Pt{-1, -1}, Pt{2, 1}},
		{Pt{-4, 5}, Pt{2, 1}},
		{Pt{7, -2}, Pt{1, 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WrapPt(tt.in, size), "%v", tt.in)
	}
}

func TestCloneAndHash(t *testing.T) {
	g := runeGrid("ab", "cd")
	c := g.Clone()
	assert.Equal(t, g.Hash(), c.Hash())

	c.Set(Pt{0, 0}, 'z')
	assert.Equal(t, 'a', g.At(Pt{0, 0}), "clone shares no rows")
	assert.NotEqual(t, g.Hash(), c.Hash())

	ints := MakeGrid[int](2, 2)
	assert.Equal(t, ints.Hash(), MakeGrid[int](2, 2).Hash())
}

func TestRotateClockwise(t *testing.T) {
	g := runeGrid("ab", "cd", "ef")
	r := g.RotateClockwise()
	assert.Equal(t, Pt{3, 2}, r.Size())
	assert.Equal(t, "eca\nfdb", r.Format(runeTile))

	full := g
	for range 4 {
		full = full.RotateClockwise()
	}
	assert.Equal(t, g, full)
}

func TestDirections(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Turn(true).Turn(false))
		assert.Equal(t, d.Reverse(), d.Turn(true).Turn(true))
		assert.Equal(t, Pt{}, d.Offset().Add(d.Reverse().Offset()))
	}
	assert.Equal(t, Right, Up.Turn(true))
	assert.Equal(t, Left, Up.Turn(false))
	assert.Equal(t, Pt{0, -1}, Up.Offset())
	assert.Equal(t, "^>v<", Up.String()+Right.String()+Down.String()+Left.String())
}

func TestMoveAndEdgePaths(t *testing.T) {
	g := MakeGrid[int](3, 2)
	p, ok := g.Move(Path{Pt{0, 0}, Right})
	assert.True(t, ok)
	assert.Equal(t, Path{Pt{1, 0}, Right}, p)
	_, ok = g.Move(Path{Pt{0, 0}, Up})
	assert.False(t, ok)

	edges := g.EdgePaths()
	assert.Len(t, edges, 2*(3+2))
	for _, e := range edges {
		assert.True(t, g.InBounds(e.Pt))
		_, ok := g.Move(Path{e.Pt, e.Dir.Reverse()})
		assert.False(t, ok, "%v enters from the border", e)
	}
}

func TestPt(t *testing.T) {
	p := Pt{2, 3}
	assert.Equal(t, Pt{3, 1}, p.Add(Pt{1, -2}))
	assert.Equal(t, Pt{1, 5}, p.Sub(Pt{1, -2}))
	assert.Equal(t, Pt{-4, -6}, p.Scale(-2))
	assert.Equal(t, 7, p.MDist(Pt{-1, -1}))
	assert.Equal(t, "(2,3)", p.String())

	// row first, then column
	assert.True(t, Pt{5, 0}.Less(Pt{0, 1}))
	assert.True(t, Pt{0, 1}.Less(Pt{1, 1}))
	assert.Equal(t, 0, p.Compare(Pt{2, 3}))

	assert.Len(t, p.Neighbors(AllDirections), 8)
	assert.Equal(t, []Pt{{2, 2}, {3, 3}, {2, 4}, {1, 3}}, p.Neighbors(Orthogonal))
}
