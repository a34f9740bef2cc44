package days

import (
	"testing"

	"github.com/jgriffin/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day21Sample = `...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
`

func TestDay21(t *testing.T) {
	g, err := ParseDay21(day21Sample)
	require.NoError(t, err)
	assert.Equal(t, 40, g.Rocks())
	assert.Equal(t, aoc.Pt{X: 5, Y: 5}, g.Start)
	assert.Equal(t, 16, Day21Part1(g, 6))
}

func TestDay21Tiled(t *testing.T) {
	g, err := ParseDay21(day21Sample)
	require.NoError(t, err)
	tests := []struct {
		steps int
		want  int
	}{
		{6, 16},
		{10, 50},
		{50, 1594},
		{100, 6536},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.ReachableTiled(tt.steps), "%d steps", tt.steps)
	}
}

func TestDay21DividedMatchesDirect(t *testing.T) {
	g, err := ParseDay21(day21Sample)
	require.NoError(t, err)
	for n := range 21 {
		assert.Equal(t, g.ReachableTiled(n), g.ReachableTiledDivided(n), "%d steps", n)
	}
}

func TestDay21Part2NeedsCenteredStart(t *testing.T) {
	g, err := ParseDay21("S..\n...\n")
	require.NoError(t, err)
	_, err = Day21Part2(g)
	assert.Error(t, err)
}

func TestParseDay21Errors(t *testing.T) {
	_, err := ParseDay21("...\n...\n")
	assert.Error(t, err)
	_, err = ParseDay21(".S.\n.?.\n")
	assert.Error(t, err)
}
