package days

import (
	"testing"

	"github.com/jgriffin/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day16Sample = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func TestDay16(t *testing.T) {
	g, err := ParseDay16(day16Sample)
	require.NoError(t, err)
	assert.Equal(t, 46, Day16Part1(g))
	assert.Equal(t, 51, Day16Part2(g))
	assert.Equal(t, 51, Energized(g, aoc.Path{Pt: aoc.Pt{X: 3, Y: 0}, Dir: aoc.Down}))
}

func TestDeflect(t *testing.T) {
	tests := []struct {
		tile rune
		in   aoc.Direction
		want []aoc.Direction
	}{
		{'.', aoc.Left, []aoc.Direction{aoc.Left}},
		{'/', aoc.Right, []aoc.Direction{aoc.Up}},
		{'/', aoc.Down, []aoc.Direction{aoc.Left}},
		{'\\', aoc.Right, []aoc.Direction{aoc.Down}},
		{'\\', aoc.Up, []aoc.Direction{aoc.Left}},
		{'|', aoc.Right, []aoc.Direction{aoc.Up, aoc.Down}},
		{'|', aoc.Up, []aoc.Direction{aoc.Up}},
		{'-', aoc.Down, []aoc.Direction{aoc.Left, aoc.Right}},
		{'-', aoc.Left, []aoc.Direction{aoc.Left}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deflect(tt.tile, tt.in), "%c %v", tt.tile, tt.in)
	}
}

func TestParseDay16Error(t *testing.T) {
	_, err := ParseDay16("..\n.x\n")
	assert.Error(t, err)
}
