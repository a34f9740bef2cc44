package days

import (
	"testing"

	"github.com/jgriffin/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day18Sample = `R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
`

func TestDay18(t *testing.T) {
	plan, err := ParseDay18(day18Sample)
	require.NoError(t, err)
	require.Len(t, plan, 14)
	assert.Equal(t, DigStep{Dir: aoc.Right, N: 6, Color: "70c710"}, plan[0])

	assert.Equal(t, 62, Day18Part1(plan))
	got, err := Day18Part2(plan)
	require.NoError(t, err)
	assert.Equal(t, 952408144115, got)
}

func TestDigStepDecode(t *testing.T) {
	s, err := DigStep{Color: "70c710"}.Decode()
	require.NoError(t, err)
	assert.Equal(t, aoc.Right, s.Dir)
	assert.Equal(t, 461937, s.N)

	_, err = DigStep{Color: "70c719"}.Decode()
	assert.Error(t, err)
}
