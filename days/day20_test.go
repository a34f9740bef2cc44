package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay20Part1(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name: "ring",
			input: `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`,
			want: 32000000,
		},
		{
			name: "output",
			input: `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`,
			want: 11687500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseDay20(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Day20Part1(n))
		})
	}
}

func TestDay20Parse(t *testing.T) {
	n, err := ParseDay20("broadcaster -> a\n%a -> inv, con\n&inv -> b\n%b -> con\n&con -> output\n")
	require.NoError(t, err)

	id := func(name string) int {
		v, ok := n.Names.Lookup(name)
		require.True(t, ok, name)
		return v
	}
	assert.Equal(t, 6, n.Names.Len())
	assert.Equal(t, broadcaster, n.Kinds[n.Broadcaster])
	assert.Equal(t, flipFlop, n.Kinds[id("a")])
	assert.Equal(t, conjunction, n.Kinds[id("con")])
	assert.Equal(t, sink, n.Kinds[id("output")])
	assert.Equal(t, []int{id("inv"), id("con")}, n.Graph.Neighbors(id("a")))
	assert.Equal(t, []int{id("a"), id("b")}, n.Graph.Inputs(id("con")))
}

func TestDay20Part2(t *testing.T) {
	// f1 and f2 invert the first two bits of a counter, so they first
	// send high on presses 2 and 4.
	n, err := ParseDay20(`broadcaster -> a
%a -> b, f1
%b -> f2
&f1 -> d
&f2 -> d
&d -> rx
`)
	require.NoError(t, err)
	got, err := Day20Part2(n)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = Day20Part2(&Network{})
	assert.Error(t, err)
}

func TestParseDay20Errors(t *testing.T) {
	for _, in := range []string{
		"%a -> b\n",
		"broadcaster a\n",
		"broadcaster -> a\nfoo -> a\n",
		"broadcaster -> a\n%a -> b\n%a -> c\n",
	} {
		_, err := ParseDay20(in)
		assert.Error(t, err, in)
	}
}
