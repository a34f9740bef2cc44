package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var s Stack[int]
	_, ok := s.Pop()
	assert.False(t, ok)
	for i := range 3 {
		s.Push(i)
	}
	v, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	var got []int
	s.While(func(v int) bool {
		got = append(got, v)
		if v == 1 {
			s.Push(10)
		}
		return true
	})
	assert.Equal(t, []int{2, 1, 10, 0}, got)
	assert.Equal(t, 0, s.Len())
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return v < 2
	})
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 1, q.Len())
}

func popAll[T any](pq *PQ[T]) []T {
	var out []T
	for pq.Len() > 0 {
		out = append(out, pq.Pop().V)
	}
	return out
}

func TestMinQueue(t *testing.T) {
	pq := MinQueue[string]()
	for _, it := range []*PQI[string]{
		{V: "c", P: 3},
		{V: "a1", P: 1},
		{V: "b", P: 2},
		{V: "a2", P: 1},
		{V: "a3", P: 1},
	} {
		pq.Push(it)
	}
	assert.Equal(t, "a1", pq.Peek().V)
	assert.Equal(t, []string{"a1", "a2", "a3", "b", "c"}, popAll(pq), "equal priorities pop in push order")
}

func TestMaxQueue(t *testing.T) {
	pq := MaxQueue[int]()
	for _, p := range []int{4, 9, 1, 7} {
		pq.Push(&PQI[int]{V: p, P: p})
	}
	assert.Equal(t, []int{9, 7, 4, 1}, popAll(pq))
}

func TestPQUpdate(t *testing.T) {
	pq := MinQueue[string]()
	a := &PQI[string]{V: "a", P: 5}
	b := &PQI[string]{V: "b", P: 3}
	c := &PQI[string]{V: "c", P: 3}
	pq.Push(a)
	pq.Push(b)
	pq.Push(c)

	a.P = 1
	pq.Update(a)
	// b is updated to its own priority, which moves it behind c.
	pq.Update(b)
	assert.Equal(t, []string{"a", "c", "b"}, popAll(pq))
	assert.Equal(t, -1, a.Index())
}

func TestInterner(t *testing.T) {
	var in Interner[string]
	_, ok := in.Lookup("a")
	assert.False(t, ok)

	assert.Equal(t, 0, in.ID("broadcaster"))
	assert.Equal(t, 1, in.ID("a"))
	assert.Equal(t, 0, in.ID("broadcaster"))
	assert.Equal(t, 2, in.ID("inv"))
	require.Equal(t, 3, in.Len())

	id, ok := in.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, "inv", in.Key(2))
}

func TestInitMap(t *testing.T) {
	var m map[string]int
	InitMap(&m)
	require.NotNil(t, m)
	m["a"] = 1
	InitMap(&m)
	assert.Equal(t, 1, m["a"])
}
