package aoc

import (
	"container/heap"
	"fmt"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// While pops values until the stack is empty or f returns false. f may push.
func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

// PQI is an item in a PQ: a value V with priority P.
type PQI[T any] struct {
	V   T
	P   int
	ix  int
	seq uint64
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Index returns the item's position in its queue, or -1 once popped.
func (i *PQI[T]) Index() int {
	return i.ix
}

// MinQueue returns a queue that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{
		pq: pq[T]{
			min: true,
		},
	}
}

// MaxQueue returns a queue that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{}
}

// PQ is a priority queue. Items of equal priority pop in the order they were
// pushed (or last updated), so searches driven by it are reproducible.
type PQ[T any] struct {
	pq  pq[T]
	seq uint64
}

func (pq *PQ[T]) Push(v *PQI[T]) {
	v.seq = pq.next()
	heap.Push(&pq.pq, v)
}

func (pq *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&pq.pq).(*PQI[T])
}

// Update restores heap order after v.P was changed. v must still be queued.
func (pq *PQ[T]) Update(v *PQI[T]) {
	v.seq = pq.next()
	heap.Fix(&pq.pq, v.ix)
}

func (pq *PQ[T]) Peek() *PQI[T] {
	return pq.pq.q[0]
}

func (pq *PQ[T]) Len() int {
	return pq.pq.Len()
}

func (pq *PQ[T]) next() uint64 {
	pq.seq++
	return pq.seq
}

type pq[T any] struct {
	q   []*PQI[T]
	min bool
}

func (pq pq[T]) Len() int { return len(pq.q) }

func (pq pq[T]) Less(i, j int) bool {
	a, b := pq.q[i], pq.q[j]
	if a.P == b.P {
		return a.seq < b.seq
	}
	if pq.min {
		return a.P < b.P
	}
	return a.P > b.P
}

func (pq pq[T]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (pq *pq[T]) Push(x any) {
	n := len(pq.q)
	i := x.(*PQI[T])
	i.ix = n
	pq.q = append(pq.q, i)
}

func (pq *pq[T]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1   // for safety

	pq.q = old[0 : n-1]
	return item
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// While pops values until the queue is empty or f returns false. f may push.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Interner assigns dense small integer IDs to keys in first-seen order, so
// that short string names can be swapped for ints once at load time.
type Interner[K comparable] struct {
	ids  map[K]int
	keys []K
}

// ID returns the ID of k, assigning the next free one if k is new.
func (in *Interner[K]) ID(k K) int {
	if id, ok := in.ids[k]; ok {
		return id
	}
	InitMap(&in.ids)
	id := len(in.keys)
	in.ids[k] = id
	in.keys = append(in.keys, k)
	return id
}

// Lookup returns the ID of k without assigning one.
func (in *Interner[K]) Lookup(k K) (int, bool) {
	id, ok := in.ids[k]
	return id, ok
}

// Key returns the key with the given ID. It panics if id was never assigned.
func (in *Interner[K]) Key(id int) K {
	return in.keys[id]
}

func (in *Interner[K]) Len() int {
	return len(in.keys)
}

// InitMap allocates *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
