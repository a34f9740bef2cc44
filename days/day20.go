package days

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jgriffin/aoc"
)

type moduleKind int

const (
	// sink modules are named as outputs but never declared.
	sink moduleKind = iota
	broadcaster
	flipFlop
	conjunction
)

func (k moduleKind) String() string {
	switch k {
	case broadcaster:
		return "broadcaster"
	case flipFlop:
		return "flip-flop"
	case conjunction:
		return "conjunction"
	}
	return "sink"
}

// maxPresses bounds the button presses part 2 will try.
const maxPresses = 1_000_000

// Network is the module configuration. Module names are interned to ids,
// which are the nodes of Graph.
type Network struct {
	Names aoc.Interner[string]
	Kinds []moduleKind
	Graph aoc.Graph[int]
	// Broadcaster is the id of the module the button pulses.
	Broadcaster int
}

func ParseDay20(input string) (*Network, error) {
	n := &Network{Broadcaster: -1}
	declared := make(map[int]moduleKind)
	for i, l := range aoc.Lines(input) {
		src, dsts, ok := strings.Cut(l, " -> ")
		if !ok {
			return nil, fmt.Errorf("day 20: line %d: bad module %q", i+1, l)
		}
		kind := broadcaster
		switch src[0] {
		case '%':
			kind, src = flipFlop, src[1:]
		case '&':
			kind, src = conjunction, src[1:]
		default:
			if src != "broadcaster" {
				return nil, fmt.Errorf("day 20: line %d: bad module %q", i+1, src)
			}
		}
		id := n.Names.ID(src)
		if _, dup := declared[id]; dup {
			return nil, fmt.Errorf("day 20: module %s declared twice", src)
		}
		declared[id] = kind
		if kind == broadcaster {
			n.Broadcaster = id
		}
		n.Graph.AddNode(id)
		for _, d := range strings.Split(dsts, ",") {
			n.Graph.AddArc(id, n.Names.ID(strings.TrimSpace(d)), 1)
		}
	}
	if n.Broadcaster < 0 {
		return nil, errors.New("day 20: no broadcaster")
	}
	n.Kinds = make([]moduleKind, n.Names.Len())
	for id, k := range declared {
		n.Kinds[id] = k
	}
	return n, nil
}

type pulse struct {
	from, to int
	high     bool
}

// machine is the mutable state of a network between presses.
type machine struct {
	net *Network
	on  []bool
	// memory[c][in] is the last pulse conjunction c received from in.
	memory []map[int]bool
}

func newMachine(n *Network) *machine {
	m := &machine{
		net:    n,
		on:     make([]bool, len(n.Kinds)),
		memory: make([]map[int]bool, len(n.Kinds)),
	}
	for id, k := range n.Kinds {
		if k != conjunction {
			continue
		}
		m.memory[id] = make(map[int]bool)
		for _, in := range n.Graph.Inputs(id) {
			m.memory[id][in] = false
		}
	}
	return m
}

// press pushes the button once, calling observe for every pulse in the
// order it is delivered, and returns the low and high pulse counts.
func (m *machine) press(observe func(pulse)) (lows, highs int) {
	q := aoc.NewQueue(pulse{from: -1, to: m.net.Broadcaster})
	q.While(func(p pulse) bool {
		if p.high {
			highs++
		} else {
			lows++
		}
		if observe != nil {
			observe(p)
		}
		send := func(high bool) {
			for _, to := range m.net.Graph.Neighbors(p.to) {
				q.Push(pulse{from: p.to, to: to, high: high})
			}
		}
		switch m.net.Kinds[p.to] {
		case broadcaster:
			send(p.high)
		case flipFlop:
			if !p.high {
				m.on[p.to] = !m.on[p.to]
				send(m.on[p.to])
			}
		case conjunction:
			mem := m.memory[p.to]
			mem[p.from] = p.high
			all := true
			for _, h := range mem {
				all = all && h
			}
			send(!all)
		case sink:
		}
		return true
	})
	return lows, highs
}

// Day20Part1 returns lows times highs over 1000 button presses.
func Day20Part1(n *Network) int {
	m := newMachine(n)
	var lows, highs int
	for range 1000 {
		l, h := m.press(nil)
		lows += l
		highs += h
	}
	return lows * highs
}

// Day20Part2 returns the fewest presses that deliver a low pulse to rx.
// rx is driven by a single conjunction, which sends low only once all of
// its inputs last sent high; each input does so periodically, so the
// answer is the LCM of the presses on which each first sends high.
func Day20Part2(n *Network) (int, error) {
	rx, ok := n.Names.Lookup("rx")
	if !ok {
		return 0, errors.New("day 20: no rx module")
	}
	drivers := n.Graph.Inputs(rx)
	if len(drivers) != 1 || n.Kinds[drivers[0]] != conjunction {
		return 0, errors.New("day 20: rx is not driven by a single conjunction")
	}
	driver := drivers[0]
	feeders := n.Graph.Inputs(driver)
	first := make(map[int]int, len(feeders))

	m := newMachine(n)
	for i := 1; i <= maxPresses; i++ {
		m.press(func(p pulse) {
			if p.to == driver && p.high {
				if _, ok := first[p.from]; !ok {
					first[p.from] = i
				}
			}
		})
		if len(first) == len(feeders) {
			var periods []int
			for _, f := range feeders {
				periods = append(periods, first[f])
			}
			return aoc.LCM(periods...), nil
		}
	}
	return 0, fmt.Errorf("day 20: feeders of %s did not all fire within %d presses", n.Names.Key(driver), maxPresses)
}
