package main

import (
	"github.com/jgriffin/aoc"
	"github.com/jgriffin/aoc/days"
)

// solver is registered with aoc.Run. Each D{day}p{part} method solves one
// part for the current input; a want= block in its doc comment is the
// sample it is checked against first.
type solver struct {
	*aoc.Puzzle
}

func solve[T any](s solver, parse func(string) (T, error), part func(T) int) any {
	in := aoc.MustGet(parse(s.InputString()))
	return part(in)
}

func solveErr[T any](s solver, parse func(string) (T, error), part func(T) (int, error)) any {
	in := aoc.MustGet(parse(s.InputString()))
	return aoc.MustGet(part(in))
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	return solve(s, days.ParseDay05, days.Day05Part1)
}

// want=46
func (s solver) D5p2() any {
	return solve(s, days.ParseDay05, days.Day05Part2)
}

/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s solver) D10p1() any {
	return solveErr(s, days.ParseDay10, days.Day10Part1)
}

/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
func (s solver) D10p2() any {
	return solveErr(s, days.ParseDay10, days.Day10Part2)
}

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s solver) D14p1() any {
	return solve(s, days.ParseDay14, days.Day14Part1)
}

// want=64
func (s solver) D14p2() any {
	return solveErr(s, days.ParseDay14, days.Day14Part2)
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s solver) D16p1() any {
	return solve(s, days.ParseDay16, days.Day16Part1)
}

// want=51
func (s solver) D16p2() any {
	return solve(s, days.ParseDay16, days.Day16Part2)
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return solveErr(s, days.ParseDay17, days.Day17Part1)
}

// want=94
func (s solver) D17p2() any {
	return solveErr(s, days.ParseDay17, days.Day17Part2)
}

/*
want=62

R 6 (#70c710)
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
*/
func (s solver) D18p1() any {
	return solve(s, days.ParseDay18, days.Day18Part1)
}

// want=952408144115
func (s solver) D18p2() any {
	return solveErr(s, days.ParseDay18, days.Day18Part2)
}

/*
want=19114

px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
*/
func (s solver) D19p1() any {
	return solve(s, days.ParseDay19, days.Day19Part1)
}

// want=167409079868000
func (s solver) D19p2() any {
	return solve(s, days.ParseDay19, days.Day19Part2)
}

/*
want=32000000

broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
*/
func (s solver) D20p1() any {
	return solve(s, days.ParseDay20, days.Day20Part1)
}

// D20p2 needs an rx module, which the samples lack.
func (s solver) D20p2() any {
	return solveErr(s, days.ParseDay20, days.Day20Part2)
}

/*
want=16

...........
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
*/
func (s solver) D21p1() any {
	steps := 64
	if s.SampleMode {
		steps = 6
	}
	g := aoc.MustGet(days.ParseDay21(s.InputString()))
	s.Debugf("garden %v with %d rocks", g.Grid.Size(), g.Rocks())
	return days.Day21Part1(g, steps)
}

func (s solver) D21p2() any {
	return solveErr(s, days.ParseDay21, days.Day21Part2)
}
