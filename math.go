package aoc

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Lines splits s into lines, dropping a trailing newline.
func Lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits s on blank lines.
func Blocks(s string) []string {
	return strings.Split(strings.Trim(s, "\n"), "\n\n")
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Panicf("not a digit: %q", r)
	}
	return int(r - '0')
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

var intRx = regexp.MustCompile(`-?\d+`)

// Fields returns every integer in s, in order.
func Fields(s string) []int {
	return Ints(intRx.FindAllString(s, -1)...)
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := 1
	for _, v := range integers {
		result = result / GCD(result, v) * v
	}
	return result
}

// GCD returns the greatest common divisor of the integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Extrapolate returns the next value in the sequence x.
// If forward is true, it extrapolates the next value, otherwise
// it extrapolates the previous value in the sequence.
func Extrapolate[T Number](x []T, forward bool) (y T) {
	diffs := make([]T, 0, len(x))
	allZero := true
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		diffs = append(diffs, d)
		if d != 0 {
			allZero = false
		}
	}
	ix := 0
	if forward {
		ix = len(x) - 1
	}
	if allZero {
		return x[ix]
	}
	val := x[ix]
	diff := Extrapolate(diffs, forward)
	if forward {
		return val + diff
	}
	return val - diff
}

// PolygonArea returns the area of the polygon with the given vertices,
// using the shoelace formula. The polygon is closed implicitly; repeating
// the first vertex at the end is allowed.
func PolygonArea(pts []Pt) int {
	var area int
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - a.Y*b.X
	}
	return AbsDiff(area, 0) / 2
}

// PolygonPerimeter returns the perimeter of the polygon with the given
// vertices, measured in manhattan distance.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int
	for i, a := range pts {
		perimeter += a.MDist(pts[(i+1)%len(pts)])
	}
	return perimeter
}

// PolygonInteriorPoints returns the number of integer points strictly
// inside the rectilinear polygon with the given vertices.
func PolygonInteriorPoints(pts []Pt) int {
	/*
	  Pick's theorem:
	  A = i + b/2 - 1
	  i = A - b/2 + 1
	*/
	return PolygonArea(pts) - PolygonPerimeter(pts)/2 + 1
}

// PolygonBoundedPoints returns the number of integer points inside or on
// the boundary of the rectilinear polygon with the given vertices.
func PolygonBoundedPoints(pts []Pt) int {
	// i + b = A + b/2 + 1
	return PolygonArea(pts) + PolygonPerimeter(pts)/2 + 1
}
