package aoc

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

var (
	// ErrEmptyGrid is returned when the input has no rows.
	ErrEmptyGrid = errors.New("aoc: grid must have at least one row and one column")
	// ErrNonRectangular is returned when rows have differing lengths.
	ErrNonRectangular = errors.New("aoc: all grid rows must have the same length")
	// ErrBadCell is returned by cell decoders for characters outside the
	// expected set.
	ErrBadCell = errors.New("aoc: unexpected grid cell")
)

// Grid is a rectangular, row-major grid indexed by Pt.
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) InBounds(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid decodes a block of text into a grid, one row per line. Each
// character is converted with cell. Trailing blank lines are ignored.
func ParseGrid[T any](input string, cell func(r rune) (T, error)) (Grid[T], error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(lines[0]))
	g := make(Grid[T], 0, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]T, 0, width)
		for x, r := range []rune(line) {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", x, y, err)
			}
			row = append(row, v)
		}
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrNonRectangular)
		}
		g = append(g, row)
	}
	return g, nil
}

// ParseRunes decodes the input into a grid of its characters.
func ParseRunes(input string) (Grid[rune], error) {
	return ParseGrid(input, func(r rune) (rune, error) { return r, nil })
}

// ParseDigits decodes the input into a grid of single digit values.
func ParseDigits(input string) (Grid[int], error) {
	return ParseGrid(input, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a digit: %w", r, ErrBadCell)
		}
		return int(r - '0'), nil
	})
}

// ParsePoints parses one "x,y" pair per line.
func ParsePoints(input string) ([]Pt, error) {
	var pts []Pt
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		x, y, ok := strings.Cut(strings.TrimSpace(line), ",")
		if !ok {
			return nil, fmt.Errorf("line %d: missing comma in %q", i+1, line)
		}
		px, err := ParseInt(x)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		py, err := ParseInt(y)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		pts = append(pts, Pt{px, py})
	}
	return pts, nil
}

// All calls f for every cell in row-major order until f returns false.
func (g Grid[T]) All(f func(p Pt, v T) (keepGoing bool)) {
	for y, row := range g {
		for x, v := range row {
			if !f(Pt{x, y}, v) {
				return
			}
		}
	}
}

// Find returns the first cell in row-major order holding v.
func Find[T comparable](g Grid[T], v T) (Pt, bool) {
	var (
		out   Pt
		found bool
	)
	g.All(func(p Pt, c T) bool {
		if c == v {
			out, found = p, true
			return false
		}
		return true
	})
	return out, found
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a structural hash of the grid's cells.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Pose is a point and a facing direction.
type Pose struct {
	Pt  Pt
	Dir Direction
}

// Forward returns the pose one step ahead, keeping the facing.
func (p Pose) Forward() Pose {
	p.Pt = p.Pt.Move(p.Dir)
	return p
}

type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the compass directions clockwise from North.
var Directions = [4]Direction{North, East, South, West}

// Left returns d rotated a quarter turn counterclockwise.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns d rotated a quarter turn clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Offset is the unit step in direction d, with y growing downward.
func (d Direction) Offset() Pt {
	switch d {
	case North:
		return Pt{0, -1}
	case East:
		return Pt{1, 0}
	case South:
		return Pt{0, 1}
	case West:
		return Pt{-1, 0}
	}
	panic(fmt.Sprintf("bad direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case West:
		return "<"
	case East:
		return ">"
	case North:
		return "^"
	case South:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Move returns the neighbor of p in direction d.
func (p Pt2[T]) Move(d Direction) Pt2[T] {
	o := d.Offset()
	return Pt2[T]{p.X + T(o.X), p.Y + T(o.Y)}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("%v,%v", p.X, p.Y)
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
