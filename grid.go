package aoc

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a dense rectangular grid stored in row-major order.
//
// Every accessor treats out-of-bounds points as absent rather than as an
// error, so neighbor expansion near the edges needs no bounds checks of its
// own.
type Grid[T any] struct {
	dx, dy int
	m      []T // len(m) == dx*dy
}

// NewGrid returns a dx by dy grid with every cell set to fill.
func NewGrid[T any](dx, dy int, fill T) *Grid[T] {
	dx, dy = max(dx, 0), max(dy, 0)
	g := &Grid[T]{dx: dx, dy: dy, m: make([]T, dx*dy)}
	g.Fill(fill)
	return g
}

// NewGridLike returns a grid with the same dimensions as g filled with fill.
func NewGridLike[T, U any](g *Grid[U], fill T) *Grid[T] {
	return NewGrid(g.dx, g.dy, fill)
}

// JaggedInputError is returned by ParseGrid when a line's length differs from
// the length of the first line.
type JaggedInputError struct {
	Line int // 1-based
	Want int
	Got  int
}

func (e *JaggedInputError) Error() string {
	return fmt.Sprintf("jagged input: line %d has length %d, want %d", e.Line, e.Got, e.Want)
}

// ParseGrid parses newline-separated rows of equal length into a byte grid.
// A trailing newline and CRLF line endings are accepted.
func ParseGrid(text string) (*Grid[byte], error) {
	g := &Grid[byte]{}
	if text == "" {
		return g, nil
	}
	s := bufio.NewScanner(strings.NewReader(text))
	s.Buffer(nil, len(text)+1)
	for s.Scan() {
		line := strings.TrimSuffix(s.Text(), "\r")
		if g.dy == 0 {
			g.dx = len(line)
		} else if len(line) != g.dx {
			return nil, &JaggedInputError{Line: g.dy + 1, Want: g.dx, Got: len(line)}
		}
		g.m = append(g.m, line...)
		g.dy++
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// Dimensions returns the width and height of g.
func (g *Grid[T]) Dimensions() (dx, dy int) {
	return g.dx, g.dy
}

// Size returns the dimensions of g as a point.
func (g *Grid[T]) Size() Pt {
	return Pt{g.dx, g.dy}
}

func (g *Grid[T]) IsInside(p Pt) bool {
	return p.X >= 0 && p.X < g.dx && p.Y >= 0 && p.Y < g.dy
}

func (g *Grid[T]) index(p Pt) (int, bool) {
	if !g.IsInside(p) {
		return 0, false
	}
	return p.X + p.Y*g.dx, true
}

func (g *Grid[T]) pt(i int) Pt {
	return Pt{i % g.dx, i / g.dx}
}

// Get returns the value at p. It reports false if p is out of bounds.
func (g *Grid[T]) Get(p Pt) (T, bool) {
	i, ok := g.index(p)
	if !ok {
		var zero T
		return zero, false
	}
	return g.m[i], true
}

// At returns the value at p, or the zero T if p is out of bounds.
func (g *Grid[T]) At(p Pt) T {
	v, _ := g.Get(p)
	return v
}

// Ptr returns a pointer to the cell at p, or nil if p is out of bounds.
func (g *Grid[T]) Ptr(p Pt) *T {
	i, ok := g.index(p)
	if !ok {
		return nil
	}
	return &g.m[i]
}

// Set sets the cell at p to v. It reports whether p was in bounds.
func (g *Grid[T]) Set(p Pt, v T) bool {
	if c := g.Ptr(p); c != nil {
		*c = v
		return true
	}
	return false
}

// Positions yields every in-bounds point in row-major order.
func (g *Grid[T]) Positions() iter.Seq[Pt] {
	return func(yield func(Pt) bool) {
		for y := 0; y < g.dy; y++ {
			for x := 0; x < g.dx; x++ {
				if !yield(Pt{x, y}) {
					return
				}
			}
		}
	}
}

// All yields every point with its current value in row-major order.
func (g *Grid[T]) All() iter.Seq2[Pt, T] {
	return func(yield func(Pt, T) bool) {
		for i, v := range g.m {
			if !yield(g.pt(i), v) {
				return
			}
		}
	}
}

// Values yields every value in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.m {
			if !yield(v) {
				return
			}
		}
	}
}

// Rows yields each row of g. The slices alias the grid storage.
func (g *Grid[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for y := 0; y < g.dy; y++ {
			if !yield(g.m[y*g.dx : (y+1)*g.dx]) {
				return
			}
		}
	}
}

func (g *Grid[T]) Fill(v T) {
	for i := range g.m {
		g.m[i] = v
	}
}

// FillBlock sets every cell in the half-open rectangle spanned by p0 and p1,
// clipped to the grid, to v.
func (g *Grid[T]) FillBlock(p0, p1 Pt, v T) {
	x0 := max(min(p0.X, p1.X), 0)
	x1 := min(max(p0.X, p1.X), g.dx)
	y0 := max(min(p0.Y, p1.Y), 0)
	y1 := min(max(p0.Y, p1.Y), g.dy)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for y := y0; y < y1; y++ {
		row := g.m[y*g.dx+x0 : y*g.dx+x1]
		for i := range row {
			row[i] = v
		}
	}
}

// Flood writes v into start and every cell reachable from it through
// axis-aligned neighbors whose current value satisfies pred. The predicate
// sees each neighbor's value before it is overwritten, and each cell is
// written at most once per call. It returns the number of cells written.
func (g *Grid[T]) Flood(start Pt, v T, pred func(T) bool) int {
	return g.FloodFunc(start, v, func(_ Pt, c T) bool { return pred(c) })
}

// FloodFunc is like Flood but also passes the neighbor's position to pred, so
// the fill can be driven by another grid of the same dimensions.
func (g *Grid[T]) FloodFunc(start Pt, v T, pred func(Pt, T) bool) int {
	if !g.IsInside(start) {
		return 0
	}
	seen := NewGridLike(g, false)
	seen.Set(start, true)
	var stk Stack[Pt]
	stk.Push(start)
	n := 0
	stk.While(func(p Pt) bool {
		g.Set(p, v)
		n++
		for _, q := range p.Neighbors4() {
			c, ok := g.Get(q)
			if !ok || seen.At(q) || !pred(q, c) {
				continue
			}
			seen.Set(q, true)
			stk.Push(q)
		}
		return true
	})
	return n
}

// Find returns the first point, in row-major order, whose value is v.
func Find[T comparable](g *Grid[T], v T) (Pt, bool) {
	for i, c := range g.m {
		if c == v {
			return g.pt(i), true
		}
	}
	return Pt{}, false
}

// FindReplace finds v like Find and overwrites it with repl.
func FindReplace[T comparable](g *Grid[T], v, repl T) (Pt, bool) {
	p, ok := Find(g, v)
	if ok {
		g.Set(p, repl)
	}
	return p, ok
}

func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{dx: g.dx, dy: g.dy, m: make([]T, len(g.m))}
	copy(out.m, g.m)
	return out
}

// ShowBy writes g to w one row per line, rendering each cell with f.
func (g *Grid[T]) ShowBy(w io.Writer, f func(T) string) error {
	bw := bufio.NewWriter(w)
	for row := range g.Rows() {
		for _, c := range row {
			bw.WriteString(f(c))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Show writes a byte grid to w in the format ParseGrid accepts.
func Show(w io.Writer, g *Grid[byte]) error {
	bw := bufio.NewWriter(w)
	for row := range g.Rows() {
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// GridString renders a byte grid as text.
func GridString(g *Grid[byte]) string {
	var sb strings.Builder
	Show(&sb, g)
	return sb.String()
}

var hashers = map[reflect.Type]any{} // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a hash of the grid's dimensions and contents.
func (g *Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(g)
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X - q.X, p.Y - q.Y} }

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Neighbors4 returns the four axis-aligned neighbors of p in Dirs order.
func (p Pt2[T]) Neighbors4() [4]Pt2[T] {
	return [4]Pt2[T]{
		{p.X, p.Y - 1},
		{p.X, p.Y + 1},
		{p.X + 1, p.Y},
		{p.X - 1, p.Y},
	}
}

// ForNeighbors calls f for each of the 8 neighbors of p until f returns false.
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

// Less orders points by Y, then X.
func (p Pt2[T]) Less(q Pt2[T]) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Dir is one of the four cardinal directions. Its value is a stable index in
// [0, 4) usable for per-direction arrays.
type Dir uint8

const (
	North Dir = iota
	South
	East
	West
)

// Dirs lists the four directions in index order.
var Dirs = [4]Dir{North, South, East, West}

func (d Dir) Index() int { return int(d) }

// Step returns the unit vector for d scaled by n.
func (d Dir) Step(n int) Pt {
	switch d {
	case North:
		return Pt{0, -n}
	case South:
		return Pt{0, n}
	case East:
		return Pt{n, 0}
	case West:
		return Pt{-n, 0}
	}
	panic("bad dir")
}

// Right returns d rotated clockwise.
func (d Dir) Right() Dir {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	}
	return North
}

// Left returns d rotated counterclockwise.
func (d Dir) Left() Dir {
	return d.Right().Opposite()
}

func (d Dir) Opposite() Dir {
	return d ^ 1
}

// DirFromStep returns the direction of a unit axis step.
func DirFromStep(p Pt) (Dir, bool) {
	for _, d := range Dirs {
		if d.Step(1) == p {
			return d, true
		}
	}
	return 0, false
}

func (d Dir) String() string {
	switch d {
	case North:
		return "^"
	case South:
		return "v"
	case East:
		return ">"
	case West:
		return "<"
	}
	return ""
}
