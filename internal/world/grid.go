package world

import "fmt"

// Point is a 2D integer grid coordinate.
type Point struct {
	X, Y int
}

// NoPoint marks an absent coordinate, such as the exit of a floor generated
// without one.
var NoPoint = Point{-1, -1}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p multiplied by n.
func (p Point) Scale(n int) Point {
	return Point{p.X * n, p.Y * n}
}

// Chebyshev returns the box distance between p and q.
func (p Point) Chebyshev(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Cardinal offsets in up, down, left, right order.
var cardinals = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is a fixed-size 2D array stored in a flat slice indexed x*height + y.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// NewGrid allocates a width x height grid with every cell set to fill.
func NewGrid[T any](width, height int, fill T) *Grid[T] {
	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
	g.Fill(fill)
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid[T]) index(x, y int) int {
	return x*g.height + y
}

// Get returns the cell at (x, y). ok is false when out of bounds.
func (g *Grid[T]) Get(x, y int) (v T, ok bool) {
	if !g.InBounds(x, y) {
		return v, false
	}
	return g.cells[g.index(x, y)], true
}

// Set writes the cell at (x, y) and reports whether it was in bounds.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[g.index(x, y)] = v
	return true
}

// MustGet returns the cell at (x, y) and panics when out of bounds.
func (g *Grid[T]) MustGet(x, y int) T {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: get (%d,%d) outside %dx%d", x, y, g.width, g.height))
	}
	return g.cells[g.index(x, y)]
}

// MustSet writes the cell at (x, y) and panics when out of bounds.
func (g *Grid[T]) MustSet(x, y int, v T) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: set (%d,%d) outside %dx%d", x, y, g.width, g.height))
	}
	g.cells[g.index(x, y)] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Cells returns the backing slice in storage order. Callers must not resize it.
func (g *Grid[T]) Cells() []T {
	return g.cells
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}
