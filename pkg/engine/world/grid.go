// Package world provides generic 2D grid primitives shared by the
// structural and content generators.
package world

import "fmt"

// Grid is a rectangular mutable container addressed by (x, y) with
// x in [0, Width) and y in [0, Height). Out-of-range access panics.
type Grid[T any] struct {
	cells  []T
	width  int
	height int
}

// NewGrid creates a width x height grid with every cell set to fill
func NewGrid[T any](width, height int, fill T) *Grid[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid dimensions must be positive, got %dx%d", width, height))
	}

	g := &Grid[T]{
		cells:  make([]T, width*height),
		width:  width,
		height: height,
	}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// Width returns the number of columns in the grid
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid[T]) Height() int {
	return g.height
}

// InBounds checks if a position is within grid bounds
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsInterior checks if a position is inside the grid and not on the outer ring
func (g *Grid[T]) IsInterior(p Point) bool {
	return p.X >= 1 && p.X < g.width-1 && p.Y >= 1 && p.Y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid[T]) IsOnPerimeter(p Point) bool {
	return g.InBounds(p) && !g.IsInterior(p)
}

// Center returns the geometric center of the grid, rounded down
func (g *Grid[T]) Center() Point {
	return Point{X: g.width / 2, Y: g.height / 2}
}

// Get returns the cell at p
func (g *Grid[T]) Get(p Point) T {
	return g.cells[g.index(p)]
}

// Set stores v at p
func (g *Grid[T]) Set(p Point, v T) {
	g.cells[g.index(p)] = v
}

// Ptr returns a pointer to the cell at p, valid until the grid is discarded
func (g *Grid[T]) Ptr(p Point) *T {
	return &g.cells[g.index(p)]
}

// ForEach iterates over all cells in row-major order
func (g *Grid[T]) ForEach(fn func(p Point, v T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Point{X: x, Y: y}, g.cells[y*g.width+x])
		}
	}
}

// Clone returns a shallow copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{
		cells:  make([]T, len(g.cells)),
		width:  g.width,
		height: g.height,
	}
	copy(c.cells, g.cells)
	return c
}

func (g *Grid[T]) index(p Point) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid access out of bounds: (%d,%d) in %dx%d", p.X, p.Y, g.width, g.height))
	}
	return p.Y*g.width + p.X
}
