package core

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid is constructed with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Symbol is the finite-alphabet value stored in each grid cell.
type Symbol uint8

// Blank is the symbol every cell holds after construction or Clear.
const Blank Symbol = 0

// Grid stores a toroidal 2D field of symbols in row-major order. Dimensions
// are fixed after construction.
type Grid struct {
	W, H int
	data []Symbol
}

// NewGrid allocates a blank grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &Grid{W: w, H: h, data: make([]Symbol, w*h)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []Symbol { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates. It is total
// over all integers, including negative ones.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At reads the symbol at (x, y) with toroidal wrapping.
func (g *Grid) At(x, y int) Symbol {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set writes the symbol at (x, y) with toroidal wrapping.
func (g *Grid) Set(x, y int, s Symbol) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = s
}

// Clear fills the grid with the blank symbol.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Blank
	}
}
