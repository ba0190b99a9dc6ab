package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions is returned when a grid is requested with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// SeedFunc picks the initial state of the cell at (x, y).
type SeedFunc func(x, y int) CellState

// Grid stores a fixed-size 2D grid of cell states in row-major order.
type Grid struct {
	W, H  int
	cells []CellState
}

// NewGrid allocates a w*h grid and fills it by calling seed once per cell in
// row-major order. A nil seed leaves every cell Empty.
func NewGrid(w, h int, seed SeedFunc) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	g := &Grid{W: w, H: h, cells: make([]CellState, w*h)}
	g.Reseed(seed)
	return g, nil
}

// Reseed refills every cell from seed. A nil seed clears the grid to Empty.
func (g *Grid) Reseed(seed SeedFunc) {
	if seed == nil {
		for i := range g.cells {
			g.cells[i] = Empty
		}
		return
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.cells[y*g.W+x] = seed(x, y)
		}
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice.
func (g *Grid) Cells() []CellState { return g.cells }

// Clamp pins (x, y) to the nearest cell inside the grid.
func (g *Grid) Clamp(x, y int) (int, int) {
	return clampInt(x, 0, g.W-1), clampInt(y, 0, g.H-1)
}

// Index returns the linear slice index for (x, y). Both coordinates are
// clamped first and the resulting index is clamped again, so any input maps
// to a valid cell.
func (g *Grid) Index(x, y int) int {
	x, y = g.Clamp(x, y)
	return clampInt(y*g.W+x, 0, len(g.cells)-1)
}

// Get returns the state at (x, y), clamped to the grid.
func (g *Grid) Get(x, y int) CellState { return g.cells[g.Index(x, y)] }

// Set writes the state at (x, y), clamped to the grid.
func (g *Grid) Set(x, y int, s CellState) { g.cells[g.Index(x, y)] = s }

// Count returns how many cells hold s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// String renders the grid as rows of glyphs, top row first.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			b.WriteRune(g.cells[y*g.W+x].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
