package world

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is returned when rows differ in length or the grid is empty.
var ErrMalformedGrid = errors.New("malformed grid")

// Grid is a rectangular, row-major array of tile kinds.
// It is never mutated after NewGrid returns, so it can be shared
// between the simulation and a renderer without locking.
type Grid struct {
	cells  [][]TileKind
	width  int
	height int
}

// NewGrid copies cells into a new Grid. Every row must have the same,
// non-zero length.
func NewGrid(cells [][]TileKind) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedGrid)
	}

	width := len(cells[0])
	copied := make([][]TileKind, len(cells))
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrMalformedGrid, y, len(row), width)
		}
		for x, k := range row {
			if !k.Valid() {
				return nil, fmt.Errorf("%w: invalid tile kind %d at (%d, %d)", ErrMalformedGrid, k, x, y)
			}
		}
		copied[y] = append([]TileKind(nil), row...)
	}

	return &Grid{
		cells:  copied,
		width:  width,
		height: len(cells),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (col, row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// TileAt returns the kind at (col, row), or OutOfBounds.
func (g *Grid) TileAt(col, row int) TileKind {
	if !g.InBounds(col, row) {
		return OutOfBounds
	}
	return g.cells[row][col]
}

// PixelSize returns the grid dimensions in pixels for the given tile edge.
func (g *Grid) PixelSize(tileSize int) (w, h float64) {
	return float64(g.width * tileSize), float64(g.height * tileSize)
}

// GridFromRows builds a grid from text rows, one glyph per cell
// ('#' wall, '.' floor, '>' stairs, '+' door, 'S' spawn).
func GridFromRows(rows ...string) (*Grid, error) {
	cells := make([][]TileKind, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			k, ok := ParseGlyph(r)
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at (%d, %d)", ErrMalformedGrid, r, x, y)
			}
			cells[y] = append(cells[y], k)
		}
	}
	return NewGrid(cells)
}
