// Package camera computes the world-to-screen offset that keeps the player in view.
package camera

import "math"

// Offset is added to world coordinates to get screen coordinates.
type Offset struct {
	X, Y float64
}

// Params holds everything the offset is derived from. All values are pixels.
type Params struct {
	PlayerX, PlayerY float64 // top-left of the player box
	PlayerW, PlayerH float64
	MapW, MapH       float64
	ViewW, ViewH     float64
	FocusX, FocusY   float64 // screen point the player centre is pinned to
}

// Follow returns the clamped offset for p. It holds no state, so calling it
// twice with the same params gives the same result.
func Follow(p Params) Offset {
	return Offset{
		X: clampAxis(p.FocusX-(p.PlayerX+p.PlayerW/2), p.MapW, p.ViewW),
		Y: clampAxis(p.FocusY-(p.PlayerY+p.PlayerH/2), p.MapH, p.ViewH),
	}
}

// clampAxis keeps the map covering the view on one axis, or centres it
// when it is smaller than the view.
func clampAxis(target, mapSize, viewSize float64) float64 {
	if mapSize < viewSize {
		return (viewSize - mapSize) / 2
	}
	return math.Min(0, math.Max(target, viewSize-mapSize))
}

// ToScreen converts a world position to screen space.
func (o Offset) ToScreen(x, y float64) (float64, float64) {
	return x + o.X, y + o.Y
}

// ToWorld converts a screen position to world space.
func (o Offset) ToWorld(x, y float64) (float64, float64) {
	return x - o.X, y - o.Y
}

// VisibleTiles returns the half-open column and row ranges a view of the
// given size can show, clamped to a cols x rows grid.
func (o Offset) VisibleTiles(tileSize, viewW, viewH, cols, rows int) (startCol, endCol, startRow, endRow int) {
	ts := float64(tileSize)
	startCol = max(0, int(math.Floor(-o.X/ts)))
	startRow = max(0, int(math.Floor(-o.Y/ts)))
	endCol = min(cols, startCol+viewW/tileSize+1)
	endRow = min(rows, startRow+viewH/tileSize+1)
	return startCol, endCol, startRow, endRow
}
