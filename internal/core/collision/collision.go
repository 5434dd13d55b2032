// Package collision tests axis-aligned boxes against blocking tiles.
package collision

import (
	"math"

	"chosenoffset.com/tilewalk/internal/world"
)

// BlockedAt reports whether the box [x, x+w-1] x [y, y+h-1] touches a
// blocking tile. Only the four corners are sampled, so a box moving more
// than a tile per step can pass through a one-tile wall. Corners outside
// the grid never block; bounds are enforced by the caller's clamp.
func BlockedAt(g *world.Grid, tileSize int, x, y, w, h float64) bool {
	left := tileIndex(x, tileSize)
	top := tileIndex(y, tileSize)
	right := tileIndex(x+w-1, tileSize)
	bottom := tileIndex(y+h-1, tileSize)

	corners := [4][2]int{
		{left, top},
		{left, bottom},
		{right, top},
		{right, bottom},
	}
	for _, c := range corners {
		if g.TileAt(c[0], c[1]).IsBlocking() {
			return true
		}
	}
	return false
}

// tileIndex floors v/tileSize so negative coordinates map to negative tiles.
func tileIndex(v float64, tileSize int) int {
	return int(math.Floor(v / float64(tileSize)))
}
