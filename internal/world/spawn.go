package world

import (
	"errors"
	"math/rand"
)

// ErrNoSpawnFound signals that a grid has no spawn tiles. It is a warning:
// SelectSpawn still returns the origin alongside it.
var ErrNoSpawnFound = errors.New("no spawn tiles found")

// Point is a pixel coordinate in world space.
type Point struct {
	X, Y float64
}

// SpawnPoints returns the pixel position of every spawn tile, row-major.
func SpawnPoints(g *Grid, tileSize int) []Point {
	var points []Point
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.TileAt(col, row).IsSpawn() {
				points = append(points, Point{
					X: float64(col * tileSize),
					Y: float64(row * tileSize),
				})
			}
		}
	}
	return points
}

// SelectSpawn picks one spawn tile uniformly at random using rng.
// With no spawn tiles it returns the origin and ErrNoSpawnFound.
func SelectSpawn(g *Grid, tileSize int, rng *rand.Rand) (Point, error) {
	points := SpawnPoints(g, tileSize)
	if len(points) == 0 {
		return Point{}, ErrNoSpawnFound
	}
	return points[rng.Intn(len(points))], nil
}
