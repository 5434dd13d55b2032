// Package sprites maps tile kinds and player facings to images. It is the
// only place presentation assets meet simulation types.
package sprites

import (
	"image/color"
	"path/filepath"

	"github.com/go-logr/logr"

	"chosenoffset.com/tilewalk/internal/entity"
	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/world"
)

// TileFiles names the asset for each tile kind.
var TileFiles = map[world.TileKind]string{
	world.TileFloor:  "floor.png",
	world.TileWall:   "wall.png",
	world.TileStairs: "stairs.png",
	world.TileDoor:   "door.png",
	world.TileSpawn:  "spawn.png",
}

// PlayerFiles names the player asset for each facing.
var PlayerFiles = map[entity.Direction]string{
	entity.DirUp:    "arrowUp.png",
	entity.DirDown:  "arrowDown.png",
	entity.DirLeft:  "arrowLeft.png",
	entity.DirRight: "arrowRight.png",
}

// MissingColor fills the stand-in for sprites that fail to load.
var MissingColor = color.RGBA{255, 0, 0, 255}

// Set holds one loaded image per tile kind and per facing.
type Set struct {
	tiles    map[world.TileKind]render.Image
	player   map[entity.Direction]render.Image
	tileSize int
	missing  int
}

// Load reads every sprite from dir. A sprite that cannot be loaded is
// replaced by a solid red tile and logged; Load itself never fails.
func Load(r render.Renderer, loader render.ResourceLoader, dir string, tileSize int, log logr.Logger) *Set {
	s := &Set{
		tiles:    make(map[world.TileKind]render.Image, len(TileFiles)),
		player:   make(map[entity.Direction]render.Image, len(PlayerFiles)),
		tileSize: tileSize,
	}

	for kind, file := range TileFiles {
		s.tiles[kind] = s.load(r, loader, filepath.Join(dir, file), log)
	}
	for facing, file := range PlayerFiles {
		s.player[facing] = s.load(r, loader, filepath.Join(dir, file), log)
	}

	if s.missing > 0 {
		log.Info("some sprites are missing, run genplaceholders to create them", "missing", s.missing, "dir", dir)
	}
	return s
}

func (s *Set) load(r render.Renderer, loader render.ResourceLoader, path string, log logr.Logger) render.Image {
	img, err := loader.LoadImage(path)
	if err == nil {
		return img
	}

	log.Error(err, "error loading sprite", "path", path)
	s.missing++
	stand := r.NewImage(s.tileSize, s.tileSize)
	stand.Fill(MissingColor)
	return stand
}

// Missing returns how many sprites fell back to the stand-in.
func (s *Set) Missing() int { return s.missing }

// Tile returns the image for kind, or nil for OutOfBounds.
func (s *Set) Tile(kind world.TileKind) render.Image {
	return s.tiles[kind]
}

// Player returns the image for the given facing.
func (s *Set) Player(d entity.Direction) render.Image {
	return s.player[d]
}

// Draw blits img scaled to one tile with its top-left at (x, y).
func (s *Set) Draw(dst, img render.Image, x, y float64) {
	if img == nil {
		return
	}
	w, h := img.Size()
	geo := render.NewGeoM()
	if w > 0 && h > 0 && (w != s.tileSize || h != s.tileSize) {
		geo.Scale(float64(s.tileSize)/float64(w), float64(s.tileSize)/float64(h))
	}
	geo.Translate(x, y)
	dst.DrawImage(img, &render.DrawImageOptions{GeoM: geo})
}
