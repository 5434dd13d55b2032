package sprites

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"

	"chosenoffset.com/tilewalk/internal/entity"
	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/world"
)

type fakeImage struct {
	w, h  int
	fill  color.Color
	path  string
	draws []drawCall
}

type drawCall struct {
	src *fakeImage
	geo *fakeGeoM
}

func (i *fakeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.w, i.h)
}

func (i *fakeImage) Size() (int, int) {
	return i.w, i.h
}

func (i *fakeImage) Fill(c color.Color) {
	i.fill = c
}

func (i *fakeImage) Clear() {}

func (i *fakeImage) Dispose() {}

func (i *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := drawCall{src: src.(*fakeImage)}
	if opts != nil && opts.GeoM != nil {
		call.geo = opts.GeoM.(*fakeGeoM)
	}
	i.draws = append(i.draws, call)
}

type fakeGeoM struct {
	sx, sy float64
	tx, ty float64
}

func (g *fakeGeoM) Translate(tx, ty float64) {
	g.tx += tx
	g.ty += ty
}

func (g *fakeGeoM) Scale(sx, sy float64) {
	g.sx, g.sy = sx, sy
}

func (g *fakeGeoM) Reset() {
	*g = fakeGeoM{sx: 1, sy: 1}
}

type fakeRenderer struct{}

func (fakeRenderer) NewImage(w, h int) render.Image {
	return &fakeImage{w: w, h: h}
}

func (fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {}

func (fakeRenderer) DrawText(render.Image, string, int, int, color.Color, float64) {}

func (fakeRenderer) MeasureText(string, float64) (int, int) {
	return 0, 0
}

type fakeLoader struct {
	available map[string]bool
	size      int
}

func (l *fakeLoader) LoadImage(path string) (render.Image, error) {
	if !l.available[filepath.Base(path)] {
		return nil, errors.New("file not found")
	}
	return &fakeImage{w: l.size, h: l.size, path: path}, nil
}

func init() {
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{sx: 1, sy: 1} }
}

func TestLoadAllPresent(t *testing.T) {
	loader := &fakeLoader{available: map[string]bool{}, size: 32}
	for _, f := range TileFiles {
		loader.available[f] = true
	}
	for _, f := range PlayerFiles {
		loader.available[f] = true
	}

	s := Load(fakeRenderer{}, loader, "assets", 32, logr.Discard())
	if s.Missing() != 0 {
		t.Errorf("Expected no missing sprites, got %d", s.Missing())
	}

	wall := s.Tile(world.TileWall).(*fakeImage)
	if wall.path != filepath.Join("assets", "wall.png") {
		t.Errorf("Expected wall sprite from assets/wall.png, got %s", wall.path)
	}
	left := s.Player(entity.DirLeft).(*fakeImage)
	if left.path != filepath.Join("assets", "arrowLeft.png") {
		t.Errorf("Expected left sprite from assets/arrowLeft.png, got %s", left.path)
	}
	if s.Tile(world.OutOfBounds) != nil {
		t.Error("Expected no sprite for OutOfBounds")
	}
}

func TestLoadMissingFallsBackToRed(t *testing.T) {
	loader := &fakeLoader{available: map[string]bool{"floor.png": true}, size: 32}
	s := Load(fakeRenderer{}, loader, "assets", 16, logr.Discard())

	want := len(TileFiles) + len(PlayerFiles) - 1
	if s.Missing() != want {
		t.Errorf("Expected %d missing sprites, got %d", want, s.Missing())
	}

	door := s.Tile(world.TileDoor).(*fakeImage)
	if door.fill != MissingColor {
		t.Errorf("Expected red stand-in, got %v", door.fill)
	}
	if door.w != 16 || door.h != 16 {
		t.Errorf("Expected stand-in to be tile sized, got %dx%d", door.w, door.h)
	}
}

func TestDrawScalesToTile(t *testing.T) {
	s := &Set{tileSize: 32}
	dst := &fakeImage{w: 640, h: 480}

	s.Draw(dst, &fakeImage{w: 16, h: 16}, 10, 20)
	s.Draw(dst, &fakeImage{w: 32, h: 32}, 42, 0)
	s.Draw(dst, nil, 0, 0)

	if len(dst.draws) != 2 {
		t.Fatalf("Expected 2 draws, got %d", len(dst.draws))
	}
	first := dst.draws[0].geo
	if first.sx != 2 || first.sy != 2 || first.tx != 10 || first.ty != 20 {
		t.Errorf("Expected 2x scale at (10, 20), got %+v", *first)
	}
	second := dst.draws[1].geo
	if second.sx != 1 || second.tx != 42 {
		t.Errorf("Expected unscaled draw at x=42, got %+v", *second)
	}
}
