package game

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/go-logr/logr"

	"chosenoffset.com/tilewalk/internal/entity"
	"chosenoffset.com/tilewalk/internal/input"
	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/render/sprites"
	"chosenoffset.com/tilewalk/internal/simulation"
	"chosenoffset.com/tilewalk/internal/world/maploader"
)

type fakeGeoM struct{}

func (fakeGeoM) Translate(tx, ty float64) {}
func (fakeGeoM) Scale(sx, sy float64) {}
func (fakeGeoM) Reset() {}

func init() {
	render.NewGeoM = func() render.GeoM {
		return fakeGeoM{}
	}
}

type fakeImage struct {
	w, h  int
	draws int
}

func (f *fakeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.w, f.h)
}

func (f *fakeImage) Size() (int, int) {
	return f.w, f.h
}

func (f *fakeImage) Fill(clr color.Color) {}

func (f *fakeImage) Clear() {}

func (f *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	f.draws++
}

func (f *fakeImage) Dispose() {}

type fakeRenderer struct {
	texts []string
}

func (r *fakeRenderer) NewImage(w, h int) render.Image {
	return &fakeImage{w: w, h: h}
}

func (r *fakeRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {}

func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.texts = append(r.texts, text)
}

func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return 6 * len(text), 13
}

type fakeLoader struct{}

func (fakeLoader) LoadImage(path string) (render.Image, error) {
	return nil, errors.New("not found")
}

type fakeInput struct {
	held map[render.Key]bool
	just map[render.Key]bool
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool {
	return f.held[k]
}

func (f *fakeInput) IsKeyJustPressed(k render.Key) bool {
	return f.just[k]
}

type countingCues struct {
	primary, secondary int
}

func (c *countingCues) Primary() {
	c.primary++
}

func (c *countingCues) Secondary() {
	c.secondary++
}

func newTestGame(t *testing.T) (*Game, *fakeInput, *fakeRenderer, *countingCues) {
	t.Helper()

	maps := maploader.NewCollection()
	maps.Add(&maploader.MapData{Name: "box", Rows: []string{
		"#####",
		"#S..#",
		"#...#",
		"#...#",
		"#####",
	}})
	cfg := *simulation.DefaultConfig()
	cfg.Map = "box"
	session, err := simulation.NewSession(context.Background(), cfg, maps, rand.New(rand.NewSource(1)), logr.Discard())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	r := &fakeRenderer{}
	in := &fakeInput{held: map[render.Key]bool{}, just: map[render.Key]bool{}}
	cues := &countingCues{}
	set := sprites.Load(r, fakeLoader{}, "assets", cfg.TileSize, logr.Discard())
	g := New(session, r, in, input.NewPoller(input.DefaultBindings()), set, cues, logr.Discard())
	return g, in, r, cues
}

func TestUpdateMovesPlayer(t *testing.T) {
	g, in, _, _ := newTestGame(t)
	in.held[render.KeyD] = true

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	p := g.Session.Player()
	if p.Pos.X != 34 || p.Pos.Y != 32 {
		t.Errorf("Expected player at (34, 32), got (%v, %v)", p.Pos.X, p.Pos.Y)
	}
	if p.Facing != entity.DirRight {
		t.Errorf("Expected facing right, got %v", p.Facing)
	}
	if got, want := g.HUDText(), "right  walk  x:34.0 y:32.0"; got != want {
		t.Errorf("Expected HUD %q, got %q", want, got)
	}
}

func TestEscapeQuits(t *testing.T) {
	g, in, _, _ := newTestGame(t)
	in.just[render.KeyEscape] = true

	if err := g.Update(); !errors.Is(err, render.ErrQuit) {
		t.Fatalf("Expected ErrQuit, got %v", err)
	}
	if g.Session.Ticks() != 0 {
		t.Errorf("Expected no tick after quit, got %d", g.Session.Ticks())
	}
}

func TestSignalsPlayCuesOnPress(t *testing.T) {
	g, in, _, cues := newTestGame(t)
	in.held[render.KeySpace] = true

	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if cues.primary != 1 {
		t.Errorf("Expected 1 primary cue while held, got %d", cues.primary)
	}
	if len(g.Messages) != 1 {
		t.Errorf("Expected 1 message, got %d", len(g.Messages))
	}

	in.held[render.KeySpace] = false
	in.held[render.KeyY] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if cues.secondary != 1 {
		t.Errorf("Expected 1 secondary cue, got %d", cues.secondary)
	}
}

func TestMessagesExpire(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	g.ShowMessage("hello")

	for i := 0; i < int(messageDuration*60)+1; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if len(g.Messages) != 0 {
		t.Errorf("Expected messages to expire, got %d", len(g.Messages))
	}
}

func TestDrawVisibleTilesAndHUD(t *testing.T) {
	g, _, r, _ := newTestGame(t)
	screen := &fakeImage{w: g.ScreenWidth, h: g.ScreenHeight}

	g.Draw(screen)

	// The 5x5 map fits in the view: every tile plus the player.
	if screen.draws != 26 {
		t.Errorf("Expected 26 draws, got %d", screen.draws)
	}
	if len(r.texts) == 0 || r.texts[len(r.texts)-1] != g.HUDText() {
		t.Errorf("Expected HUD text drawn last, got %v", r.texts)
	}
}

func TestLayout(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 640 || h != 480 {
		t.Errorf("Expected 640x480, got %dx%d", w, h)
	}
}
