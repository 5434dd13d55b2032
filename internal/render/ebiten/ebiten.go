// Package ebiten implements the render boundary on top of Ebitengine.
package ebiten

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"chosenoffset.com/tilewalk/internal/render"
)

// baseFontSize is the text size at scale 1.
const baseFontSize = 14

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	fontOnce sync.Once
	fontSrc  *text.GoTextFaceSource
}

// init sets up the global functions for the ebiten render.
func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// NewRenderer creates a new Ebiten-based render.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// FillRect draws a filled rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledRect(ebitenImg, x, y, width, height, clr, false)
}

// face returns the Go Regular face at the given scale, or nil if the
// embedded font could not be parsed.
func (r *EbitenRenderer) face(scale float64) *text.GoTextFace {
	r.fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err == nil {
			r.fontSrc = src
		}
	})
	if r.fontSrc == nil {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	return &text.GoTextFace{Source: r.fontSrc, Size: baseFontSize * scale}
}

// DrawText draws text with its top-left corner at (x, y).
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	ebitenImg := dst.(*EbitenImage).img

	face := r.face(scale)
	if face == nil {
		ebitenutil.DebugPrintAt(ebitenImg, str, x, y)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(ebitenImg, str, face, op)
}

// MeasureText measures the width and height of text with the given scale.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	face := r.face(scale)
	if face == nil {
		// Debug font is approximately 6x13 pixels per character
		return int(float64(len(str)) * 6 * scale), int(13 * scale)
	}
	w, h := text.Measure(str, face, face.Size*1.2)
	return int(w), int(h)
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawImage draws the source image onto this image.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := src.(*EbitenImage).img

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.GeoM != nil {
		ebitenGeoM := opts.GeoM.(*EbitenGeoM)
		ebitenOpts.GeoM = ebitenGeoM.geoM
	}

	i.img.DrawImage(srcImg, ebitenOpts)
}

// EbitenGeoM wraps ebiten's GeoM to implement the render.GeoM interface.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM creates a new geometric transformation matrix.
func NewGeoM() render.GeoM {
	return &EbitenGeoM{geoM: ebiten.GeoM{}}
}

// Translate shifts the image by (tx, ty).
func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// Scale scales the image by (sx, sy).
func (g *EbitenGeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// Reset resets the matrix to identity.
func (g *EbitenGeoM) Reset() {
	g.geoM.Reset()
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyY:
		return ebiten.KeyY, true
	case render.KeyQ:
		return ebiten.KeyQ, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyShiftLeft:
		return ebiten.KeyShiftLeft, true
	case render.KeyShiftRight:
		return ebiten.KeyShiftRight, true
	case render.KeySpace:
		return ebiten.KeySpace, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// EbitenResourceLoader implements the ResourceLoader interface using Ebiten.
type EbitenResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() render.ResourceLoader {
	return &EbitenResourceLoader{}
}

// LoadImage loads an image from the specified file path.
func (l *EbitenResourceLoader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &EbitenImage{img: img}, nil
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetTPS sets the number of Update calls per second.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game. render.ErrQuit ends the loop without error.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
