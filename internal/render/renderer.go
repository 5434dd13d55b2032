// Package render defines the platform boundary: drawing surfaces, key
// polling and the frame loop. The simulation never imports a backend directly.
package render

import (
	"errors"
	"image"
	"image/color"
	"strings"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// InputManager handles keyboard input from the platform.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds.
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyY
	KeyQ
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyShiftLeft
	KeyShiftRight
	KeySpace
	KeyEscape
	keyCount
)

var keyNames = map[string]Key{
	"w":           KeyW,
	"a":           KeyA,
	"s":           KeyS,
	"d":           KeyD,
	"y":           KeyY,
	"q":           KeyQ,
	"up":          KeyUp,
	"down":        KeyDown,
	"left":        KeyLeft,
	"right":       KeyRight,
	"shift_left":  KeyShiftLeft,
	"shift_right": KeyShiftRight,
	"space":       KeySpace,
	"escape":      KeyEscape,
}

// ParseKey resolves a config key name such as "w" or "shift_left".
func ParseKey(name string) (Key, bool) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// AllKeys returns every bindable key.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyUnknown + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// String returns the config name of the key.
func (k Key) String() string {
	for name, key := range keyNames {
		if key == k {
			return name
		}
	}
	return "unknown"
}

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// ErrQuit is returned from Game.Update to stop the engine cleanly.
var ErrQuit = errors.New("quit")
