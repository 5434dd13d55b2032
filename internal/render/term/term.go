// Package term runs the game in a terminal with tcell, one tile per cell.
package term

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"

	"chosenoffset.com/tilewalk/internal/entity"
	"chosenoffset.com/tilewalk/internal/game"
	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/world"
)

var playerGlyphs = map[entity.Direction]rune{
	entity.DirUp:    '^',
	entity.DirDown:  'v',
	entity.DirLeft:  '<',
	entity.DirRight: '>',
}

var (
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// NewScreen creates and initializes a terminal screen.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return s, nil
}

// Viewport returns the pixel viewport a screen can show: every row but the
// HUD row, one tile per cell.
func Viewport(screen tcell.Screen, tileSize int) (w, h int) {
	cols, rows := screen.Size()
	return cols * tileSize, max(1, rows-1) * tileSize
}

// Run drives g at fps until ctx is cancelled, the game asks to quit, or
// the user presses Esc, Ctrl+C or q. The caller owns screen.
func Run(ctx context.Context, screen tcell.Screen, g *game.Game, in *InputManager, fps int, log logr.Logger) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	resize(screen, g)
	Draw(screen, g)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					log.Info("quit requested", "ticks", g.Session.Ticks())
					return nil
				}
				in.HandleEvent(ev)
			case *tcell.EventResize:
				resize(screen, g)
				screen.Sync()
			}

		case <-ticker.C:
			err := g.Update()
			in.EndFrame()
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			Draw(screen, g)
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func resize(screen tcell.Screen, g *game.Game) {
	w, h := Viewport(screen, g.Session.Config().TileSize)
	g.Session.Resize(w, h)
	g.ScreenWidth, g.ScreenHeight = w, h
}

// Draw paints the visible tiles, the player glyph and the HUD row.
func Draw(screen tcell.Screen, g *game.Game) {
	screen.Clear()

	s := g.Session
	grid := s.Grid()
	cam := s.Camera()
	ts := float64(s.Config().TileSize)
	cols, rows := screen.Size()
	mapRows := max(1, rows-1)

	for cy := 0; cy < mapRows; cy++ {
		for cx := 0; cx < cols; cx++ {
			wx, wy := cam.ToWorld(float64(cx)*ts, float64(cy)*ts)
			kind := grid.TileAt(int(math.Floor(wx/ts)), int(math.Floor(wy/ts)))
			if kind == world.OutOfBounds {
				continue
			}
			screen.SetContent(cx, cy, kind.Glyph(), nil, tileStyle(kind))
		}
	}

	p := s.Player()
	c := p.Center()
	px, py := cam.ToScreen(c.X, c.Y)
	screen.SetContent(int(math.Floor(px/ts)), int(math.Floor(py/ts)), playerGlyphs[p.Facing], nil, playerStyle)

	if rows > 1 {
		for i, ch := range g.HUDText() {
			if i >= cols {
				break
			}
			screen.SetContent(i, rows-1, ch, nil, hudStyle)
		}
	}

	screen.Show()
}

func tileStyle(kind world.TileKind) tcell.Style {
	switch kind {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileStairs:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case world.TileSpawn:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}
