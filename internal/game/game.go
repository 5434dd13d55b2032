// Package game adapts a simulation session to the render.Game frame loop.
package game

import (
	"github.com/go-logr/logr"

	"chosenoffset.com/tilewalk/internal/input"
	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/render/sprites"
	"chosenoffset.com/tilewalk/internal/simulation"
)

const messageDuration = 1.5

// Game polls input, advances the session once per Update and draws the
// visible part of the world.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Session      *simulation.Session
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Poller       *input.Poller
	Sprites      *sprites.Set
	Cues         Cues // optional

	// UI state
	Messages []Message

	dt  float64
	log logr.Logger
}

// New wires a game around session. cues may be nil.
func New(session *simulation.Session, r render.Renderer, in render.InputManager, poller *input.Poller, set *sprites.Set, cues Cues, log logr.Logger) *Game {
	cfg := session.Config()
	return &Game{
		ScreenWidth:  cfg.ViewportWidth,
		ScreenHeight: cfg.ViewportHeight,
		Session:      session,
		Renderer:     r,
		InputMgr:     in,
		Poller:       poller,
		Sprites:      set,
		Cues:         cues,
		dt:           1.0 / float64(cfg.FPS),
		log:          log,
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.log.Info("quit requested", "ticks", g.Session.Ticks())
		return render.ErrQuit
	}

	g.updateMessages(g.dt)

	res := g.Session.Tick(g.Poller.Poll(g.InputMgr))
	if res.Signals.Primary {
		g.ShowMessage("Primary action")
		if g.Cues != nil {
			g.Cues.Primary()
		}
	}
	if res.Signals.Secondary {
		g.ShowMessage("Secondary action")
		if g.Cues != nil {
			g.Cues.Secondary()
		}
	}

	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
}
