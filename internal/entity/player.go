// Package entity holds the player and its per-tick movement rules.
package entity

import (
	"math"

	"chosenoffset.com/tilewalk/internal/core/collision"
	"chosenoffset.com/tilewalk/internal/input"
	"chosenoffset.com/tilewalk/internal/world"
)

// Direction is the way the player is facing.
type Direction uint8

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// SpeedMode selects between walk and sprint speed.
type SpeedMode uint8

const (
	SpeedWalk SpeedMode = iota
	SpeedSprint
)

func (m SpeedMode) String() string {
	if m == SpeedSprint {
		return "sprint"
	}
	return "walk"
}

// Speeds are the per-tick displacement magnitudes in pixels.
type Speeds struct {
	Walk   float64
	Sprint float64
}

// Signals are the action buttons pressed this tick. They carry no game
// state; the surrounding application decides what they trigger.
type Signals struct {
	Primary   bool
	Secondary bool
}

// Any reports whether any signal fired.
func (s Signals) Any() bool {
	return s.Primary || s.Secondary
}

// Player is the single moving entity. Pos is the top-left of its bounding box.
type Player struct {
	Pos    world.Point
	Width  float64
	Height float64
	Facing Direction
	Mode   SpeedMode

	// Unit intent per axis, -1, 0 or +1, set by HandleInput.
	IntentX, IntentY int

	speeds   Speeds
	grid     *world.Grid
	tileSize int
}

// NewPlayer places a player at pos on grid, facing down and walking.
func NewPlayer(pos world.Point, width, height float64, grid *world.Grid, tileSize int, speeds Speeds) *Player {
	return &Player{
		Pos:      pos,
		Width:    width,
		Height:   height,
		Facing:   DirDown,
		Mode:     SpeedWalk,
		speeds:   speeds,
		grid:     grid,
		tileSize: tileSize,
	}
}

// HandleInput sets speed mode, intent and facing from the snapshot.
// Right overrides left and down overrides up. Facing follows the last
// held direction in the order left, right, up, down, and is kept when
// nothing is held.
func (p *Player) HandleInput(in input.State) Signals {
	if in.IsActive(input.ActionSprint) {
		p.Mode = SpeedSprint
	} else {
		p.Mode = SpeedWalk
	}

	p.IntentX, p.IntentY = 0, 0

	if in.IsActive(input.ActionLeft) {
		p.IntentX = -1
		p.Facing = DirLeft
	}
	if in.IsActive(input.ActionRight) {
		p.IntentX = 1
		p.Facing = DirRight
	}
	if in.IsActive(input.ActionUp) {
		p.IntentY = -1
		p.Facing = DirUp
	}
	if in.IsActive(input.ActionDown) {
		p.IntentY = 1
		p.Facing = DirDown
	}

	return Signals{
		Primary:   in.JustPressed(input.ActionPrimary),
		Secondary: in.JustPressed(input.ActionSecondary),
	}
}

// Speed returns the displacement magnitude for the current mode.
func (p *Player) Speed() float64 {
	if p.Mode == SpeedSprint {
		return p.speeds.Sprint
	}
	return p.speeds.Walk
}

// Displacement returns the move for this tick before collision.
// Diagonal moves are scaled so the vector length equals Speed.
func (p *Player) Displacement() (dx, dy float64) {
	speed := p.Speed()
	ix, iy := float64(p.IntentX), float64(p.IntentY)

	if p.IntentX != 0 && p.IntentY != 0 {
		scale := speed / math.Sqrt(ix*ix+iy*iy)
		return ix * scale, iy * scale
	}
	return ix * speed, iy * speed
}

// Update moves the player one tick. Each axis is tested on its own so the
// player slides along walls, then the position is clamped to the map.
func (p *Player) Update() {
	dx, dy := p.Displacement()

	if dx != 0 || dy != 0 {
		if !p.blocked(p.Pos.X+dx, p.Pos.Y) {
			p.Pos.X += dx
		}
		if !p.blocked(p.Pos.X, p.Pos.Y+dy) {
			p.Pos.Y += dy
		}
	}

	p.clamp()
}

// Center returns the centre of the bounding box.
func (p *Player) Center() world.Point {
	return world.Point{X: p.Pos.X + p.Width/2, Y: p.Pos.Y + p.Height/2}
}

func (p *Player) blocked(x, y float64) bool {
	return collision.BlockedAt(p.grid, p.tileSize, x, y, p.Width, p.Height)
}

func (p *Player) clamp() {
	mapW, mapH := p.grid.PixelSize(p.tileSize)
	p.Pos.X = math.Max(0, math.Min(p.Pos.X, mapW-p.Width))
	p.Pos.Y = math.Max(0, math.Min(p.Pos.Y, mapH-p.Height))
}
