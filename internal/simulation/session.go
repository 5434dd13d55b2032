package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"chosenoffset.com/tilewalk/internal/core/camera"
	"chosenoffset.com/tilewalk/internal/entity"
	"chosenoffset.com/tilewalk/internal/input"
	"chosenoffset.com/tilewalk/internal/telemetry"
	"chosenoffset.com/tilewalk/internal/world"
	"chosenoffset.com/tilewalk/internal/world/maploader"
)

// Session owns one run of the simulation: the grid, the player and the
// camera offset derived from them. It is driven from a single goroutine.
type Session struct {
	id     uuid.UUID
	cfg    Config
	grid   *world.Grid
	player *entity.Player
	camera camera.Offset
	spawn  world.Point
	tick   uint64
	log    logr.Logger
}

// TickResult is what a single Tick produced.
type TickResult struct {
	Tick    uint64
	Signals entity.Signals
	Moved   bool
}

// NewRand returns a random source for seed, or a time-seeded one for 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewSession loads the configured map, picks a spawn with rng and places
// the player there. A missing map or invalid config aborts; a map without
// spawn tiles logs a warning and starts at the origin.
func NewSession(ctx context.Context, cfg Config, maps *maploader.Collection, rng *rand.Rand, log logr.Logger) (*Session, error) {
	_, span := telemetry.Tracer("simulation").Start(ctx, "session.start")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	grid, err := maps.Lookup(cfg.Map)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	id := uuid.New()
	log = log.WithValues("session", id.String())

	spawn, err := world.SelectSpawn(grid, cfg.TileSize, rng)
	if errors.Is(err, world.ErrNoSpawnFound) {
		log.Info("no spawn tiles found, starting at origin", "warning", "no spawn tiles", "map", cfg.Map)
		span.SetAttributes(attribute.String("warning", "no spawn tiles, using origin"))
	}

	w, h := cfg.PlayerSize()
	speeds := entity.Speeds{Walk: cfg.WalkSpeed, Sprint: cfg.SprintSpeed}
	s := &Session{
		id:     id,
		cfg:    cfg,
		grid:   grid,
		player: entity.NewPlayer(spawn, w, h, grid, cfg.TileSize, speeds),
		spawn:  spawn,
		log:    log,
	}
	s.updateCamera()

	span.SetAttributes(
		attribute.String("session.id", id.String()),
		attribute.String("map.name", cfg.Map),
		attribute.Int("map.width", grid.Width()),
		attribute.Int("map.height", grid.Height()),
		attribute.Float64("spawn.x", spawn.X),
		attribute.Float64("spawn.y", spawn.Y),
	)
	log.Info("session started",
		"map", cfg.Map,
		"width", grid.Width(),
		"height", grid.Height(),
		"spawnX", spawn.X,
		"spawnY", spawn.Y,
	)

	return s, nil
}

// Tick advances the simulation one step from the input snapshot.
func (s *Session) Tick(in input.State) TickResult {
	s.tick++
	before := s.player.Pos

	sig := s.player.HandleInput(in)
	s.player.Update()
	s.updateCamera()

	if sig.Primary {
		s.log.V(1).Info("primary action pressed", "tick", s.tick)
	}
	if sig.Secondary {
		s.log.V(1).Info("secondary action pressed", "tick", s.tick)
	}

	return TickResult{
		Tick:    s.tick,
		Signals: sig,
		Moved:   s.player.Pos != before,
	}
}

func (s *Session) updateCamera() {
	mapW, mapH := s.grid.PixelSize(s.cfg.TileSize)
	focusX, focusY := s.cfg.CameraFocus()
	s.camera = camera.Follow(camera.Params{
		PlayerX: s.player.Pos.X,
		PlayerY: s.player.Pos.Y,
		PlayerW: s.player.Width,
		PlayerH: s.player.Height,
		MapW:    mapW,
		MapH:    mapH,
		ViewW:   float64(s.cfg.ViewportWidth),
		ViewH:   float64(s.cfg.ViewportHeight),
		FocusX:  focusX,
		FocusY:  focusY,
	})
}

// Resize changes the viewport and recomputes the camera for it.
func (s *Session) Resize(viewW, viewH int) {
	if viewW <= 0 || viewH <= 0 {
		return
	}
	s.cfg.ViewportWidth = viewW
	s.cfg.ViewportHeight = viewH
	s.updateCamera()
}

// ID returns the session identifier used in logs and traces.
func (s *Session) ID() uuid.UUID { return s.id }

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Grid returns the read-only map grid.
func (s *Session) Grid() *world.Grid { return s.grid }

// Player returns the player. Renderers must treat it as read-only.
func (s *Session) Player() *entity.Player { return s.player }

// Camera returns the offset computed on the last tick.
func (s *Session) Camera() camera.Offset { return s.camera }

// Spawn returns the position the player started at.
func (s *Session) Spawn() world.Point { return s.spawn }

// Ticks returns how many ticks have run.
func (s *Session) Ticks() uint64 { return s.tick }

// PlayerScreenPos returns where the player's top-left lands on screen.
func (s *Session) PlayerScreenPos() (x, y float64) {
	return s.camera.ToScreen(s.player.Pos.X, s.player.Pos.Y)
}
