// Package simulation provides configuration and the per-tick session loop.
// Config is loaded once at start and passed by value; nothing reads globals.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config holds the session constants.
type Config struct {
	// Grid
	TileSize int `json:"tile_size"` // Tile edge length in pixels

	// Viewport
	ViewportWidth  int     `json:"viewport_width"`
	ViewportHeight int     `json:"viewport_height"`
	CameraFocusX   float64 `json:"camera_focus_x"` // Screen point the player centre tracks; 0 means viewport centre
	CameraFocusY   float64 `json:"camera_focus_y"`

	// Movement
	WalkSpeed    float64 `json:"walk_speed"`   // Pixels per tick
	SprintSpeed  float64 `json:"sprint_speed"` // Pixels per tick while sprinting
	PlayerWidth  int     `json:"player_width"` // 0 means tile size
	PlayerHeight int     `json:"player_height"`

	// Session
	Map     string `json:"map"`      // Name of the map to load
	MapsDir string `json:"maps_dir"` // Extra map files; builtin maps are always available
	Seed    int64  `json:"seed"`     // 0 picks a time-based seed

	// Platform
	FPS          int                 `json:"fps"`
	Backend      string              `json:"backend"` // "ebiten" or "term"
	AssetDir     string              `json:"asset_dir"`
	Audio        bool                `json:"audio"`
	Keys         map[string][]string `json:"keys"` // Action name -> key names, overrides defaults
	LogVerbosity int                 `json:"log_verbosity"`
}

// DefaultConfig returns the stock 640x480 setup with 32px tiles.
func DefaultConfig() *Config {
	return &Config{
		TileSize:       32,
		ViewportWidth:  640,
		ViewportHeight: 480,
		WalkSpeed:      2.0,
		SprintSpeed:    4.0,
		Map:            "map1",
		FPS:            60,
		Backend:        "ebiten",
		AssetDir:       "assets",
		Audio:          true,
	}
}

// LoadConfig loads config from a JSON file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// Validate checks the values a session depends on.
func (c *Config) Validate() error {
	var errs []error
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("invalid tile size: %d", c.TileSize))
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("invalid viewport: %dx%d", c.ViewportWidth, c.ViewportHeight))
	}
	if c.WalkSpeed <= 0 {
		errs = append(errs, fmt.Errorf("invalid walk speed: %v", c.WalkSpeed))
	}
	if c.SprintSpeed < c.WalkSpeed {
		errs = append(errs, fmt.Errorf("sprint speed %v is below walk speed %v", c.SprintSpeed, c.WalkSpeed))
	}
	if c.PlayerWidth < 0 || c.PlayerHeight < 0 {
		errs = append(errs, fmt.Errorf("invalid player size: %dx%d", c.PlayerWidth, c.PlayerHeight))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("invalid fps: %d", c.FPS))
	}
	if c.Map == "" {
		errs = append(errs, errors.New("map name is required"))
	}
	return errors.Join(errs...)
}

// PlayerSize returns the player box, defaulting each side to the tile size.
func (c *Config) PlayerSize() (w, h float64) {
	w, h = float64(c.PlayerWidth), float64(c.PlayerHeight)
	if w == 0 {
		w = float64(c.TileSize)
	}
	if h == 0 {
		h = float64(c.TileSize)
	}
	return w, h
}

// CameraFocus returns the focus point, defaulting to the viewport centre.
func (c *Config) CameraFocus() (x, y float64) {
	x, y = c.CameraFocusX, c.CameraFocusY
	if x == 0 {
		x = float64(c.ViewportWidth / 2)
	}
	if y == 0 {
		y = float64(c.ViewportHeight / 2)
	}
	return x, y
}
