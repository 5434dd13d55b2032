// Package maploader reads named map definitions and builds world grids from them.
package maploader

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/tilewalk/internal/world"
)

var (
	// ErrMapNotFound is returned when a map name is not in the collection.
	ErrMapNotFound = errors.New("map not found")
	// ErrMalformedMap is returned for non-rectangular maps or unknown tile codes.
	ErrMalformedMap = errors.New("malformed map")
)

//go:embed maps/*.json
var builtinFS embed.FS

// MapData is the on-disk map definition. A map gives its cells either as
// tile codes in Tiles ([row][col], e.g. "wall") or as glyph strings in Rows.
type MapData struct {
	Name  string     `json:"name"`
	Tiles [][]string `json:"tiles,omitempty"`
	Rows  []string   `json:"rows,omitempty"`
}

// Collection maps map names to their definitions.
type Collection struct {
	maps map[string]*MapData
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{maps: make(map[string]*MapData)}
}

// Builtin returns the maps compiled into the binary.
func Builtin() (*Collection, error) {
	c := NewCollection()
	entries, err := builtinFS.ReadDir("maps")
	if err != nil {
		return nil, fmt.Errorf("failed to read builtin maps: %w", err)
	}
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("maps/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read builtin map %s: %w", entry.Name(), err)
		}
		if err := c.Parse(entry.Name(), data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add registers a definition, replacing any map with the same name.
func (c *Collection) Add(data *MapData) {
	c.maps[data.Name] = data
}

// Parse decodes a JSON map definition and adds it. source is only used in errors.
func (c *Collection) Parse(source string, data []byte) error {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return fmt.Errorf("failed to parse map file %s: %w", source, err)
	}
	if mapData.Name == "" {
		mapData.Name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}
	c.Add(&mapData)
	return nil
}

// LoadFile reads a single JSON map file into the collection.
func (c *Collection) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read map file %s: %w", path, err)
	}
	return c.Parse(path, data)
}

// LoadDir adds every *.json file in dir. Hidden files are skipped.
func (c *Collection) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read maps directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if err := c.LoadFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the registered map names in sorted order.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.maps))
	for name := range c.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the grid for the named map.
func (c *Collection) Lookup(name string) (*world.Grid, error) {
	data, ok := c.maps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMapNotFound, name)
	}
	grid, err := data.Grid()
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %q: %w", name, err)
	}
	return grid, nil
}

// Grid converts the definition into a world grid.
func (m *MapData) Grid() (*world.Grid, error) {
	var (
		grid *world.Grid
		err  error
	)

	switch {
	case len(m.Tiles) > 0 && len(m.Rows) > 0:
		return nil, fmt.Errorf("%w: both tiles and rows given", ErrMalformedMap)
	case len(m.Rows) > 0:
		grid, err = world.GridFromRows(m.Rows...)
	default:
		cells, cerr := decodeTiles(m.Tiles)
		if cerr != nil {
			return nil, cerr
		}
		grid, err = world.NewGrid(cells)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMap, err)
	}
	return grid, nil
}

func decodeTiles(tiles [][]string) ([][]world.TileKind, error) {
	cells := make([][]world.TileKind, len(tiles))
	for y, row := range tiles {
		cells[y] = make([]world.TileKind, len(row))
		for x, code := range row {
			k, ok := world.ParseTileKind(code)
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile code %q at (%d, %d)", ErrMalformedMap, code, x, y)
			}
			cells[y][x] = k
		}
	}
	return cells, nil
}
