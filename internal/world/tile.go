// Package world provides the tile grid the simulation runs on.
package world

// TileKind identifies what occupies a single grid cell.
type TileKind int8

const (
	// TileFloor is open ground.
	TileFloor TileKind = iota
	// TileWall blocks movement.
	TileWall
	// TileStairs is decorative for now.
	TileStairs
	// TileDoor is decorative for now.
	TileDoor
	// TileSpawn marks a candidate player start cell.
	TileSpawn
)

// OutOfBounds is returned by Grid.TileAt for coordinates outside the grid.
// It is not a kind: Valid reports false for it.
const OutOfBounds TileKind = -1

var tileCodes = map[string]TileKind{
	"floor":  TileFloor,
	"grass":  TileFloor,
	"wall":   TileWall,
	"stairs": TileStairs,
	"door":   TileDoor,
	"spawn":  TileSpawn,
}

// ParseTileKind resolves a map file tile code.
func ParseTileKind(code string) (TileKind, bool) {
	k, ok := tileCodes[code]
	return k, ok
}

// Valid reports whether k is one of the defined kinds.
func (k TileKind) Valid() bool {
	return k >= TileFloor && k <= TileSpawn
}

// IsBlocking returns true if the tile stops movement.
func (k TileKind) IsBlocking() bool {
	return k == TileWall
}

// IsSpawn returns true if the tile is a spawn marker.
func (k TileKind) IsSpawn() bool {
	return k == TileSpawn
}

// String returns the canonical tile code.
func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileStairs:
		return "stairs"
	case TileDoor:
		return "door"
	case TileSpawn:
		return "spawn"
	case OutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

var tileGlyphs = map[rune]TileKind{
	'.': TileFloor,
	'#': TileWall,
	'>': TileStairs,
	'+': TileDoor,
	'S': TileSpawn,
}

// ParseGlyph resolves a single-character map row symbol.
func ParseGlyph(r rune) (TileKind, bool) {
	k, ok := tileGlyphs[r]
	return k, ok
}

// Glyph returns the display character used by text maps and the terminal backend.
func (k TileKind) Glyph() rune {
	switch k {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	case TileStairs:
		return '>'
	case TileDoor:
		return '+'
	case TileSpawn:
		return 'S'
	default:
		return ' '
	}
}
