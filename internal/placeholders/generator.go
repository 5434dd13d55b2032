// Package placeholders draws simple stand-in sprites so the game runs
// before real art exists.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"chosenoffset.com/tilewalk/internal/entity"
	"chosenoffset.com/tilewalk/internal/render/sprites"
	"chosenoffset.com/tilewalk/internal/world"
)

// TileSize is the standard size for placeholder tiles
const TileSize = 32

// ColorPalette defines colors for each tile kind and the player.
var ColorPalette = struct {
	Grass  color.RGBA
	Wall   color.RGBA
	Stairs color.RGBA
	Door   color.RGBA
	Spawn  color.RGBA
	Player color.RGBA
	Border color.RGBA
}{
	Grass:  color.RGBA{60, 130, 60, 255},   // Muted green
	Wall:   color.RGBA{130, 125, 115, 255}, // Light stone
	Stairs: color.RGBA{150, 120, 80, 255},  // Worn wood
	Door:   color.RGBA{110, 70, 40, 255},   // Dark wood
	Spawn:  color.RGBA{70, 110, 180, 255},  // Blue marker
	Player: color.RGBA{0, 255, 100, 255},   // Bright green
	Border: color.RGBA{200, 200, 200, 255}, // Light gray
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidTile(fillColor)

	for i := 0; i < borderWidth; i++ {
		for x := 0; x < TileSize; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, TileSize-1-i, borderColor)
		}
		for y := 0; y < TileSize; y++ {
			img.Set(i, y, borderColor)
			img.Set(TileSize-1-i, y, borderColor)
		}
	}

	return img
}

// CreatePatternedTile creates a tile with a simple pattern
func CreatePatternedTile(baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(baseColor)

	switch pattern {
	case "stripes":
		// Horizontal steps
		for y := 0; y < TileSize; y += 6 {
			for x := 0; x < TileSize; x++ {
				img.Set(x, y, patternColor)
			}
		}
	case "dots":
		quarter := TileSize / 4
		threeQuarter := 3 * TileSize / 4
		dots := []image.Point{{quarter, quarter}, {threeQuarter, quarter}, {quarter, threeQuarter}, {threeQuarter, threeQuarter}}
		for _, p := range dots {
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					img.Set(p.X+dx, p.Y+dy, patternColor)
				}
			}
		}
	case "cross":
		mid := TileSize / 2
		for i := 2; i < TileSize-2; i++ {
			img.Set(mid, i, patternColor)
			img.Set(i, mid, patternColor)
		}
	case "bricks":
		for y := 0; y < TileSize; y += 8 {
			for x := 0; x < TileSize; x++ {
				img.Set(x, y, patternColor)
			}
			offset := 0
			if (y/8)%2 == 1 {
				offset = 8
			}
			for x := offset; x < TileSize; x += 16 {
				for dy := 0; dy < 8 && y+dy < TileSize; dy++ {
					img.Set(x, y+dy, patternColor)
				}
			}
		}
	}

	return img
}

// CreateArrow creates a transparent tile with a filled triangle pointing in dir.
func CreateArrow(fillColor color.RGBA, dir entity.Direction) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	margin := 4
	span := TileSize - 2*margin
	for i := 0; i < span; i++ {
		// Row i of an upward triangle is centred and grows by one pixel per side.
		half := i / 2
		for j := -half; j <= half; j++ {
			along := margin + i
			across := TileSize/2 + j
			switch dir {
			case entity.DirUp:
				img.Set(across, along, fillColor)
			case entity.DirDown:
				img.Set(across, TileSize-1-along, fillColor)
			case entity.DirLeft:
				img.Set(along, across, fillColor)
			case entity.DirRight:
				img.Set(TileSize-1-along, across, fillColor)
			}
		}
	}

	return img
}

// TileImage returns the placeholder for a tile kind.
func TileImage(kind world.TileKind) *image.RGBA {
	switch kind {
	case world.TileWall:
		return CreatePatternedTile(ColorPalette.Wall, Darken(ColorPalette.Wall, 0.7), "bricks")
	case world.TileStairs:
		return CreatePatternedTile(ColorPalette.Stairs, Darken(ColorPalette.Stairs, 0.6), "stripes")
	case world.TileDoor:
		return CreateBorderedTile(ColorPalette.Door, Lighten(ColorPalette.Door, 0.3), 3)
	case world.TileSpawn:
		return CreatePatternedTile(ColorPalette.Spawn, ColorPalette.Border, "cross")
	default:
		return CreatePatternedTile(ColorPalette.Grass, Lighten(ColorPalette.Grass, 0.2), "dots")
	}
}

// GenerateAndSave writes every sprite the game loads into dir and returns
// the paths written.
func GenerateAndSave(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset directory %s: %w", dir, err)
	}

	var written []string
	for kind, file := range sprites.TileFiles {
		path := filepath.Join(dir, file)
		if err := SavePNG(TileImage(kind), path); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	for facing, file := range sprites.PlayerFiles {
		path := filepath.Join(dir, file)
		if err := SavePNG(CreateArrow(ColorPalette.Player, facing), path); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
