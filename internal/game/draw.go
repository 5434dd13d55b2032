package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/tilewalk/internal/render"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	hudPanelColor   = color.RGBA{0, 0, 0, 160}
	hudTextColor    = color.RGBA{255, 255, 255, 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	g.drawTiles(screen)
	g.drawPlayer(screen)
	g.drawUI(screen)
	g.drawHUD(screen)
}

// drawTiles draws only the tiles the camera can see.
func (g *Game) drawTiles(screen render.Image) {
	grid := g.Session.Grid()
	cam := g.Session.Camera()
	tileSize := g.Session.Config().TileSize

	startCol, endCol, startRow, endRow := cam.VisibleTiles(tileSize, g.ScreenWidth, g.ScreenHeight, grid.Width(), grid.Height())
	for row := startRow; row < endRow; row++ {
		for col := startCol; col < endCol; col++ {
			img := g.Sprites.Tile(grid.TileAt(col, row))
			x, y := cam.ToScreen(float64(col*tileSize), float64(row*tileSize))
			g.Sprites.Draw(screen, img, x, y)
		}
	}
}

func (g *Game) drawPlayer(screen render.Image) {
	x, y := g.Session.PlayerScreenPos()
	g.Sprites.Draw(screen, g.Sprites.Player(g.Session.Player().Facing), x, y)
}

func (g *Game) drawUI(screen render.Image) {
	// Draw on-screen messages
	y := 40.0
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 10, int(y), color.RGBA{255, 255, 255, alpha}, 1.0)
		y += 20
	}
}

// HUDText is the status line drawn in the top-left corner.
func (g *Game) HUDText() string {
	p := g.Session.Player()
	return fmt.Sprintf("%s  %s  x:%.1f y:%.1f", p.Facing, p.Mode, p.Pos.X, p.Pos.Y)
}

func (g *Game) drawHUD(screen render.Image) {
	text := g.HUDText()
	w, h := g.Renderer.MeasureText(text, 1.0)
	g.Renderer.FillRect(screen, 4, 4, float32(w+12), float32(h+8), hudPanelColor)
	g.Renderer.DrawText(screen, text, 10, 8, hudTextColor, 1.0)
}
