package bomber

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/citybomber/internal/core"
)

// Colors for game elements.
const (
	skyColor    = core.ColorNavy
	titleColor  = core.ColorBlue
	hudColor    = core.ColorYellow
	planeColor  = core.ColorRed
	bombColor   = core.ColorWhite
	bannerColor = core.ColorOrange
)

// Render draws the game into a terminal screen buffer, scaling the playfield
// to the screen size.
func (g *Game) Render(dst *core.Screen) {
	dst.Fill(skyColor)
	g.Draw(core.NewScreenCanvas(dst, g.cfg.Playfield.Width, g.cfg.Playfield.Height))
}

// Draw renders the whole frame onto any canvas.
func (g *Game) Draw(c core.Canvas) {
	w, h := c.Size()
	if b, ok := c.(core.Backdrop); !ok || !b.HasBackdrop() {
		c.FillRect(core.NewRect(0, 0, w, h), skyColor)
	}

	drawCentered(c, 5, g.cfg.Playfield.Title, titleColor)

	g.plane.Draw(c, g.FallingBombs() < len(g.bombs))
	for i := range g.city {
		g.city[i].Draw(c)
	}
	for i := range g.bombs {
		g.bombs[i].Draw(c)
	}

	g.drawHUD(c)

	switch {
	case g.outcome != core.OutcomeNone:
		g.drawBanner(c, g.endMessage(), fmt.Sprintf("Score: %d", g.score))
	case g.paused:
		g.drawBanner(c, "PAUSED", "Press P to resume")
	}
}

// drawHUD shows the score and the bombs ready to drop.
func (g *Game) drawHUD(c core.Canvas) {
	w, _ := c.Size()
	c.DrawText(10, 5, fmt.Sprintf("Score: %d", g.score), hudColor)

	ready := len(g.bombs) - g.FallingBombs()
	bombs := "Bombs: " + strings.Repeat("*", ready) + strings.Repeat(".", len(g.bombs)-ready)
	c.DrawText(w-c.MeasureText(bombs)-10, 5, bombs, hudColor)
}

// drawBanner writes two centered lines in the middle of the playfield.
func (g *Game) drawBanner(c core.Canvas, title, subtitle string) {
	_, h := c.Size()
	drawCentered(c, h/3, title, bannerColor)
	drawCentered(c, h/3+h/20, subtitle, bannerColor)
}

// drawCentered writes one line of text centered horizontally at y.
func drawCentered(c core.Canvas, y int, text string, col core.Color) {
	w, _ := c.Size()
	c.DrawText((w-c.MeasureText(text))/2, y, text, col)
}

func (g *Game) endMessage() string {
	switch g.outcome {
	case core.OutcomeLanded:
		return "LANDED SAFELY - CITY CLEARED"
	case core.OutcomeCrashed:
		return "CRASHED INTO THE CITY"
	default:
		return "GAME ABANDONED"
	}
}
