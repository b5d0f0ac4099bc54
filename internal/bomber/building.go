package bomber

import (
	"math/rand"

	"github.com/vovakirdan/citybomber/internal/config"
	"github.com/vovakirdan/citybomber/internal/core"
)

// Window placement inside a level, in units of a 32x30 level.
var windowOffsets = [...]core.Point{{X: 4, Y: 4}, {X: 20, Y: 4}, {X: 4, Y: 20}, {X: 20, Y: 20}}

const windowSize = 6

// Building is one column of the skyline.
type Building struct {
	Column     int        // Position in the city, fixes the horizontal span
	Levels     int        // Levels still standing
	MaxDestroy int        // Levels one bomb may take off before it is spent
	Destroyed  int        // Levels taken off by the bomb currently working on it
	Body       core.Color // Wall color
	Window     core.Color // Always differs from Body
	ShowRoof   bool       // Cleared once the building is first hit

	cfg *config.BomberConfig
}

// NewBuilding creates a building of random height and colors.
// The palette must hold at least two distinct colors.
func NewBuilding(column int, rng *rand.Rand, cfg *config.BomberConfig, palette []core.Color) Building {
	b := Building{
		Column:     column,
		Levels:     2 + rng.Intn(cfg.MaxLevels()-2),
		MaxDestroy: cfg.City.MaxDestroy,
		Body:       palette[rng.Intn(len(palette))],
		ShowRoof:   true,
		cfg:        cfg,
	}

	b.Window = b.Body
	for b.Window == b.Body {
		b.Window = palette[rng.Intn(len(palette))]
	}
	return b
}

// X returns the left edge of the building's column.
func (b *Building) X() int {
	return b.cfg.City.ColumnX(b.Column)
}

// Roofline returns the y coordinate of the top of the standing levels.
// A destroyed building's roofline is the ground.
func (b *Building) Roofline() int {
	return b.cfg.Playfield.Height - b.Levels*b.cfg.City.LevelHeight
}

// Rect returns the standing part of the building.
func (b *Building) Rect() core.Rect {
	return core.NewRect(b.X(), b.Roofline(), b.cfg.City.BuildingWidth, b.Levels*b.cfg.City.LevelHeight)
}

// Standing reports whether any level is left.
func (b *Building) Standing() bool {
	return b.Levels > 0
}

// ApplyBombHit lets a falling bomb eat into the building. It is called once per
// tick for each bomb aimed at this building; nothing happens until the bomb's
// bottom edge reaches the roofline.
func (b *Building) ApplyBombHit(bomb *Bomb, notify Notify) {
	if !b.Standing() || !bomb.Falling {
		return
	}
	if bomb.Rect().Bottom() < b.Roofline() {
		return
	}

	b.ShowRoof = false

	if b.Destroyed < b.MaxDestroy {
		b.Levels--
		b.Destroyed++
		notify.emit(core.Event{Kind: core.EventLevelDestroyed, Bomb: bomb.Slot, Building: b.Column})
		if b.Levels == 0 {
			bomb.spend(b.Column, notify)
		}
		return
	}

	// The bomb has used up its budget on this building
	b.Destroyed = 0
	bomb.spend(b.Column, notify)
}

// Draw renders each remaining level, topped by a pyramid roof until the first hit.
func (b *Building) Draw(c core.Canvas) {
	width := b.cfg.City.BuildingWidth
	levelH := b.cfg.City.LevelHeight
	ground := b.cfg.Playfield.Height
	x := b.X()

	for level := 1; level <= b.Levels; level++ {
		top := ground - level*levelH

		if level == b.Levels && b.ShowRoof {
			c.FillPolygon([]core.Point{
				core.Pt(x+width/2, top),
				core.Pt(x+width, top+levelH),
				core.Pt(x, top+levelH),
			}, b.Body)
			continue
		}

		c.FillRect(core.NewRect(x, top, width, levelH), b.Body)
		for _, off := range windowOffsets {
			c.FillRect(core.NewRect(
				x+off.X*width/32,
				top+off.Y*levelH/30,
				windowSize*width/32,
				windowSize*levelH/30,
			), b.Window)
		}
	}
}
