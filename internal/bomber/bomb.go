package bomber

import (
	"github.com/vovakirdan/citybomber/internal/config"
	"github.com/vovakirdan/citybomber/internal/core"
)

// Bomb is one slot of the fixed bomb pool.
// Position and target are only meaningful while Falling.
type Bomb struct {
	Slot      int
	X, Y      int
	Falling   bool
	HasTarget bool
	Target    int // Index into the city, valid when HasTarget

	cfg *config.BomberConfig
}

// NewBomb creates an idle bomb for the given pool slot.
func NewBomb(slot int, cfg *config.BomberConfig) Bomb {
	return Bomb{Slot: slot, cfg: cfg}
}

// Rect returns the bomb's bounding box.
func (b *Bomb) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.cfg.Bomb.Width, b.cfg.Bomb.Height)
}

// Drop releases the bomb from under the plane and aims it at the building
// below, if any. It returns false and does nothing if the bomb is already falling.
func (b *Bomb) Drop(p *Plane, city []Building, notify Notify) bool {
	if b.Falling {
		return false
	}

	b.Falling = true
	b.X = p.X + (b.cfg.Plane.Width-b.cfg.Bomb.Width)/2
	b.Y = p.Y + b.cfg.Plane.Height
	b.HasTarget = false
	b.Target = 0

	// A bomb wider than the gap can straddle two columns; the later one wins.
	span := b.Rect()
	for i := range city {
		column := core.NewRect(city[i].X(), 0, b.cfg.City.BuildingWidth, b.cfg.Playfield.Height)
		if span.OverlapsX(column) {
			b.HasTarget = true
			b.Target = i
		}
	}

	building := -1
	if b.HasTarget {
		building = city[b.Target].Column
	}
	notify.emit(core.Event{Kind: core.EventBombDropped, Bomb: b.Slot, Building: building})
	return true
}

// Move advances a falling bomb one step. A bomb that would reach the ground
// is resolved as a miss.
func (b *Bomb) Move(notify Notify) {
	if !b.Falling {
		return
	}

	step := b.cfg.Bomb.FallStep()
	if b.Y+step < b.cfg.Playfield.Height {
		b.Y += step
		return
	}

	b.clear()
	notify.emit(core.Event{Kind: core.EventBombMissed, Bomb: b.Slot, Building: -1})
}

// spend resolves the bomb after it detonated against a building.
func (b *Bomb) spend(building int, notify Notify) {
	b.clear()
	notify.emit(core.Event{Kind: core.EventBombSpent, Bomb: b.Slot, Building: building})
}

func (b *Bomb) clear() {
	b.Falling = false
	b.HasTarget = false
	b.Target = 0
}

// Draw renders the bomb while it is falling.
func (b *Bomb) Draw(c core.Canvas) {
	if !b.Falling {
		return
	}
	c.FillRect(b.Rect(), bombColor)
}
