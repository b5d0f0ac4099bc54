package bomber

import (
	"github.com/vovakirdan/citybomber/internal/config"
	"github.com/vovakirdan/citybomber/internal/core"
)

// Plane is the bomber sweeping across the city row by row.
type Plane struct {
	X, Y     int
	Velocity int
	Landed   bool
	Crashed  bool

	cfg *config.BomberConfig
}

// NewPlane places the plane at (x, y).
func NewPlane(x, y int, cfg *config.BomberConfig) Plane {
	return Plane{X: x, Y: y, Velocity: cfg.Plane.Velocity, cfg: cfg}
}

// Done reports whether the plane has landed or crashed.
func (p *Plane) Done() bool {
	return p.Landed || p.Crashed
}

// Move flies the plane one step to the right, wrapping to the next row down at
// the right edge, then checks for a crash and for landing.
func (p *Plane) Move(city []Building, notify Notify) {
	width := p.cfg.Playfield.Width
	height := p.cfg.Playfield.Height
	planeH := p.cfg.Plane.Height

	if p.X+p.Velocity >= width {
		p.X = 0
		p.Y = core.Clamp(p.Y+p.cfg.Plane.RowDrop(), 0, height-planeH)
	} else {
		p.X += p.Velocity
	}

	front := p.X + p.cfg.Plane.Width
	bottom := p.Y + planeH
	for i := range city {
		b := &city[i]
		if !b.Standing() {
			continue
		}
		left := b.X()
		right := left + p.cfg.City.BuildingWidth
		if front >= left && front <= right && bottom >= b.Roofline() {
			p.Crashed = true
			notify.emit(core.Event{Kind: core.EventPlaneCrashed, Bomb: -1, Building: b.Column})
			return
		}
	}

	if p.Y+p.cfg.Plane.RowDrop() > height {
		p.Landed = true
		notify.emit(core.Event{Kind: core.EventPlaneLanded, Bomb: -1, Building: -1})
	}
}

// Draw renders the plane. The marker under the fuselage shows where a bomb
// will leave from, gray when the pool is empty.
func (p *Plane) Draw(c core.Canvas, bombReady bool) {
	w, h := p.cfg.Plane.Width, p.cfg.Plane.Height
	sx := func(v int) int { return p.X + v*w/50 }
	sy := func(v int) int { return p.Y + v*h/30 }

	// Tail
	c.FillPolygon([]core.Point{
		core.Pt(sx(0), sy(0)),
		core.Pt(sx(0), sy(20)),
		core.Pt(sx(13), sy(24)),
		core.Pt(sx(13), sy(0)),
	}, planeColor)

	// Body
	c.FillRect(core.NewRect(sx(13), sy(13), 30*w/50, 12*h/30), planeColor)

	// Nose
	c.FillPolygon([]core.Point{
		core.Pt(sx(43), sy(13)),
		core.Pt(sx(43), sy(24)),
		core.Pt(sx(50), sy(24)),
	}, planeColor)

	marker := bombColor
	if !bombReady {
		marker = core.ColorGray
	}
	c.FillRect(core.NewRect(p.X+w-20*w/50, p.Y+h-10*h/30, 8*w/50, 5*h/30), marker)
}
