package bomber

import (
	"testing"

	"github.com/vovakirdan/citybomber/internal/config"
	"github.com/vovakirdan/citybomber/internal/core"
)

// recordCanvas captures draw calls instead of painting them.
type recordCanvas struct {
	w, h  int
	rects []core.Rect
	polys [][]core.Point
	texts []string
	textX []int
}

func newRecordCanvas() *recordCanvas {
	return &recordCanvas{w: 800, h: 600}
}

func (c *recordCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordCanvas) FillRect(r core.Rect, _ core.Color) { c.rects = append(c.rects, r) }

func (c *recordCanvas) FillPolygon(pts []core.Point, _ core.Color) { c.polys = append(c.polys, pts) }

func (c *recordCanvas) DrawText(x, _ int, text string, _ core.Color) {
	c.texts = append(c.texts, text)
	c.textX = append(c.textX, x)
}

func (c *recordCanvas) MeasureText(text string) int { return len(text) * 6 }

// eventLog collects events through a Notify.
type eventLog []core.Event

func (l *eventLog) notify(ev core.Event) { *l = append(*l, ev) }

func (l eventLog) kinds() []core.EventKind {
	kinds := make([]core.EventKind, len(l))
	for i, ev := range l {
		kinds[i] = ev.Kind
	}
	return kinds
}

func (l eventLog) count(kind core.EventKind) int {
	n := 0
	for _, ev := range l {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func testConfig() *config.BomberConfig {
	cfg := config.DefaultBomberConfig()
	return &cfg
}

// newTestGame returns a reset game with the default configuration.
func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultBomberConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: seed})
	return g
}

// flattenCity removes every building except the listed columns.
func flattenCity(g *Game, keep ...int) {
	for i := range g.city {
		g.city[i].Levels = 0
	}
	for _, col := range keep {
		g.city[col].Levels = 2
	}
}

func dropInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionDrop)
	return in
}
