package bomber

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/citybomber/internal/core"
)

func TestNewBuildingRanges(t *testing.T) {
	cfg := testConfig()
	palette := []core.Color{core.ColorWhite, core.ColorRed, core.ColorBlue}

	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := NewBuilding(int(seed%16), rng, cfg, palette)

		if b.Levels < 2 || b.Levels >= cfg.MaxLevels() {
			t.Fatalf("seed %d: levels %d outside [2, %d)", seed, b.Levels, cfg.MaxLevels())
		}
		if b.Window == b.Body {
			t.Fatalf("seed %d: window color equals body color %v", seed, b.Body)
		}
		if !b.ShowRoof {
			t.Fatalf("seed %d: new building should show its roof", seed)
		}
		if b.MaxDestroy != 5 {
			t.Fatalf("seed %d: max destroy = %d, expected 5", seed, b.MaxDestroy)
		}
	}
}

func TestNewBuildingTwoColorPalette(t *testing.T) {
	cfg := testConfig()
	palette := []core.Color{core.ColorRed, core.ColorBlue}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		b := NewBuilding(0, rng, cfg, palette)
		if b.Window == b.Body {
			t.Fatal("window color must differ from body color")
		}
	}
}

func TestBuildingGeometry(t *testing.T) {
	cfg := testConfig()
	b := Building{Column: 2, Levels: 3, cfg: cfg}

	if b.X() != 174 {
		t.Errorf("X() = %d, expected 174", b.X())
	}
	if b.Roofline() != 510 {
		t.Errorf("Roofline() = %d, expected 510", b.Roofline())
	}
	if r := b.Rect(); r != core.NewRect(174, 510, 32, 90) {
		t.Errorf("Rect() = %+v", r)
	}
}

func newHitBuilding(levels int) Building {
	cfg := testConfig()
	return Building{Column: 0, Levels: levels, MaxDestroy: cfg.City.MaxDestroy, ShowRoof: true, cfg: cfg}
}

func fallingBomb(y int) *Bomb {
	b := NewBomb(0, testConfig())
	b.Falling = true
	b.HasTarget = true
	b.X = 110
	b.Y = y
	return &b
}

func TestApplyBombHitWaitsForRoofline(t *testing.T) {
	var log eventLog
	b := newHitBuilding(3) // roofline 510
	bomb := fallingBomb(400)

	b.ApplyBombHit(bomb, log.notify)
	if b.Levels != 3 || !b.ShowRoof || len(log) != 0 {
		t.Fatalf("bomb above the roofline should not damage the building: %+v", b)
	}

	// Bottom edge exactly on the roofline counts as a hit
	bomb.Y = 510 - 15
	b.ApplyBombHit(bomb, log.notify)

	if b.Levels != 2 {
		t.Errorf("levels = %d, expected 2", b.Levels)
	}
	if b.Destroyed != 1 {
		t.Errorf("destroyed = %d, expected 1", b.Destroyed)
	}
	if b.ShowRoof {
		t.Error("roof should be gone after the first hit")
	}
	if !bomb.Falling {
		t.Error("bomb should keep falling while the building stands")
	}
	if log.count(core.EventLevelDestroyed) != 1 {
		t.Errorf("events = %v, expected one level_destroyed", log.kinds())
	}
}

func TestApplyBombHitDestroyLimit(t *testing.T) {
	var log eventLog
	b := newHitBuilding(9)
	bomb := fallingBomb(585) // Bottom on the ground, below any roofline

	for i := 0; i < 5; i++ {
		b.ApplyBombHit(bomb, log.notify)
		if !bomb.Falling {
			t.Fatalf("bomb resolved early after %d levels", i+1)
		}
	}
	if b.Levels != 4 {
		t.Fatalf("levels = %d after five hits, expected 4", b.Levels)
	}

	// Sixth contact: the budget is spent, the bomb detonates and the counter resets
	b.ApplyBombHit(bomb, log.notify)
	if bomb.Falling {
		t.Error("bomb should resolve once its destroy limit is reached")
	}
	if b.Levels != 4 {
		t.Errorf("levels = %d, the spent bomb must not take another level", b.Levels)
	}
	if b.Destroyed != 0 {
		t.Errorf("destroyed = %d, expected reset to 0", b.Destroyed)
	}
	if log.count(core.EventBombSpent) != 1 || log.count(core.EventLevelDestroyed) != 5 {
		t.Errorf("events = %v", log.kinds())
	}

	// A resolved bomb does nothing
	b.ApplyBombHit(bomb, log.notify)
	if b.Levels != 4 {
		t.Errorf("levels = %d after a call with an idle bomb", b.Levels)
	}
}

func TestApplyBombHitFlattensBuilding(t *testing.T) {
	var log eventLog
	b := newHitBuilding(3)
	bomb := fallingBomb(585)

	prev := b.Levels
	for i := 0; i < 10; i++ {
		b.ApplyBombHit(bomb, log.notify)
		if b.Levels > prev || b.Levels < 0 {
			t.Fatalf("levels went from %d to %d", prev, b.Levels)
		}
		prev = b.Levels
	}

	if b.Levels != 0 {
		t.Fatalf("levels = %d, expected 0", b.Levels)
	}
	if bomb.Falling {
		t.Error("bomb should resolve when the building reaches 0")
	}
	expected := []core.EventKind{
		core.EventLevelDestroyed,
		core.EventLevelDestroyed,
		core.EventLevelDestroyed,
		core.EventBombSpent,
	}
	kinds := log.kinds()
	if len(kinds) != len(expected) {
		t.Fatalf("events = %v, expected %v", kinds, expected)
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("event %d = %v, expected %v", i, kinds[i], expected[i])
		}
	}
}

func TestThreeDropsWithSingleLevelLimit(t *testing.T) {
	b := newHitBuilding(3)
	b.MaxDestroy = 1

	for drop := 1; drop <= 3; drop++ {
		var log eventLog
		bomb := fallingBomb(585)
		for i := 0; i < 5 && bomb.Falling; i++ {
			b.ApplyBombHit(bomb, log.notify)
		}

		if bomb.Falling {
			t.Fatalf("drop %d: bomb still falling", drop)
		}
		if want := 3 - drop; b.Levels != want {
			t.Fatalf("drop %d: levels = %d, expected %d", drop, b.Levels, want)
		}
		if n := log.count(core.EventLevelDestroyed); n != 1 {
			t.Errorf("drop %d: %d levels destroyed, expected 1", drop, n)
		}
		if n := log.count(core.EventBombSpent); n != 1 {
			t.Errorf("drop %d: bomb spent %d times, expected 1", drop, n)
		}
	}
}

func TestApplyBombHitIgnoresDestroyedBuilding(t *testing.T) {
	b := newHitBuilding(0)
	b.ShowRoof = false
	bomb := fallingBomb(585)

	b.ApplyBombHit(bomb, nil)

	if b.Levels != 0 {
		t.Errorf("levels = %d, expected 0", b.Levels)
	}
	if !bomb.Falling {
		t.Error("bomb aimed at a flattened building should keep falling")
	}
}

func TestBuildingDraw(t *testing.T) {
	b := newHitBuilding(3)
	b.Body, b.Window = core.ColorRed, core.ColorWhite

	c := newRecordCanvas()
	b.Draw(c)

	// Two full levels with four windows each, plus a roof
	if len(c.polys) != 1 {
		t.Errorf("polygons = %d, expected 1 roof", len(c.polys))
	}
	if len(c.rects) != 10 {
		t.Errorf("rects = %d, expected 10", len(c.rects))
	}
	if c.rects[0] != core.NewRect(100, 570, 32, 30) {
		t.Errorf("ground level = %+v", c.rects[0])
	}
	if c.rects[1] != core.NewRect(104, 574, 6, 6) {
		t.Errorf("first window = %+v", c.rects[1])
	}

	// Without the roof the top level is drawn as a plain level
	b.ShowRoof = false
	c = newRecordCanvas()
	b.Draw(c)
	if len(c.polys) != 0 || len(c.rects) != 15 {
		t.Errorf("roofless draw: polys=%d rects=%d", len(c.polys), len(c.rects))
	}

	// A flattened building draws nothing
	b.Levels = 0
	c = newRecordCanvas()
	b.Draw(c)
	if len(c.polys)+len(c.rects) != 0 {
		t.Error("destroyed building should draw nothing")
	}
}
