package bomber

import (
	"testing"

	"github.com/vovakirdan/citybomber/internal/core"
)

func TestPlaneMoveWrap(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
		landed       bool
	}{
		{"flies right", 100, 100, 107, 100, false},
		{"one short of the edge", 792, 100, 799, 100, false},
		{"wraps exactly at the edge", 793, 100, 0, 145, false},
		{"wraps past the edge", 795, 100, 0, 145, false},
		{"clamps to the bottom row", 795, 550, 0, 570, true},
		{"lands on the last row", 0, 556, 7, 556, true},
		{"stays airborne above it", 0, 555, 7, 555, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			p := NewPlane(tt.x, tt.y, cfg)

			var log eventLog
			p.Move(nil, log.notify)

			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("plane at (%d, %d), expected (%d, %d)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if p.Landed != tt.landed {
				t.Errorf("Landed = %v, expected %v", p.Landed, tt.landed)
			}
			if tt.landed && log.count(core.EventPlaneLanded) != 1 {
				t.Errorf("events = %v, expected plane_landed", log.kinds())
			}
			if p.Crashed {
				t.Error("plane crashed over an empty city")
			}
		})
	}
}

func TestPlaneCrash(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		levels  int
		crashed bool
	}{
		{"front reaches left wall", 43, 430, 5, true},
		{"front at right wall", 75, 430, 5, true},
		{"front past the building", 76, 430, 5, false},
		{"front short of the building", 42, 430, 5, false},
		{"flying above the roofline", 43, 400, 5, false},
		{"bottom touches the roofline", 43, 420, 5, true},
		{"building destroyed", 43, 430, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			city := []Building{{Column: 0, Levels: tt.levels, MaxDestroy: 5, cfg: cfg}}
			p := NewPlane(tt.x, tt.y, cfg)

			var log eventLog
			p.Move(city, log.notify)

			if p.Crashed != tt.crashed {
				t.Errorf("Crashed = %v, expected %v", p.Crashed, tt.crashed)
			}
			if tt.crashed && (log.count(core.EventPlaneCrashed) != 1 || log[0].Building != 0) {
				t.Errorf("events = %+v", log)
			}
		})
	}
}

func TestPlaneCrashPreemptsLanding(t *testing.T) {
	cfg := testConfig()
	city := []Building{{Column: 0, Levels: 2, MaxDestroy: 5, cfg: cfg}}
	p := NewPlane(43, 560, cfg)

	p.Move(city, nil)

	if !p.Crashed {
		t.Fatal("plane should crash into the building")
	}
	if p.Landed {
		t.Error("a crashed plane must not also land")
	}
	if !p.Done() {
		t.Error("Done() should be true after a crash")
	}
}

func TestPlaneDrawMarker(t *testing.T) {
	cfg := testConfig()
	p := NewPlane(100, 90, cfg)

	c := newRecordCanvas()
	p.Draw(c, true)

	if len(c.polys) != 2 {
		t.Errorf("polygons = %d, expected tail and nose", len(c.polys))
	}
	if len(c.rects) != 2 {
		t.Fatalf("rects = %d, expected body and marker", len(c.rects))
	}
	if c.rects[0] != core.NewRect(113, 103, 30, 12) {
		t.Errorf("body = %+v", c.rects[0])
	}
	if c.rects[1] != core.NewRect(130, 110, 8, 5) {
		t.Errorf("marker = %+v", c.rects[1])
	}
}
