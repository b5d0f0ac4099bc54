package core

import "testing"

func TestRectEdges(t *testing.T) {
	// Building column 2 with three levels on an 800x600 field
	r := NewRect(174, 510, 32, 90)

	if r.Right() != 206 {
		t.Errorf("Right() = %d, expected 206", r.Right())
	}
	if r.Bottom() != 600 {
		t.Errorf("Bottom() = %d, expected 600", r.Bottom())
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"bomb", NewRect(117, 300, 15, 15), false},
		{"zero width", NewRect(0, 0, 0, 5), true},
		{"zero height", NewRect(0, 0, 6, 0), true},
		{"negative size", NewRect(10, 10, -3, 4), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Empty(); got != tc.want {
				t.Errorf("Empty() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRectOverlapsX(t *testing.T) {
	column := NewRect(100, 0, 32, 30)

	tests := []struct {
		name     string
		b        Rect
		expected bool
	}{
		{"same column", NewRect(110, 500, 15, 15), true},
		{"straddles left edge", NewRect(90, 0, 15, 15), true},
		{"touching left edge", NewRect(85, 0, 15, 15), false},
		{"touching right edge", NewRect(132, 0, 15, 15), false},
		{"in the gap", NewRect(133, 0, 4, 15), false},
		{"rows apart", NewRect(110, 590, 15, 15), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := column.OverlapsX(tc.b); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.OverlapsX(column); got != tc.expected {
				t.Errorf("OverlapsX() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClampPlaneRow(t *testing.T) {
	// The plane drops 45 per row and never goes below 600-30
	tests := []struct {
		y, want int
	}{
		{120, 165},
		{525, 570},
		{540, 570},
		{570, 570},
	}

	for _, tc := range tests {
		if got := Clamp(tc.y+45, 0, 570); got != tc.want {
			t.Errorf("Clamp(%d+45) = %d, expected %d", tc.y, got, tc.want)
		}
	}
	if got := Clamp(-5, 0, 570); got != 0 {
		t.Errorf("Clamp(-5) = %d, expected 0", got)
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		a, b, min, max int
	}{
		{5, 10, 5, 10},
		{10, 5, 5, 10},
		{-3, -3, -3, -3},
	}

	for _, tc := range tests {
		if got := Min(tc.a, tc.b); got != tc.min {
			t.Errorf("Min(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.min)
		}
		if got := Max(tc.a, tc.b); got != tc.max {
			t.Errorf("Max(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.max)
		}
	}
}
