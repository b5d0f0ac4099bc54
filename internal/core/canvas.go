package core

import (
	"math"
	"sort"
	"unicode/utf8"
)

// Canvas is the drawing surface a game renders onto, in logical coordinates.
// Hosts implement it for their output device.
type Canvas interface {
	// Size returns the logical width and height of the surface.
	Size() (w, h int)
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color)
	// FillPolygon fills a simple polygon given by its vertices in order.
	FillPolygon(pts []Point, c Color)
	// DrawText writes a single line of text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c Color)
	// MeasureText returns the logical width DrawText would use for text.
	MeasureText(text string) int
}

// Backdrop is implemented by canvases that paint their own background
// image, so games skip their plain background fill.
type Backdrop interface {
	HasBackdrop() bool
}

// SmallMark is drawn for shapes too small to cover the center of any cell.
const SmallMark = '▪'

// ScreenCanvas scales a logical playfield onto a Screen.
// A cell is painted when its center falls inside a shape.
type ScreenCanvas struct {
	screen   *Screen
	logicalW int
	logicalH int
}

// NewScreenCanvas maps a logicalW x logicalH playfield onto dst.
func NewScreenCanvas(dst *Screen, logicalW, logicalH int) *ScreenCanvas {
	return &ScreenCanvas{screen: dst, logicalW: logicalW, logicalH: logicalH}
}

// Size returns the logical playfield size.
func (c *ScreenCanvas) Size() (int, int) {
	return c.logicalW, c.logicalH
}

// cellCenterX returns the logical x coordinate of the center of column cx.
func (c *ScreenCanvas) cellCenterX(cx int) float64 {
	return (float64(cx) + 0.5) * float64(c.logicalW) / float64(c.screen.Width())
}

// cellCenterY returns the logical y coordinate of the center of row cy.
func (c *ScreenCanvas) cellCenterY(cy int) float64 {
	return (float64(cy) + 0.5) * float64(c.logicalH) / float64(c.screen.Height())
}

// CellAt converts a logical point to the cell containing it.
func (c *ScreenCanvas) CellAt(x, y int) (int, int) {
	if c.logicalW <= 0 || c.logicalH <= 0 {
		return 0, 0
	}
	return x * c.screen.Width() / c.logicalW, y * c.screen.Height() / c.logicalH
}

// FillRect paints every cell whose center lies inside r.
// Rectangles smaller than a cell leave a mark in the cell holding their center.
func (c *ScreenCanvas) FillRect(r Rect, col Color) {
	if r.Empty() || c.screen.Width() == 0 || c.screen.Height() == 0 {
		return
	}

	x0, y0 := c.CellAt(r.X, r.Y)
	x1, y1 := c.CellAt(r.Right(), r.Bottom())

	painted := false
	for cy := Max(y0, 0); cy <= Min(y1, c.screen.Height()-1); cy++ {
		py := c.cellCenterY(cy)
		if py < float64(r.Y) || py >= float64(r.Bottom()) {
			continue
		}
		for cx := Max(x0, 0); cx <= Min(x1, c.screen.Width()-1); cx++ {
			px := c.cellCenterX(cx)
			if px < float64(r.X) || px >= float64(r.Right()) {
				continue
			}
			c.screen.Paint(cx, cy, col)
			painted = true
		}
	}

	if !painted {
		mx, my := c.CellAt(r.X+r.W/2, r.Y+r.H/2)
		c.screen.Mark(mx, my, SmallMark, col)
	}
}

// FillPolygon paints the cells whose centers fall inside the polygon,
// using an even-odd scanline through each row's center.
func (c *ScreenCanvas) FillPolygon(pts []Point, col Color) {
	if len(pts) < 3 || c.screen.Width() == 0 || c.screen.Height() == 0 {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = Min(minY, p.Y)
		maxY = Max(maxY, p.Y)
	}
	_, cy0 := c.CellAt(0, minY)
	_, cy1 := c.CellAt(0, maxY)

	xs := make([]float64, 0, len(pts))
	for cy := Max(cy0, 0); cy <= Min(cy1, c.screen.Height()-1); cy++ {
		py := c.cellCenterY(cy)
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			ay, by := float64(a.Y), float64(b.Y)
			if (ay <= py && by > py) || (by <= py && ay > py) {
				t := (py - ay) / (by - ay)
				xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			left, right := xs[i], xs[i+1]
			cxStart, _ := c.CellAt(int(math.Floor(left)), 0)
			cxEnd, _ := c.CellAt(int(math.Ceil(right)), 0)
			for cx := Max(cxStart, 0); cx <= Min(cxEnd, c.screen.Width()-1); cx++ {
				px := c.cellCenterX(cx)
				if px >= left && px < right {
					c.screen.Paint(cx, cy, col)
				}
			}
		}
	}
}

// DrawText writes text starting at the cell containing (x, y).
func (c *ScreenCanvas) DrawText(x, y int, text string, col Color) {
	cx, cy := c.CellAt(x, y)
	c.screen.DrawTextColor(cx, cy, text, col)
}

// MeasureText returns the logical width of text, one cell per rune.
func (c *ScreenCanvas) MeasureText(text string) int {
	if c.screen.Width() == 0 {
		return 0
	}
	return utf8.RuneCountInString(text) * c.logicalW / c.screen.Width()
}
