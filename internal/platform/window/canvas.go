package window

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/citybomber/internal/core"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

// maxCachedTexts bounds the text image cache; the score changes every hit.
const maxCachedTexts = 64

// canvas draws onto the window's screen image, one logical unit per pixel.
type canvas struct {
	dst      *ebiten.Image
	w, h     int
	white    *ebiten.Image
	backdrop bool
	texts    map[string]*ebiten.Image
}

func newCanvas(w, h int, backdrop bool) *canvas {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &canvas{
		w:        w,
		h:        h,
		white:    white,
		backdrop: backdrop,
		texts:    make(map[string]*ebiten.Image),
	}
}

func (c *canvas) Size() (int, int) { return c.w, c.h }

func (c *canvas) HasBackdrop() bool { return c.backdrop }

func (c *canvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), false)
}

func (c *canvas) FillPolygon(pts []core.Point, col core.Color) {
	if len(pts) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	rgba := col.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(rgba.R) / 255
		vertices[i].ColorG = float32(rgba.G) / 255
		vertices[i].ColorB = float32(rgba.B) / 255
		vertices[i].ColorA = float32(rgba.A) / 255
	}

	c.dst.DrawTriangles(vertices, indices, c.white, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

// DrawText prints with the debug font, which is white, then tints it.
func (c *canvas) DrawText(x, y int, text string, col core.Color) {
	img, ok := c.texts[text]
	if !ok {
		if len(c.texts) >= maxCachedTexts {
			for k, old := range c.texts {
				old.Deallocate()
				delete(c.texts, k)
			}
		}
		img = ebiten.NewImage(max(c.MeasureText(text), 1), glyphH)
		ebitenutil.DebugPrintAt(img, text, 0, 0)
		c.texts[text] = img
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	opts.ColorScale.ScaleWithColor(col.RGBA())
	c.dst.DrawImage(img, opts)
}

func (c *canvas) MeasureText(text string) int {
	return utf8.RuneCountInString(text) * glyphW
}
