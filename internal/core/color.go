package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a palette entry shared by every host.
// Terminal hosts map it to ANSI 256-color codes, window hosts to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorDarkRed
	ColorBlue
	ColorNavy
	ColorYellow
	ColorWhite
	ColorGray
	ColorOrange
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorDarkRed: "darkred",
	ColorBlue:    "blue",
	ColorNavy:    "navy",
	ColorYellow:  "yellow",
	ColorWhite:   "white",
	ColorGray:    "gray",
	ColorOrange:  "orange",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// RGBA returns the true-color value used by pixel hosts.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorBlack:
		return color.RGBA{0, 0, 0, 255}
	case ColorRed:
		return color.RGBA{255, 11, 3, 255}
	case ColorDarkRed:
		return color.RGBA{128, 0, 0, 255}
	case ColorBlue:
		return color.RGBA{3, 45, 255, 255}
	case ColorNavy:
		return color.RGBA{10, 14, 48, 255}
	case ColorYellow:
		return color.RGBA{255, 255, 0, 255}
	case ColorWhite:
		return color.RGBA{255, 255, 255, 255}
	case ColorGray:
		return color.RGBA{120, 120, 120, 255}
	case ColorOrange:
		return color.RGBA{255, 135, 0, 255}
	default:
		return color.RGBA{0, 0, 0, 0}
	}
}

// ParseColor resolves a palette name (case-insensitive).
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == key {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}
