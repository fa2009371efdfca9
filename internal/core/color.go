package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a named palette entry shared by every host.
// Terminal hosts map it to ANSI codes, pixel hosts use RGBA().
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorGray
	colorCount
)

var colorNames = [colorCount]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorWhite:   "white",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorOrange:  "orange",
	ColorGray:    "gray",
}

var colorRGBA = [colorCount]color.RGBA{
	ColorDefault: {R: 0, G: 0, B: 0, A: 0},
	ColorBlack:   {R: 0, G: 0, B: 0, A: 255},
	ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorRed:     {R: 230, G: 41, B: 55, A: 255},
	ColorGreen:   {R: 0, G: 228, B: 48, A: 255},
	ColorYellow:  {R: 253, G: 249, B: 0, A: 255},
	ColorBlue:    {R: 65, G: 105, B: 225, A: 255}, // royal blue
	ColorMagenta: {R: 255, G: 0, B: 255, A: 255},
	ColorCyan:    {R: 0, G: 255, B: 255, A: 255},
	ColorOrange:  {R: 255, G: 161, B: 0, A: 255},
	ColorGray:    {R: 130, G: 130, B: 130, A: 255},
}

// String returns the palette name of the color.
func (c Color) String() string {
	if c >= colorCount {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// RGBA returns the color as 8-bit RGBA for pixel-based hosts.
func (c Color) RGBA() color.RGBA {
	if c >= colorCount {
		return colorRGBA[ColorDefault]
	}
	return colorRGBA[c]
}

// ParseColor looks up a palette entry by name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
