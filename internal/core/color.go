package core

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board cells and HUD text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ErrUnknownColor is returned by ParseColor for names outside the palette.
var ErrUnknownColor = errors.New("unknown color")

var colorNames = [...]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// String returns the config name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor looks up a palette color by its config name (case-insensitive).
func ParseColor(name string) (Color, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == want {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// palette holds the window colors. Dark enough to read on a white background.
var palette = [...]color.RGBA{
	ColorDefault:       {0, 0, 0, 255},
	ColorRed:           {205, 49, 49, 255},
	ColorGreen:         {13, 160, 58, 255},
	ColorYellow:        {229, 192, 16, 255},
	ColorBlue:          {36, 84, 200, 255},
	ColorMagenta:       {160, 50, 180, 255},
	ColorCyan:          {17, 168, 205, 255},
	ColorWhite:         {200, 200, 200, 255},
	ColorBrightRed:     {241, 76, 76, 255},
	ColorBrightGreen:   {35, 209, 139, 255},
	ColorBrightYellow:  {245, 220, 60, 255},
	ColorBrightBlue:    {59, 142, 234, 255},
	ColorBrightMagenta: {214, 112, 214, 255},
	ColorBrightCyan:    {41, 184, 219, 255},
	ColorBrightWhite:   {235, 235, 235, 255},
	ColorOrange:        {240, 120, 33, 255},
	ColorGray:          {128, 128, 128, 255},
}

// Pixel returns the pixel color used by the window front end.
func (c Color) Pixel() color.RGBA {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[ColorDefault]
}
