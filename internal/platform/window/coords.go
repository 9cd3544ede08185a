package window

import (
	"image/color"
	"math"

	"github.com/vovakirdan/fruit-gravity/internal/core"
)

// PixelToNDC converts a cursor position on a w*h pixel surface to
// normalized device coordinates, Y up.
func PixelToNDC(x, y, w, h int) core.Pointer {
	if w <= 0 || h <= 0 {
		return core.Pointer{}
	}
	hw, hh := float64(w)/2, float64(h)/2
	return core.Pointer{
		X: (float64(x) - hw) / hw,
		Y: (float64(y) - hh) / -hh,
	}
}

// NDCToPixel is the inverse of PixelToNDC.
func NDCToPixel(p core.Pointer, w, h int) (float64, float64) {
	hw, hh := float64(w)/2, float64(h)/2
	return p.X*hw + hw, hh - p.Y*hh
}

// InSurface reports whether a cursor position lies on the surface.
func InSurface(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}

// palette maps cell colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 220, G: 220, B: 220, A: 255},
	core.ColorRed:           {R: 200, G: 30, B: 40, A: 255},
	core.ColorGreen:         {R: 60, G: 170, B: 60, A: 255},
	core.ColorYellow:        {R: 230, G: 200, B: 40, A: 255},
	core.ColorBlue:          {R: 50, G: 90, B: 210, A: 255},
	core.ColorMagenta:       {R: 170, G: 50, B: 170, A: 255},
	core.ColorCyan:          {R: 40, G: 180, B: 190, A: 255},
	core.ColorWhite:         {R: 210, G: 210, B: 210, A: 255},
	core.ColorBrightRed:     {R: 255, G: 80, B: 80, A: 255},
	core.ColorBrightGreen:   {R: 120, G: 230, B: 90, A: 255},
	core.ColorBrightYellow:  {R: 255, G: 240, B: 100, A: 255},
	core.ColorBrightBlue:    {R: 110, G: 150, B: 255, A: 255},
	core.ColorBrightMagenta: {R: 240, G: 110, B: 240, A: 255},
	core.ColorBrightCyan:    {R: 110, G: 240, B: 240, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 140, B: 20, A: 255},
	core.ColorGray:          {R: 128, G: 128, B: 128, A: 255},
}

// ColorFor resolves a configured color name.
func ColorFor(name string) color.RGBA {
	c, ok := core.ParseColor(name)
	if !ok {
		c = core.ColorDefault
	}
	return palette[c]
}

// shade darkens c by f in [0, 1].
func shade(c color.RGBA, f float64) color.RGBA {
	k := 1 - math.Max(0, math.Min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
