package charts

import (
	"image/color"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Theme colors of the darkgrid look.
var (
	AxesFace  = drawing.ColorFromHex("EAEAF2")
	GridLine  = drawing.ColorFromHex("FFFFFF")
	TextColor = drawing.ColorFromHex("262626")
	SkyBlue   = drawing.ColorFromHex("87CEEB")
	LightBlue = drawing.ColorFromHex("ADD8E6")
	EdgeBlack = drawing.ColorFromHex("000000")
)

// colormap anchors, evenly spaced over [0, 1].
var (
	viridisStops  = hexStops("440154", "482878", "3E4A89", "31688E", "26828E", "1F9E89", "35B779", "6DCD59", "B4DE2C", "FDE725")
	plasmaStops   = hexStops("0D0887", "47039F", "7301A8", "9C179E", "BD3786", "D8576B", "ED7953", "FA9E3B", "FDC926", "F0F921")
	coolwarmStops = hexStops("3B4CC0", "6282EA", "8DB0FE", "B8D0F9", "DDDDDD", "F5C4AC", "F49A7B", "DE604D", "B40426")
	set3          = hexStops("8DD3C7", "FFFFB3", "BEBADA", "FB8072", "80B1D3", "FDB462", "B3DE69", "FCCDE5", "D9D9D9", "BC80BD", "CCEBC5", "FFED6F")
)

// Palette is an ordered list of colors.
type Palette []color.Color

// At returns the i-th color, wrapping around.
func (p Palette) At(i int) color.Color {
	if len(p) == 0 {
		return TextColor
	}
	return p[i%len(p)]
}

func Viridis(n int) Palette  { return sampleMap(viridisStops, n) }
func Plasma(n int) Palette   { return sampleMap(plasmaStops, n) }
func Coolwarm(n int) Palette { return sampleMap(coolwarmStops, n) }

// Set3 is qualitative: the first n colors, cycling past twelve.
func Set3(n int) Palette {
	out := make(Palette, n)
	for i := range out {
		out[i] = set3[i%len(set3)]
	}
	return out
}

// WithAlpha returns c at the given opacity in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, _ := c.RGBA()
	dc := drawing.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
	return dc.WithAlpha(uint8(math.Round(clamp01(alpha) * 255)))
}

// sampleMap picks n colors from a continuous map, skipping both ends.
func sampleMap(stops []drawing.Color, n int) Palette {
	out := make(Palette, n)
	for i := range out {
		out[i] = interpolate(stops, float64(i+1)/float64(n+1))
	}
	return out
}

func interpolate(stops []drawing.Color, t float64) drawing.Color {
	t = clamp01(t)
	pos := t * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	frac := pos - float64(i)
	a, b := stops[i], stops[i+1]
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*frac))
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

func hexStops(hex ...string) []drawing.Color {
	out := make([]drawing.Color, len(hex))
	for i, h := range hex {
		out[i] = drawing.ColorFromHex(h)
	}
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
