package charts

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Slice is one wedge of a pie chart.
type Slice struct {
	Label string
	Value float64
	Color color.Color
}

// PieChart draws wedges counter-clockwise from StartAngle (degrees, 0 = east).
// Each wedge carries its label outside the rim and its share inside.
type PieChart struct {
	Title  string
	Slices []Slice

	// PercentFormat is a fmt verb applied to the share in percent, e.g. "%.1f%%".
	PercentFormat string
	StartAngle    float64

	Style
}

func (p PieChart) Draw(c *Canvas, f Frame) {
	top := f.Y + titleHeight(c, p.Title, p.title())
	drawTitle(c, p.Title, f.X+f.W/2, f.Y, p.title())

	total := 0.0
	for _, s := range p.Slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total <= 0 {
		return
	}

	c.SetFont(p.tick(), false)
	labelW, labelH := 0.0, 0.0
	for _, s := range p.Slices {
		w, h := c.Measure(s.Label)
		labelW = math.Max(labelW, w)
		labelH = math.Max(labelH, h)
	}

	area := Frame{X: f.X, Y: top, W: f.W, H: f.Bottom() - top}
	cx, cy := area.X+area.W/2, area.Y+area.H/2
	// the rim label sits at 1.1 r, so leave room for it on every side
	r := math.Min((area.W/2-labelW)/1.1, (area.H/2-labelH)/1.1)
	if r <= 0 {
		return
	}

	format := p.PercentFormat
	if format == "" {
		format = "%.1f%%"
	}

	dc := c.Context()
	theta := p.StartAngle
	for i, s := range p.Slices {
		if s.Value <= 0 {
			continue
		}
		sweep := s.Value / total * 360
		// canvas y grows downwards, so counter-clockwise angles are negated
		a0, a1 := gg.Radians(-(theta + sweep)), gg.Radians(-theta)

		dc.SetColor(sliceColor(s, i))
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, r, a0, a1)
		dc.ClosePath()
		dc.Fill()

		mid := gg.Radians(theta + sweep/2)
		dx, dy := math.Cos(mid), -math.Sin(mid)

		ax := 0.0
		if dx < 0 {
			ax = 1
		}
		c.SetFont(p.tick(), false)
		c.Text(s.Label, cx+1.1*r*dx, cy+1.1*r*dy, ax, 0.5, TextColor)
		c.Text(fmt.Sprintf(format, s.Value/total*100), cx+0.6*r*dx, cy+0.6*r*dy, 0.5, 0.5, TextColor)

		theta += sweep
	}
}

func sliceColor(s Slice, i int) color.Color {
	if s.Color != nil {
		return s.Color
	}
	return set3[i%len(set3)]
}
