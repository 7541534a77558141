package charts

import (
	"image/color"
	"math"
)

// Bar is one category of a bar chart.
type Bar struct {
	Label string
	Value float64
	Color color.Color
}

// BarChart draws one bar per category against a zero-based value axis.
// Horizontal charts stack categories bottom-up in Bars order.
type BarChart struct {
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar

	Horizontal bool

	// ValueLabels writes each bar's value past its end in bold.
	ValueLabels bool
	ValueFormat func(float64) string

	// TickRotation rotates the category labels of a vertical chart
	// counter-clockwise, in degrees. TickAnchor 1 right-aligns them on the
	// tick, 0.5 centers them.
	TickRotation float64
	TickAnchor   float64

	Style
}

const barFill = 0.8

func (b BarChart) Draw(c *Canvas, f Frame) {
	if len(b.Bars) == 0 {
		drawTitle(c, b.Title, f.X+f.W/2, f.Y, b.title())
		return
	}
	if b.Horizontal {
		b.drawHorizontal(c, f)
		return
	}
	b.drawVertical(c, f)
}

func (b BarChart) valueRange() (float64, float64, []float64) {
	maxV := 0.0
	for _, bar := range b.Bars {
		maxV = math.Max(maxV, bar.Value)
	}
	lo, hi := paddedRange(0, maxV, 0.05, true)
	return lo, hi, linearTicks(lo, hi, 6)
}

func (b BarChart) format(v float64) string {
	if b.ValueFormat != nil {
		return b.ValueFormat(v)
	}
	return formatTick(v)
}

func (b BarChart) drawVertical(c *Canvas, f Frame) {
	lo, hi, ticks := b.valueRange()
	top := f.Y + titleHeight(c, b.Title, b.title())

	c.SetFont(b.tick(), false)
	catH := 0.0
	for _, bar := range b.Bars {
		_, h := c.rotatedExtent(bar.Label, b.TickRotation)
		catH = math.Max(catH, h)
	}
	tickW := 0.0
	for _, t := range ticks {
		w, _ := c.Measure(formatTick(t))
		tickW = math.Max(tickW, w)
	}
	valueH := 0.0
	if b.ValueLabels {
		c.SetFont(b.tick(), true)
		_, valueH = c.Measure("0")
		valueH += c.Pt(4)
	}

	anchor := b.TickAnchor
	if b.TickRotation == 0 || anchor == 0 {
		anchor = 0.5
	}

	left := tickW + c.Pt(6) + axisLabelRoom(c, b.YLabel, b.label())
	// a rotated first label may reach left of the plot area
	c.SetFont(b.tick(), false)
	firstW, _ := c.rotatedExtent(b.Bars[0].Label, b.TickRotation)
	slotGuess := (f.W - left - c.Pt(6)) / float64(len(b.Bars))
	if overflow := firstW*anchor - slotGuess/2 - tickW; overflow > 0 {
		left += overflow
	}

	bottom := catH + c.Pt(6) + axisLabelRoom(c, b.XLabel, b.label())
	plot := Frame{X: f.X + left, Y: top + valueH, W: f.W - left - c.Pt(6)}
	plot.H = f.Bottom() - bottom - plot.Y
	if plot.W <= 0 || plot.H <= 0 {
		return
	}

	ys := scale{lo: lo, hi: hi, p0: plot.Bottom(), p1: plot.Y}
	drawAxesFace(c, plot)
	tickYs := make([]float64, len(ticks))
	for i, t := range ticks {
		tickYs[i] = ys.at(t)
	}
	drawGridY(c, plot, tickYs)

	dc := c.Context()
	slot := plot.W / float64(len(b.Bars))
	for i, bar := range b.Bars {
		cx := plot.X + (float64(i)+0.5)*slot
		w := barFill * slot
		y := ys.at(bar.Value)
		dc.SetColor(barColor(bar, i))
		dc.DrawRectangle(cx-w/2, y, w, plot.Bottom()-y)
		dc.Fill()
	}

	c.SetFont(b.tick(), false)
	for i, t := range ticks {
		c.Text(formatTick(t), plot.X-c.Pt(4), tickYs[i], 1, 0.5, TextColor)
	}
	for i, bar := range b.Bars {
		cx := plot.X + (float64(i)+0.5)*slot
		c.TextRotated(bar.Label, cx, plot.Bottom()+c.Pt(4), b.TickRotation, anchor, TextColor)
	}

	if b.ValueLabels {
		c.SetFont(b.tick(), true)
		for i, bar := range b.Bars {
			cx := plot.X + (float64(i)+0.5)*slot
			c.Text(b.format(bar.Value), cx, ys.at(bar.Value)-c.Pt(2), 0.5, 0, TextColor)
		}
	}

	drawXLabel(c, b.XLabel, plot.X+plot.W/2, plot.Bottom()+catH+c.Pt(8), b.label())
	drawYLabel(c, b.YLabel, f.X, plot.Y+plot.H/2, b.label())
	drawTitle(c, b.Title, plot.X+plot.W/2, f.Y, b.title())
}

func (b BarChart) drawHorizontal(c *Canvas, f Frame) {
	lo, hi, ticks := b.valueRange()
	top := f.Y + titleHeight(c, b.Title, b.title())

	c.SetFont(b.tick(), false)
	catW := 0.0
	for _, bar := range b.Bars {
		w, _ := c.Measure(bar.Label)
		catW = math.Max(catW, w)
	}
	_, tickH := c.Measure("0")

	right := c.Pt(6)
	if b.ValueLabels {
		c.SetFont(b.tick(), true)
		widest := 0.0
		for _, bar := range b.Bars {
			w, _ := c.Measure(b.format(bar.Value))
			widest = math.Max(widest, w)
		}
		right += widest
	}

	left := catW + c.Pt(6) + axisLabelRoom(c, b.YLabel, b.label())
	bottom := tickH + c.Pt(6) + axisLabelRoom(c, b.XLabel, b.label())
	plot := Frame{X: f.X + left, Y: top, W: f.W - left - right}
	plot.H = f.Bottom() - bottom - plot.Y
	if plot.W <= 0 || plot.H <= 0 {
		return
	}

	xs := scale{lo: lo, hi: hi, p0: plot.X, p1: plot.Right()}
	drawAxesFace(c, plot)
	tickXs := make([]float64, len(ticks))
	for i, t := range ticks {
		tickXs[i] = xs.at(t)
	}
	drawGridX(c, plot, tickXs)

	dc := c.Context()
	slot := plot.H / float64(len(b.Bars))
	maxV := 0.0
	for _, bar := range b.Bars {
		maxV = math.Max(maxV, bar.Value)
	}
	for i, bar := range b.Bars {
		cy := plot.Bottom() - (float64(i)+0.5)*slot
		h := barFill * slot
		dc.SetColor(barColor(bar, i))
		dc.DrawRectangle(plot.X, cy-h/2, xs.at(bar.Value)-plot.X, h)
		dc.Fill()
	}

	c.SetFont(b.tick(), false)
	for i, bar := range b.Bars {
		cy := plot.Bottom() - (float64(i)+0.5)*slot
		c.Text(bar.Label, plot.X-c.Pt(4), cy, 1, 0.5, TextColor)
	}
	for i, t := range ticks {
		c.Text(formatTick(t), tickXs[i], plot.Bottom()+c.Pt(4), 0.5, 1, TextColor)
	}

	if b.ValueLabels {
		c.SetFont(b.tick(), true)
		for i, bar := range b.Bars {
			cy := plot.Bottom() - (float64(i)+0.5)*slot
			x := xs.at(bar.Value + maxV*0.01)
			c.Text(b.format(bar.Value), x, cy, 0, 0.5, TextColor)
		}
	}

	drawXLabel(c, b.XLabel, plot.X+plot.W/2, plot.Bottom()+tickH+c.Pt(8), b.label())
	drawYLabel(c, b.YLabel, f.X, plot.Y+plot.H/2, b.label())
	drawTitle(c, b.Title, plot.X+plot.W/2, f.Y, b.title())
}

func barColor(bar Bar, i int) color.Color {
	if bar.Color != nil {
		return bar.Color
	}
	return Viridis(1).At(i)
}

// axisLabelRoom is the space an axis label takes, zero when absent.
func axisLabelRoom(c *Canvas, label string, size float64) float64 {
	if label == "" {
		return 0
	}
	c.SetFont(size, false)
	_, h := c.Measure(label)
	return h + c.Pt(6)
}

// drawXLabel centers label horizontally at cx with its top at y.
func drawXLabel(c *Canvas, label string, cx, y, size float64) {
	if label == "" {
		return
	}
	c.SetFont(size, false)
	c.Text(label, cx, y, 0.5, 1, TextColor)
}

// drawYLabel draws label rotated a quarter turn, its left edge at x,
// vertically centered on cy.
func drawYLabel(c *Canvas, label string, x, cy, size float64) {
	if label == "" {
		return
	}
	c.SetFont(size, false)
	_, h := c.Measure(label)
	cx := x + h/2

	dc := c.Context()
	dc.Push()
	dc.RotateAbout(-math.Pi/2, cx, cy)
	c.Text(label, cx, cy, 0.5, 0.5, TextColor)
	dc.Pop()
}
