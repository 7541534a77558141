package charts

import (
	"image/color"
	"math"
)

// HistogramChart draws pre-binned counts. Edges has one more entry than Counts.
type HistogramChart struct {
	Title  string
	XLabel string
	YLabel string
	Edges  []float64
	Counts []float64

	// LogY puts the count axis on a base-10 log scale; empty bins vanish.
	LogY bool

	Fill  color.Color
	Alpha float64     // fill opacity, 0 means opaque
	Edge  color.Color // bar outline, nil for none

	Style
}

func (h HistogramChart) Draw(c *Canvas, f Frame) {
	if len(h.Counts) == 0 || len(h.Edges) != len(h.Counts)+1 {
		drawTitle(c, h.Title, f.X+f.W/2, f.Y, h.title())
		return
	}

	xlo, xhi := paddedRange(h.Edges[0], h.Edges[len(h.Edges)-1], 0.05, false)
	xticks := linearTicks(xlo, xhi, 8)

	ys, yLabels := h.countAxis()
	top := f.Y + titleHeight(c, h.Title, h.title())

	c.SetFont(h.tick(), false)
	_, tickH := c.Measure("0")
	tickW := 0.0
	for i, l := range yLabels {
		var w float64
		if h.LogY {
			w = pow10Width(c, int(ys.ticks[i]), h.tick())
			c.SetFont(h.tick(), false)
		} else {
			w, _ = c.Measure(l)
		}
		tickW = math.Max(tickW, w)
	}

	left := tickW + c.Pt(6) + axisLabelRoom(c, h.YLabel, h.label())
	bottom := tickH + c.Pt(6) + axisLabelRoom(c, h.XLabel, h.label())
	plot := Frame{X: f.X + left, Y: top, W: f.W - left - c.Pt(6)}
	plot.H = f.Bottom() - bottom - plot.Y
	if plot.W <= 0 || plot.H <= 0 {
		return
	}

	xs := scale{lo: xlo, hi: xhi, p0: plot.X, p1: plot.Right()}
	yscale := ys.scale
	yscale.p0, yscale.p1 = plot.Bottom(), plot.Y

	drawAxesFace(c, plot)
	tickXs := make([]float64, len(xticks))
	for i, t := range xticks {
		tickXs[i] = xs.at(t)
	}
	tickYs := make([]float64, len(ys.ticks))
	for i, t := range ys.ticks {
		tickYs[i] = yscale.p0 + (t-yscale.lo)/(yscale.hi-yscale.lo)*(yscale.p1-yscale.p0)
	}
	drawGridX(c, plot, tickXs)
	drawGridY(c, plot, tickYs)

	fill := h.Fill
	if fill == nil {
		fill = SkyBlue
	}
	if h.Alpha > 0 {
		fill = WithAlpha(fill, h.Alpha)
	}

	dc := c.Context()
	for i, count := range h.Counts {
		if count <= 0 {
			continue
		}
		x0, x1 := xs.at(h.Edges[i]), xs.at(h.Edges[i+1])
		y := math.Max(yscale.at(count), plot.Y)
		dc.DrawRectangle(x0, y, x1-x0, plot.Bottom()-y)
		dc.SetColor(fill)
		if h.Edge != nil {
			dc.FillPreserve()
			dc.SetColor(h.Edge)
			dc.SetLineWidth(c.Pt(0.6))
			dc.Stroke()
		} else {
			dc.Fill()
		}
	}

	c.SetFont(h.tick(), false)
	for i, t := range xticks {
		if tickXs[i] < plot.X-0.5 || tickXs[i] > plot.Right()+0.5 {
			continue
		}
		c.Text(formatTick(t), tickXs[i], plot.Bottom()+c.Pt(4), 0.5, 1, TextColor)
	}
	for i, l := range yLabels {
		if h.LogY {
			drawPow10(c, int(ys.ticks[i]), plot.X-c.Pt(4), tickYs[i], h.tick())
			continue
		}
		c.SetFont(h.tick(), false)
		c.Text(l, plot.X-c.Pt(4), tickYs[i], 1, 0.5, TextColor)
	}

	drawXLabel(c, h.XLabel, plot.X+plot.W/2, plot.Bottom()+tickH+c.Pt(8), h.label())
	drawYLabel(c, h.YLabel, f.X, plot.Y+plot.H/2, h.label())
	drawTitle(c, h.Title, plot.X+plot.W/2, f.Y, h.title())
}

// countAxis is the count scale plus its ticks. For log axes ticks are
// decade exponents and the scale bounds are in log10 units.
type countAxis struct {
	scale
	ticks []float64
}

func (h HistogramChart) countAxis() (countAxis, []string) {
	maxC, minPos := 0.0, math.Inf(1)
	for _, v := range h.Counts {
		maxC = math.Max(maxC, v)
		if v > 0 {
			minPos = math.Min(minPos, v)
		}
	}

	if !h.LogY || maxC <= 0 {
		lo, hi := paddedRange(0, maxC, 0.05, true)
		ticks := linearTicks(lo, hi, 6)
		labels := make([]string, len(ticks))
		for i, t := range ticks {
			labels[i] = formatTick(t)
		}
		return countAxis{scale: scale{lo: lo, hi: hi}, ticks: ticks}, labels
	}

	lmin, lmax := math.Log10(minPos), math.Log10(maxC)
	span := math.Max(lmax-lmin, 1)
	lo, hi := lmin-0.05*span, lmax+0.05*span
	var ticks []float64
	var labels []string
	for _, k := range decadeTicks(lo, hi) {
		ticks = append(ticks, float64(k))
		labels = append(labels, "1e"+formatTick(float64(k)))
	}
	return countAxis{scale: scale{lo: lo, hi: hi, log: true}, ticks: ticks}, labels
}
