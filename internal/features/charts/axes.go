package charts

import (
	"math"
	"strconv"
)

// Default text sizes in points.
const (
	DefaultTitleSize = 12.0
	DefaultLabelSize = 11.0
	DefaultTickSize  = 10.0
)

// Style holds per-chart text sizes. Zero fields fall back to the defaults.
type Style struct {
	TitleSize float64
	LabelSize float64
	TickSize  float64
}

func (s Style) title() float64 { return orDefault(s.TitleSize, DefaultTitleSize) }
func (s Style) label() float64 { return orDefault(s.LabelSize, DefaultLabelSize) }
func (s Style) tick() float64  { return orDefault(s.TickSize, DefaultTickSize) }

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// scale maps data values onto a pixel interval. For log scales lo and hi are
// decades (log10 of the data bounds).
type scale struct {
	lo, hi float64
	p0, p1 float64
	log    bool
}

func (s scale) at(v float64) float64 {
	if s.log {
		if v <= 0 {
			return s.p0
		}
		v = math.Log10(v)
	}
	if s.hi == s.lo {
		return s.p0
	}
	return s.p0 + (v-s.lo)/(s.hi-s.lo)*(s.p1-s.p0)
}

// niceStep is the 1/2/2.5/5 x 10^k step giving at most maxTicks intervals over span.
func niceStep(span float64, maxTicks int) float64 {
	if span <= 0 || maxTicks <= 0 {
		return 1
	}
	raw := span / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if step := m * mag; step >= raw {
			return step
		}
	}
	return 10 * mag
}

// linearTicks returns the multiples of a nice step inside [lo, hi].
func linearTicks(lo, hi float64, maxTicks int) []float64 {
	if hi <= lo {
		return []float64{lo}
	}
	step := niceStep(hi-lo, maxTicks)
	first := math.Ceil(lo/step-1e-9) * step
	var ticks []float64
	for v := first; v <= hi+step*1e-9; v += step {
		// avoid -0 and float drift in labels
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}

// decadeTicks returns the integer exponents inside [lo, hi].
func decadeTicks(lo, hi float64) []int {
	var out []int
	for k := int(math.Ceil(lo)); float64(k) <= hi; k++ {
		out = append(out, k)
	}
	return out
}

// formatTick renders a tick value without trailing zeros.
func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// paddedRange widens [lo, hi] by frac of its span on each side, like
// matplotlib's default axes margins. A zero-based range stays at zero.
func paddedRange(lo, hi, frac float64, zeroBased bool) (float64, float64) {
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * frac
	if zeroBased && lo >= 0 {
		return 0, hi + pad
	}
	return lo - pad, hi + pad
}

// drawAxesFace fills the plot area with the axes background.
func drawAxesFace(c *Canvas, plot Frame) {
	dc := c.Context()
	dc.SetColor(AxesFace)
	dc.DrawRectangle(plot.X, plot.Y, plot.W, plot.H)
	dc.Fill()
}

// drawGridX draws vertical grid lines at the given pixel positions.
func drawGridX(c *Canvas, plot Frame, xs []float64) {
	dc := c.Context()
	dc.SetColor(GridLine)
	dc.SetLineWidth(c.Pt(0.8))
	for _, x := range xs {
		if x < plot.X-0.5 || x > plot.Right()+0.5 {
			continue
		}
		dc.DrawLine(x, plot.Y, x, plot.Bottom())
		dc.Stroke()
	}
}

// drawGridY draws horizontal grid lines at the given pixel positions.
func drawGridY(c *Canvas, plot Frame, ys []float64) {
	dc := c.Context()
	dc.SetColor(GridLine)
	dc.SetLineWidth(c.Pt(0.8))
	for _, y := range ys {
		if y < plot.Y-0.5 || y > plot.Bottom()+0.5 {
			continue
		}
		dc.DrawLine(plot.X, y, plot.Right(), y)
		dc.Stroke()
	}
}

// drawTitle centers a bold title with its top edge at top.
func drawTitle(c *Canvas, title string, cx, top float64, size float64) {
	if title == "" {
		return
	}
	c.SetFont(size, true)
	c.Text(title, cx, top, 0.5, 1, TextColor)
}

// titleHeight is the vertical room a title of size points needs, padding included.
func titleHeight(c *Canvas, title string, size float64) float64 {
	if title == "" {
		return 0
	}
	c.SetFont(size, true)
	_, h := c.Measure(title)
	return h + c.Pt(8)
}

// drawPow10 writes 10^k with a raised, smaller exponent, right-aligned at x
// and vertically centered on y.
func drawPow10(c *Canvas, k int, x, y, size float64) {
	exp := strconv.Itoa(k)
	c.SetFont(size*0.7, false)
	ew, eh := c.Measure(exp)
	c.Text(exp, x, y-eh*0.35, 1, 0.5, TextColor)
	c.SetFont(size, false)
	c.Text("10", x-ew, y, 1, 0.5, TextColor)
}

// pow10Width is the width drawPow10 needs for exponent k.
func pow10Width(c *Canvas, k int, size float64) float64 {
	c.SetFont(size*0.7, false)
	ew, _ := c.Measure(strconv.Itoa(k))
	c.SetFont(size, false)
	bw, _ := c.Measure("10")
	return ew + bw
}
