package charts

import (
	"image/color"
	"math"
)

// TextPanel writes a block of lines inside a rounded box, left edge at
// X and vertically centered at Y (both fractions of the frame).
type TextPanel struct {
	Lines    []string
	Size     float64
	Box      color.Color
	BoxAlpha float64
	X, Y     float64
}

func (t TextPanel) Draw(c *Canvas, f Frame) {
	if len(t.Lines) == 0 {
		return
	}
	size := orDefault(t.Size, DefaultTitleSize)
	c.SetFont(size, false)

	lineH := c.Context().FontHeight() * 1.3
	width := 0.0
	for _, l := range t.Lines {
		w, _ := c.Measure(l)
		width = math.Max(width, w)
	}
	height := lineH * float64(len(t.Lines))

	x := f.X + t.X*f.W
	y := f.Y + t.Y*f.H - height/2
	pad := c.Pt(0.3 * size)

	if t.Box != nil {
		fill := t.Box
		if t.BoxAlpha > 0 {
			fill = WithAlpha(fill, t.BoxAlpha)
		}
		dc := c.Context()
		dc.SetColor(fill)
		dc.DrawRoundedRectangle(x-pad, y-pad, width+2*pad, height+2*pad, pad)
		dc.Fill()
	}

	for i, l := range t.Lines {
		c.Text(l, x, y+float64(i)*lineH+lineH/2, 0, 0.5, TextColor)
	}
}

// Cell places a plot on a grid, spanning RowSpan x ColSpan slots.
type Cell struct {
	Row, Col         int
	RowSpan, ColSpan int
	Plot             Plot
}

// Grid lays plots out on Rows x Cols slots. HSpace and WSpace are the gaps
// between slots as a fraction of the average slot height and width.
type Grid struct {
	Title     string
	TitleSize float64
	Rows      int
	Cols      int
	HSpace    float64
	WSpace    float64
	Cells     []Cell
}

func (g Grid) Draw(c *Canvas, f Frame) {
	if g.Rows <= 0 || g.Cols <= 0 {
		return
	}
	size := orDefault(g.TitleSize, 16)
	top := f.Y + titleHeight(c, g.Title, size)
	drawTitle(c, g.Title, f.X+f.W/2, f.Y, size)

	body := Frame{X: f.X, Y: top, W: f.W, H: f.Bottom() - top}
	for _, cell := range g.Cells {
		if cell.Plot == nil {
			continue
		}
		cell.Plot.Draw(c, g.CellFrame(body, cell))
	}
}

// CellFrame is the pixel frame of cell within body.
func (g Grid) CellFrame(body Frame, cell Cell) Frame {
	rs, cs := max(cell.RowSpan, 1), max(cell.ColSpan, 1)
	w := body.W / (float64(g.Cols) + g.WSpace*float64(g.Cols-1))
	h := body.H / (float64(g.Rows) + g.HSpace*float64(g.Rows-1))
	gapW, gapH := g.WSpace*w, g.HSpace*h

	return Frame{
		X: body.X + float64(cell.Col)*(w+gapW),
		Y: body.Y + float64(cell.Row)*(h+gapH),
		W: float64(cs)*w + float64(cs-1)*gapW,
		H: float64(rs)*h + float64(rs-1)*gapH,
	}
}
