package charts

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Frame is a rectangle in canvas pixels.
type Frame struct {
	X, Y, W, H float64
}

// Inset shrinks the frame by d on every side.
func (f Frame) Inset(d float64) Frame {
	return Frame{X: f.X + d, Y: f.Y + d, W: math.Max(f.W-2*d, 0), H: math.Max(f.H-2*d, 0)}
}

func (f Frame) Right() float64  { return f.X + f.W }
func (f Frame) Bottom() float64 { return f.Y + f.H }

// Plot draws itself inside a frame.
type Plot interface {
	Draw(c *Canvas, f Frame)
}

// Canvas is a gg context sized in inches at a given DPI. Font sizes and
// stroke widths are expressed in points and scaled to pixels.
type Canvas struct {
	dc    *gg.Context
	dpi   float64
	fonts *Fonts
}

// NewCanvas creates a white canvas of widthIn x heightIn inches.
func NewCanvas(widthIn, heightIn, dpi float64, fonts *Fonts) *Canvas {
	w := int(math.Round(widthIn * dpi))
	h := int(math.Round(heightIn * dpi))
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	return &Canvas{dc: dc, dpi: dpi, fonts: fonts}
}

// Context exposes the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

func (c *Canvas) DPI() float64 { return c.dpi }

// Bounds is the whole canvas as a frame.
func (c *Canvas) Bounds() Frame {
	return Frame{W: float64(c.dc.Width()), H: float64(c.dc.Height())}
}

// Pt converts points to pixels.
func (c *Canvas) Pt(v float64) float64 { return v * c.dpi / 72 }

// Inch converts inches to pixels.
func (c *Canvas) Inch(v float64) float64 { return v * c.dpi }

// SetFont selects a face of size points.
func (c *Canvas) SetFont(size float64, bold bool) {
	c.dc.SetFontFace(c.fonts.Face(size, bold))
}

// Measure returns the pixel width and height of s in the current face.
func (c *Canvas) Measure(s string) (float64, float64) {
	return c.dc.MeasureString(s)
}

// Text draws s anchored at (x, y); ax/ay follow gg.DrawStringAnchored.
func (c *Canvas) Text(s string, x, y, ax, ay float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// rotatedExtent is the axis-aligned size of s rotated by deg degrees.
func (c *Canvas) rotatedExtent(s string, deg float64) (float64, float64) {
	w, h := c.Measure(s)
	rad := gg.Radians(math.Abs(deg))
	return w*math.Cos(rad) + h*math.Sin(rad), w*math.Sin(rad) + h*math.Cos(rad)
}

// TextRotated draws s rotated counter-clockwise by deg so that the top edge
// of its bounding box sits at y. ax picks the horizontal anchor of that box:
// 0 left edge at x, 0.5 centered, 1 right edge at x.
func (c *Canvas) TextRotated(s string, x, y, deg, ax float64, col color.Color) {
	if deg == 0 {
		c.Text(s, x, y, ax, 1, col)
		return
	}
	bw, bh := c.rotatedExtent(s, deg)
	cx := x + (0.5-ax)*bw
	cy := y + bh/2

	c.dc.Push()
	c.dc.RotateAbout(gg.Radians(-deg), cx, cy)
	c.Text(s, cx, cy, 0.5, 0.5, col)
	c.dc.Pop()
}

// Trimmed crops the canvas to the drawn content plus padIn inches of
// background on each side.
func (c *Canvas) Trimmed(padIn float64) image.Image {
	src, ok := c.dc.Image().(*image.RGBA)
	if !ok {
		return c.dc.Image()
	}
	content := contentBounds(src)
	if content.Empty() {
		return src
	}

	pad := int(math.Round(c.Inch(padIn)))
	out := image.NewRGBA(image.Rect(0, 0, content.Dx()+2*pad, content.Dy()+2*pad))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(pad, pad, pad+content.Dx(), pad+content.Dy()), src, content.Min, draw.Src)
	return out
}

// contentBounds is the smallest rectangle holding every non-white pixel.
func contentBounds(img *image.RGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			i := (x - b.Min.X) * 4
			if row[i] == 0xff && row[i+1] == 0xff && row[i+2] == 0xff && row[i+3] == 0xff {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX || maxY < minY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
