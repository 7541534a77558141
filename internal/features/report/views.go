package report

import (
	"image/color"

	"royalty-viz/internal/features/aggregate"
	"royalty-viz/internal/features/charts"
	"royalty-viz/internal/royalty"
)

// A view turns the table into one plot: aggregate, then map groups onto
// marks. Artifacts and dashboard panels are views with different parameters.
type view interface {
	Plot(t *royalty.Table) charts.Plot
}

// barView groups with Query and draws one bar per group.
type barView struct {
	Query   aggregate.Query
	Palette func(n int) charts.Palette

	Title, XLabel, YLabel string
	Horizontal            bool
	ValueLabels           bool
	Rotation, Anchor      float64
	Style                 charts.Style
}

func (v barView) Plot(t *royalty.Table) charts.Plot {
	groups := aggregate.GroupBy(t, v.Query)
	palette := v.Palette(len(groups))

	bars := make([]charts.Bar, len(groups))
	for i, g := range groups {
		bars[i] = charts.Bar{Label: g.Key, Value: g.Value, Color: palette.At(i)}
	}
	return charts.BarChart{
		Title:        v.Title,
		XLabel:       v.XLabel,
		YLabel:       v.YLabel,
		Bars:         bars,
		Horizontal:   v.Horizontal,
		ValueLabels:  v.ValueLabels,
		ValueFormat:  Currency,
		TickRotation: v.Rotation,
		TickAnchor:   v.Anchor,
		Style:        v.Style,
	}
}

// pieView groups with Query and draws one wedge per group.
type pieView struct {
	Query         aggregate.Query
	Palette       func(n int) charts.Palette
	Title         string
	PercentFormat string
	Style         charts.Style
}

func (v pieView) Plot(t *royalty.Table) charts.Plot {
	groups := aggregate.GroupBy(t, v.Query)
	palette := v.Palette(len(groups))

	slices := make([]charts.Slice, len(groups))
	for i, g := range groups {
		slices[i] = charts.Slice{Label: g.Key, Value: g.Value, Color: palette.At(i)}
	}
	return charts.PieChart{
		Title:         v.Title,
		Slices:        slices,
		PercentFormat: v.PercentFormat,
		StartAngle:    90,
		Style:         v.Style,
	}
}

// histogramView bins royalty_amount.
type histogramView struct {
	Bins                  int
	LogY                  bool
	Edge                  color.Color
	Title, XLabel, YLabel string
	Style                 charts.Style
}

func (v histogramView) Plot(t *royalty.Table) charts.Plot {
	h := aggregate.NewHistogram(t.Amounts(), v.Bins)
	return charts.HistogramChart{
		Title:  v.Title,
		XLabel: v.XLabel,
		YLabel: v.YLabel,
		Edges:  h.Edges,
		Counts: h.Counts,
		LogY:   v.LogY,
		Fill:   charts.SkyBlue,
		Alpha:  0.7,
		Edge:   v.Edge,
		Style:  v.Style,
	}
}

// summaryView is the key statistics text box.
type summaryView struct {
	Size float64
}

func (v summaryView) Plot(t *royalty.Table) charts.Plot {
	return charts.TextPanel{
		Lines:    SummaryLines(aggregate.Summarize(t)),
		Size:     v.Size,
		Box:      charts.LightBlue,
		BoxAlpha: 0.7,
		X:        0.1,
		Y:        0.5,
	}
}

// gridView composes other views on a grid.
type gridView struct {
	Title      string
	Rows, Cols int
	Space      float64
	Cells      []gridCell
}

type gridCell struct {
	Row, Col, RowSpan, ColSpan int
	View                       view
}

func (v gridView) Plot(t *royalty.Table) charts.Plot {
	cells := make([]charts.Cell, len(v.Cells))
	for i, c := range v.Cells {
		cells[i] = charts.Cell{
			Row: c.Row, Col: c.Col, RowSpan: c.RowSpan, ColSpan: c.ColSpan,
			Plot: c.View.Plot(t),
		}
	}
	return charts.Grid{
		Title:     v.Title,
		TitleSize: 16,
		Rows:      v.Rows,
		Cols:      v.Cols,
		HSpace:    v.Space,
		WSpace:    v.Space,
		Cells:     cells,
	}
}
