package report

import (
	"fmt"
	"math"
	"strings"

	"royalty-viz/internal/features/aggregate"
	"royalty-viz/internal/features/charts"
	"royalty-viz/internal/royalty"

	"github.com/dustin/go-humanize"
)

// Artifact is one chart image: what to draw and where.
type Artifact struct {
	Name   string
	File   string
	Width  float64 // inches
	Height float64 // inches
	view   view
}

// Plot builds the artifact's plot from t.
func (a Artifact) Plot(t *royalty.Table) charts.Plot { return a.view.Plot(t) }

var titleStyle = charts.Style{TitleSize: 14}

var (
	channelRevenue = barView{
		Query:       aggregate.Query{GroupBy: royalty.ColChannel, Reduce: aggregate.Sum, Order: aggregate.ByValueAsc},
		Palette:     charts.Viridis,
		Title:       "Total Revenue by Licensing Channel",
		XLabel:      "Revenue ($)",
		Horizontal:  true,
		ValueLabels: true,
		Style:       titleStyle,
	}

	// ranked by summed revenue, not by transaction count
	topArtists = barView{
		Query:    aggregate.Query{GroupBy: royalty.ColArtist, Reduce: aggregate.Sum, Order: aggregate.ByValueDesc, Limit: 10},
		Palette:  charts.Plasma,
		Title:    "Top 10 Artists by Total Revenue",
		YLabel:   "Revenue ($)",
		Rotation: 45,
		Anchor:   1,
		Style:    titleStyle,
	}

	regionalDistribution = pieView{
		Query:         aggregate.Query{GroupBy: royalty.ColRegion, Reduce: aggregate.Sum},
		Palette:       charts.Set3,
		Title:         "Revenue Distribution by Region",
		PercentFormat: "%.1f%%",
		Style:         titleStyle,
	}

	paymentStatus = barView{
		Query:    aggregate.Query{GroupBy: royalty.ColStatus, Reduce: aggregate.Count},
		Palette:  charts.Coolwarm,
		Title:    "Transaction Count by Payment Status",
		YLabel:   "Number of Transactions",
		Rotation: 45,
		Anchor:   0.5,
		Style:    titleStyle,
	}

	royaltyDistribution = histogramView{
		Bins:   50,
		LogY:   true,
		Edge:   charts.EdgeBlack,
		Title:  "Distribution of Royalty Amounts",
		XLabel: "Royalty Amount ($)",
		YLabel: "Frequency",
		Style:  titleStyle,
	}

	executiveDashboard = gridView{
		Title: "Artist Royalty Analytics Dashboard",
		Rows:  3,
		Cols:  3,
		Space: 0.3,
		Cells: []gridCell{
			{Row: 0, Col: 0, ColSpan: 2, View: barView{
				Query:      channelRevenue.Query,
				Palette:    charts.Viridis,
				Title:      "Revenue by Channel",
				XLabel:     "Revenue ($)",
				Horizontal: true,
			}},
			{Row: 0, Col: 2, View: barView{
				Query:    aggregate.Query{GroupBy: royalty.ColArtist, Reduce: aggregate.Sum, Order: aggregate.ByValueDesc, Limit: 5},
				Palette:  charts.Plasma,
				Title:    "Top 5 Artists",
				Rotation: 45,
				Anchor:   1,
				Style:    charts.Style{TickSize: 8},
			}},
			{Row: 1, Col: 0, View: pieView{
				Query:         regionalDistribution.Query,
				Palette:       charts.Set3,
				Title:         "Regional Revenue",
				PercentFormat: "%.0f%%",
			}},
			{Row: 1, Col: 1, View: barView{
				Query:    paymentStatus.Query,
				Palette:  charts.Coolwarm,
				Title:    "Payment Status",
				Rotation: 45,
				Anchor:   0.5,
			}},
			{Row: 1, Col: 2, View: histogramView{
				Bins:   30,
				Title:  "Revenue Distribution",
				XLabel: "Amount ($)",
			}},
			{Row: 2, Col: 0, ColSpan: 3, View: summaryView{Size: 12}},
		},
	}
)

// Artifacts returns the report's charts in render order.
func Artifacts() []Artifact {
	return []Artifact{
		{Name: "Channel revenue", File: "revenue_by_channel.png", Width: 12, Height: 6, view: channelRevenue},
		{Name: "Top artists", File: "top_artists.png", Width: 12, Height: 6, view: topArtists},
		{Name: "Regional distribution", File: "regional_distribution.png", Width: 10, Height: 8, view: regionalDistribution},
		{Name: "Payment status", File: "payment_status.png", Width: 10, Height: 6, view: paymentStatus},
		{Name: "Royalty distribution", File: "royalty_distribution.png", Width: 10, Height: 6, view: royaltyDistribution},
		{Name: "Executive dashboard", File: "executive_dashboard.png", Width: 16, Height: 12, view: executiveDashboard},
	}
}

// Currency formats a whole-dollar amount, e.g. $12,345.
func Currency(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// SummaryLines is the dashboard's key statistics block.
func SummaryLines(s aggregate.Summary) []string {
	return []string{
		"Key Statistics:",
		"• Total Revenue: " + Currency(s.TotalRevenue),
		"• Average Transaction: $" + humanize.FormatFloat("#,###.##", s.MeanTransaction),
		"• Total Transactions: " + humanize.Comma(int64(s.Transactions)),
		fmt.Sprintf("• Unique Artists: %d", s.UniqueArtists),
		fmt.Sprintf("• Channels: %d", s.UniqueChannels),
		fmt.Sprintf("• Regions: %d", s.UniqueRegions),
	}
}

// Lookup finds an artifact by file name, with or without the .png suffix.
func Lookup(name string) (Artifact, bool) {
	name = strings.TrimSuffix(name, ".png") + ".png"
	for _, a := range Artifacts() {
		if a.File == name {
			return a, true
		}
	}
	return Artifact{}, false
}
