package report

import (
	"fmt"
	"io"

	"royalty-viz/internal/features/aggregate"
	"royalty-viz/internal/format"
	"royalty-viz/internal/royalty"

	"github.com/dustin/go-humanize"
)

// WriteStats prints the key statistics and a per-channel revenue breakdown.
func WriteStats(w io.Writer, t *royalty.Table, mode format.Mode) error {
	s := aggregate.Summarize(t)

	summary := format.NewTable(mode, "Key Statistics")
	summary.Header("Metric", "Value")
	summary.Row("Total Revenue", Currency(s.TotalRevenue))
	summary.Row("Average Transaction", "$"+humanize.FormatFloat("#,###.##", s.MeanTransaction))
	summary.Row("Total Transactions", humanize.Comma(int64(s.Transactions)))
	summary.Row("Unique Artists", s.UniqueArtists)
	summary.Row("Channels", s.UniqueChannels)
	summary.Row("Regions", s.UniqueRegions)
	summary.AlignRight(2)

	byChannel := format.NewTable(mode, "Revenue by Channel")
	byChannel.Header("Channel", "Transactions", "Revenue", "Share")
	revenue := aggregate.GroupBy(t, aggregate.Query{
		GroupBy: royalty.ColChannel, Reduce: aggregate.Sum, Order: aggregate.ByValueDesc,
	})
	for _, g := range revenue {
		share := 0.0
		if s.TotalRevenue > 0 {
			share = g.Value / s.TotalRevenue * 100
		}
		byChannel.Row(g.Key, humanize.Comma(int64(g.Count)), Currency(g.Value), fmt.Sprintf("%.1f%%", share))
	}
	byChannel.Footer("Total", humanize.Comma(int64(s.Transactions)), Currency(s.TotalRevenue), "100.0%")
	byChannel.AlignRight(2, 3, 4)

	_, err := fmt.Fprintf(w, "%s\n\n%s\n", summary.String(), byChannel.String())
	return err
}
