package aggregate

import (
	"math"
	"sort"

	"royalty-viz/internal/royalty"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram holds equal-width bins. Edges has len(Counts)+1 entries.
type Histogram struct {
	Edges  []float64
	Counts []float64
}

// Total is the number of values binned.
func (h Histogram) Total() float64 {
	return floats.Sum(h.Counts)
}

// NewHistogram bins values into `bins` equal-width buckets spanning
// [min, max]. The last bucket includes max.
func NewHistogram(values []float64, bins int) Histogram {
	if bins <= 0 || len(values) == 0 {
		return Histogram{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if hi == lo {
		hi = lo + 1
	}

	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)
	edges[bins] = hi

	// stat.Histogram treats the last divider as exclusive.
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	return Histogram{Edges: edges, Counts: counts}
}

// Summary is the set of headline numbers shown on the dashboard.
type Summary struct {
	TotalRevenue    float64
	MeanTransaction float64
	Transactions    int
	UniqueArtists   int
	UniqueChannels  int
	UniqueRegions   int
}

// Summarize computes the summary statistics of a table.
func Summarize(t *royalty.Table) Summary {
	amounts := t.Amounts()
	s := Summary{
		Transactions:   t.Len(),
		UniqueArtists:  t.Distinct(royalty.ColArtist),
		UniqueChannels: t.Distinct(royalty.ColChannel),
		UniqueRegions:  t.Distinct(royalty.ColRegion),
	}
	if len(amounts) > 0 {
		s.TotalRevenue = floats.Sum(amounts)
		s.MeanTransaction = stat.Mean(amounts, nil)
	}
	return s
}
