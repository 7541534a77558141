package royalty

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Generator draws royalty records from a seeded source.
type Generator struct {
	rng     *rand.Rand
	artists []string
}

// NewGenerator returns a generator over `artists` synthetic artist names.
// The same seed always yields the same sequence of records.
func NewGenerator(seed uint64, artists int) *Generator {
	if artists <= 0 {
		artists = DefaultArtists
	}
	return &Generator{
		rng:     rand.New(rand.NewPCG(seed, seed)),
		artists: ArtistNames(artists),
	}
}

// Generate builds a table of n records with the default artist pool.
func Generate(seed uint64, n int) *Table {
	return NewGenerator(seed, DefaultArtists).Table(n)
}

// Table samples n records. Columns are drawn one after another, so the
// value of a column depends only on the seed and n, not on other columns.
func (g *Generator) Table(n int) *Table {
	if n < 0 {
		n = 0
	}

	artists := make([]string, n)
	for i := range artists {
		artists[i] = g.artists[g.rng.IntN(len(g.artists))]
	}
	channels := g.choice(Channels, n)
	regions := g.choice(Regions, n)

	amounts := make([]float64, n)
	for i := range amounts {
		amounts[i] = g.exponential(AmountScale)
	}
	for i := range amounts {
		amounts[i] *= Multipliers[g.rng.IntN(len(Multipliers))]
	}

	statuses := g.choice(Statuses, n)

	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			ArtistName:       artists[i],
			LicensingChannel: channels[i],
			Region:           regions[i],
			RoyaltyAmount:    amounts[i],
			PaymentStatus:    statuses[i],
		}
	}
	return NewTable(records)
}

// choice samples n labels from a weighted set.
func (g *Generator) choice(set []Weighted, n int) []string {
	cdf := weights(set)
	floats.CumSum(cdf, cdf)
	total := cdf[len(cdf)-1]

	out := make([]string, n)
	for i := range out {
		u := g.rng.Float64() * total
		idx := sort.Search(len(cdf), func(j int) bool { return u < cdf[j] })
		if idx == len(cdf) {
			idx = len(cdf) - 1
		}
		out[i] = set[idx].Label
	}
	return out
}

// exponential returns a strictly positive draw with the given mean.
func (g *Generator) exponential(scale float64) float64 {
	for {
		if v := g.rng.ExpFloat64() * scale; v > 0 {
			return v
		}
	}
}
