package royalty

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DefaultSize(t *testing.T) {
	tbl := Generate(DefaultSeed, DefaultRecords)
	require.Equal(t, 1000, tbl.Len())
	assert.Len(t, tbl.Records(), 1000)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(DefaultSeed, DefaultRecords)
	b := Generate(DefaultSeed, DefaultRecords)
	if diff := cmp.Diff(a.Records(), b.Records()); diff != "" {
		t.Fatalf("same seed produced different tables:\n%s", diff)
	}

	c := Generate(DefaultSeed+1, DefaultRecords)
	assert.NotEqual(t, a.Amounts(), c.Amounts())
}

func TestGenerate_LabelSetsFullyObserved(t *testing.T) {
	tbl := Generate(DefaultSeed, DefaultRecords)

	tests := []struct {
		col  Column
		want []string
	}{
		{ColChannel, Labels(Channels)},
		{ColRegion, Labels(Regions)},
		{ColStatus, Labels(Statuses)},
		{ColArtist, ArtistNames(DefaultArtists)},
	}
	for _, tt := range tests {
		t.Run(string(tt.col), func(t *testing.T) {
			observed := make(map[string]bool)
			for _, v := range tbl.Column(tt.col) {
				observed[v] = true
			}
			for v := range observed {
				assert.Contains(t, tt.want, v)
			}
			assert.Len(t, observed, len(tt.want))
			assert.Equal(t, len(tt.want), tbl.Distinct(tt.col))
		})
	}
}

func TestGenerate_ChannelWeightsRoughlyHonoured(t *testing.T) {
	tbl := Generate(DefaultSeed, 20000)
	counts := make(map[string]int)
	for _, v := range tbl.Column(ColChannel) {
		counts[v]++
	}
	for _, w := range Channels {
		got := float64(counts[w.Label]) / float64(tbl.Len())
		assert.InDelta(t, w.Weight, got, 0.02, w.Label)
	}
}

func TestArtistNames(t *testing.T) {
	names := ArtistNames(3)
	if diff := cmp.Diff([]string{"Artist_001", "Artist_002", "Artist_003"}, names); diff != "" {
		t.Errorf("ArtistNames mismatch:\n%s", diff)
	}
	assert.Equal(t, "Artist_050", ArtistNames(50)[49])
}

func TestTable_IsolatedFromCaller(t *testing.T) {
	rows := []Record{{ArtistName: "Artist_001", RoyaltyAmount: 10}}
	tbl := NewTable(rows)
	rows[0].RoyaltyAmount = 99

	assert.Equal(t, 10.0, tbl.Amount(0))

	out := tbl.Records()
	out[0].RoyaltyAmount = 77
	assert.Equal(t, 10.0, tbl.Amount(0))
}

func TestTable_DimensionOutOfRange(t *testing.T) {
	tbl := NewTable([]Record{{ArtistName: "Artist_001"}})
	assert.Equal(t, "", tbl.Dimension(-1, ColArtist))
	assert.Equal(t, "", tbl.Dimension(1, ColArtist))
	assert.Equal(t, "", tbl.Dimension(0, ColAmount))
	assert.Equal(t, 0.0, tbl.Amount(5))
}

func TestProperty_Generator(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("table has exactly n records", prop.ForAll(
		func(seed uint64, n int) bool {
			return Generate(seed, n).Len() == n
		},
		gen.UInt64(),
		gen.IntRange(0, 500),
	))

	properties.Property("every royalty amount is strictly positive", prop.ForAll(
		func(seed uint64) bool {
			for _, v := range Generate(seed, 300).Amounts() {
				if !(v > 0) {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.Property("categorical values stay within their label sets", prop.ForAll(
		func(seed uint64) bool {
			allowed := map[Column]map[string]bool{
				ColChannel: toSet(Labels(Channels)),
				ColRegion:  toSet(Labels(Regions)),
				ColStatus:  toSet(Labels(Statuses)),
				ColArtist:  toSet(ArtistNames(DefaultArtists)),
			}
			tbl := Generate(seed, 200)
			for col, set := range allowed {
				for _, v := range tbl.Column(col) {
					if !set[v] {
						return false
					}
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func toSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}
