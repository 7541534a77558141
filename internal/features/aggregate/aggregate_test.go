package aggregate

import (
	"testing"

	"royalty-viz/internal/royalty"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func fixture() *royalty.Table {
	return royalty.NewTable([]royalty.Record{
		{ArtistName: "Artist_002", LicensingChannel: "Radio", Region: "Europe", RoyaltyAmount: 10, PaymentStatus: "Paid"},
		{ArtistName: "Artist_001", LicensingChannel: "Streaming", Region: "Europe", RoyaltyAmount: 40, PaymentStatus: "Paid"},
		{ArtistName: "Artist_003", LicensingChannel: "Radio", Region: "Global", RoyaltyAmount: 5, PaymentStatus: "Hold"},
		{ArtistName: "Artist_001", LicensingChannel: "TV/Film", Region: "Africa", RoyaltyAmount: 25, PaymentStatus: "Pending"},
		{ArtistName: "Artist_002", LicensingChannel: "Streaming", Region: "Global", RoyaltyAmount: 20, PaymentStatus: "Paid"},
	})
}

func TestGroupBy_SumByKey(t *testing.T) {
	got := GroupBy(fixture(), Query{GroupBy: royalty.ColChannel, Reduce: Sum})
	want := []Group{
		{Key: "Radio", Value: 15, Count: 2},
		{Key: "Streaming", Value: 60, Count: 2},
		{Key: "TV/Film", Value: 25, Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupBy mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupBy_SumAscending(t *testing.T) {
	got := GroupBy(fixture(), Query{GroupBy: royalty.ColChannel, Reduce: Sum, Order: ByValueAsc})
	assert.Equal(t, []string{"Radio", "TV/Film", "Streaming"}, Keys(got))
	assert.Equal(t, []float64{15, 25, 60}, Values(got))
}

func TestGroupBy_TopNDescending(t *testing.T) {
	got := GroupBy(fixture(), Query{GroupBy: royalty.ColArtist, Reduce: Sum, Order: ByValueDesc, Limit: 2})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Artist_001", "Artist_002"}, Keys(got))
	assert.Equal(t, []float64{65, 30}, Values(got))
}

func TestGroupBy_TiesBreakByKey(t *testing.T) {
	tbl := royalty.NewTable([]royalty.Record{
		{ArtistName: "B", RoyaltyAmount: 1},
		{ArtistName: "A", RoyaltyAmount: 1},
		{ArtistName: "C", RoyaltyAmount: 2},
	})
	desc := GroupBy(tbl, Query{GroupBy: royalty.ColArtist, Reduce: Sum, Order: ByValueDesc})
	assert.Equal(t, []string{"C", "A", "B"}, Keys(desc))

	asc := GroupBy(tbl, Query{GroupBy: royalty.ColArtist, Reduce: Sum, Order: ByValueAsc})
	assert.Equal(t, []string{"A", "B", "C"}, Keys(asc))
}

func TestGroupBy_Count(t *testing.T) {
	got := GroupBy(fixture(), Query{GroupBy: royalty.ColStatus, Reduce: Count})
	want := []Group{
		{Key: "Hold", Value: 1, Count: 1},
		{Key: "Paid", Value: 3, Count: 3},
		{Key: "Pending", Value: 1, Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupBy mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupBy_Empty(t *testing.T) {
	assert.Nil(t, GroupBy(royalty.NewTable(nil), Query{GroupBy: royalty.ColRegion}))
}

func TestGroupBy_LimitLargerThanGroups(t *testing.T) {
	got := GroupBy(fixture(), Query{GroupBy: royalty.ColRegion, Reduce: Sum, Order: ByValueDesc, Limit: 10})
	assert.Len(t, got, 3)
}

func TestReducerString(t *testing.T) {
	assert.Equal(t, "sum", Sum.String())
	assert.Equal(t, "count", Count.String())
	assert.Equal(t, "unknown", Reducer(9).String())
}

func TestProperty_Partition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	columns := []royalty.Column{royalty.ColArtist, royalty.ColChannel, royalty.ColRegion, royalty.ColStatus}

	properties.Property("group sums add up to the table total", prop.ForAll(
		func(seed uint64, n int) bool {
			tbl := royalty.Generate(seed, n)
			total := floats.Sum(tbl.Amounts())
			for _, col := range columns {
				groups := GroupBy(tbl, Query{GroupBy: col, Reduce: Sum})
				sum := floats.Sum(Values(groups))
				if !scalar.EqualWithinAbsOrRel(sum, total, 1e-9, 1e-9) {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.IntRange(1, 1500),
	))

	properties.Property("group counts add up to the row count", prop.ForAll(
		func(seed uint64, n int) bool {
			tbl := royalty.Generate(seed, n)
			for _, col := range columns {
				rows := 0
				for _, g := range GroupBy(tbl, Query{GroupBy: col, Reduce: Count}) {
					rows += int(g.Value)
				}
				if rows != n {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.IntRange(1, 1500),
	))

	properties.TestingRun(t)
}
