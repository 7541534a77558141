package royalty

import "fmt"

// Column names a field of a Record, as used by grouping.
type Column string

const (
	ColArtist  Column = "artist_name"
	ColChannel Column = "licensing_channel"
	ColRegion  Column = "region"
	ColAmount  Column = "royalty_amount"
	ColStatus  Column = "payment_status"
)

// Record is one synthetic royalty payment.
type Record struct {
	ArtistName       string
	LicensingChannel string
	Region           string
	RoyaltyAmount    float64
	PaymentStatus    string
}

// Weighted is a categorical label with its sampling probability.
type Weighted struct {
	Label  string
	Weight float64
}

// Channels are the licensing channels and how often each is sampled.
var Channels = []Weighted{
	{"Streaming", 0.40},
	{"Radio", 0.15},
	{"TV/Film", 0.10},
	{"Digital Download", 0.15},
	{"Physical Sales", 0.05},
	{"Live Performance", 0.10},
	{"Sync License", 0.05},
}

var Regions = []Weighted{
	{"North America", 0.30},
	{"Europe", 0.25},
	{"Asia Pacific", 0.20},
	{"Latin America", 0.10},
	{"Middle East", 0.05},
	{"Africa", 0.05},
	{"Global", 0.05},
}

var Statuses = []Weighted{
	{"Paid", 0.70},
	{"Pending", 0.15},
	{"Processing", 0.08},
	{"Hold", 0.05},
	{"Disputed", 0.02},
}

// Multipliers scale the exponential base amount; one is picked uniformly per record.
var Multipliers = []float64{1, 2.5, 5, 3, 4, 1.5, 8}

const (
	DefaultArtists = 50
	DefaultRecords = 1000
	DefaultSeed    = 42

	// AmountScale is the mean of the exponential base amount.
	AmountScale = 50.0
)

// ArtistNames returns Artist_001 .. Artist_<n>.
func ArtistNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Artist_%03d", i+1)
	}
	return names
}

// Labels returns the labels of a weighted set in declaration order.
func Labels(set []Weighted) []string {
	out := make([]string, len(set))
	for i, w := range set {
		out[i] = w.Label
	}
	return out
}

func weights(set []Weighted) []float64 {
	out := make([]float64, len(set))
	for i, w := range set {
		out[i] = w.Weight
	}
	return out
}
