package royalty

// Table is an immutable, ordered collection of records.
type Table struct {
	records []Record
}

// NewTable wraps records. The slice is copied so later writes by the caller
// do not leak into the table.
func NewTable(records []Record) *Table {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Table{records: cp}
}

func (t *Table) Len() int { return len(t.records) }

// Records returns a copy of the rows.
func (t *Table) Records() []Record {
	cp := make([]Record, len(t.records))
	copy(cp, t.records)
	return cp
}

// Dimension returns the categorical value of column at row i.
// Unknown columns and out-of-range rows yield "".
func (t *Table) Dimension(i int, col Column) string {
	if i < 0 || i >= len(t.records) {
		return ""
	}
	r := t.records[i]
	switch col {
	case ColArtist:
		return r.ArtistName
	case ColChannel:
		return r.LicensingChannel
	case ColRegion:
		return r.Region
	case ColStatus:
		return r.PaymentStatus
	default:
		return ""
	}
}

// Amount returns royalty_amount at row i.
func (t *Table) Amount(i int) float64 {
	if i < 0 || i >= len(t.records) {
		return 0
	}
	return t.records[i].RoyaltyAmount
}

// Amounts returns the royalty_amount column.
func (t *Table) Amounts() []float64 {
	out := make([]float64, len(t.records))
	for i, r := range t.records {
		out[i] = r.RoyaltyAmount
	}
	return out
}

// Column returns a categorical column.
func (t *Table) Column(col Column) []string {
	out := make([]string, len(t.records))
	for i := range t.records {
		out[i] = t.Dimension(i, col)
	}
	return out
}

// Distinct counts the distinct values of a categorical column.
func (t *Table) Distinct(col Column) int {
	seen := make(map[string]struct{})
	for i := range t.records {
		seen[t.Dimension(i, col)] = struct{}{}
	}
	return len(seen)
}
