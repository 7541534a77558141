package aggregate

// Grouping and reduction over royalty tables.
// Pipeline: group -> reduce -> order -> limit.

import (
	"sort"

	"royalty-viz/internal/royalty"
)

// View is indexed read access to a dataset. *royalty.Table implements it.
type View interface {
	Len() int
	Dimension(i int, col royalty.Column) string
	Amount(i int) float64
}

// Reducer folds the rows of one group into a single value.
type Reducer int

const (
	Sum   Reducer = iota // sum of royalty_amount
	Count                // number of rows
)

func (r Reducer) String() string {
	switch r {
	case Sum:
		return "sum"
	case Count:
		return "count"
	default:
		return "unknown"
	}
}

// Order controls the order of the returned groups.
type Order int

const (
	ByKey      Order = iota // alphabetical by key
	ByValueAsc              // smallest value first, ties by key
	ByValueDesc             // largest value first, ties by key
)

// Query describes one group-by + reduce.
type Query struct {
	GroupBy royalty.Column
	Reduce  Reducer
	Order   Order
	Limit   int // 0 = all groups
}

// Group is one aggregated bucket.
type Group struct {
	Key   string
	Value float64
	Count int
}

// GroupBy runs q over view.
func GroupBy(view View, q Query) []Group {
	if view == nil || view.Len() == 0 {
		return nil
	}

	index := make(map[string]int)
	var groups []Group
	for i := 0; i < view.Len(); i++ {
		key := view.Dimension(i, q.GroupBy)
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, Group{Key: key})
		}
		g := &groups[pos]
		g.Count++
		if q.Reduce == Sum {
			g.Value += view.Amount(i)
		}
	}

	if q.Reduce == Count {
		for i := range groups {
			groups[i].Value = float64(groups[i].Count)
		}
	}

	SortGroups(groups, q.Order)

	if q.Limit > 0 && len(groups) > q.Limit {
		groups = groups[:q.Limit]
	}
	return groups
}

// SortGroups orders groups in place.
func SortGroups(groups []Group, order Order) {
	switch order {
	case ByValueAsc:
		sort.SliceStable(groups, func(i, j int) bool {
			if groups[i].Value != groups[j].Value {
				return groups[i].Value < groups[j].Value
			}
			return groups[i].Key < groups[j].Key
		})
	case ByValueDesc:
		sort.SliceStable(groups, func(i, j int) bool {
			if groups[i].Value != groups[j].Value {
				return groups[i].Value > groups[j].Value
			}
			return groups[i].Key < groups[j].Key
		})
	default:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	}
}

// Keys returns the group keys in order.
func Keys(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Key
	}
	return out
}

// Values returns the group values in order.
func Values(groups []Group) []float64 {
	out := make([]float64, len(groups))
	for i, g := range groups {
		out[i] = g.Value
	}
	return out
}
