package model

import "sort"

// GroupStats accumulates sales and unit totals for one bucket within a
// grouping dimension. SharePercent stays 0 until the derive phase fills it
// in relative to the grand total.
type GroupStats struct {
	Key          string  `json:"key"`
	SalesTotal   float64 `json:"sales_total"`
	UnitsTotal   int     `json:"units_total"`
	SharePercent float64 `json:"share_percent"`
}

// GroupTable is one grouping dimension: bucket stats keyed by group key.
// First-seen key order is retained so output ordering stays deterministic.
type GroupTable struct {
	stats map[string]*GroupStats
	order []string
}

func NewGroupTable() *GroupTable {
	return &GroupTable{stats: make(map[string]*GroupStats)}
}

// Get returns the bucket for key, or nil when the key was never seen.
func (t *GroupTable) Get(key string) *GroupStats {
	return t.stats[key]
}

// GetOrInsert returns the bucket for key, creating it with zero totals on
// first use.
func (t *GroupTable) GetOrInsert(key string) *GroupStats {
	if s, ok := t.stats[key]; ok {
		return s
	}
	s := &GroupStats{Key: key}
	t.stats[key] = s
	t.order = append(t.order, key)
	return s
}

// Len returns the number of buckets.
func (t *GroupTable) Len() int {
	return len(t.order)
}

// Buckets returns the stats in first-seen order.
func (t *GroupTable) Buckets() []*GroupStats {
	out := make([]*GroupStats, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.stats[key])
	}
	return out
}

// BySalesDesc returns the stats sorted by sales total descending. Equal
// totals fall back to lexicographic key order.
func (t *GroupTable) BySalesDesc() []*GroupStats {
	out := t.Buckets()
	sort.Slice(out, func(i, j int) bool {
		if out[i].SalesTotal != out[j].SalesTotal {
			return out[i].SalesTotal > out[j].SalesTotal
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// ByKey returns the stats sorted lexicographically by key.
func (t *GroupTable) ByKey() []*GroupStats {
	out := t.Buckets()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// AnalysisResult is the terminal aggregate of one pipeline run.
type AnalysisResult struct {
	TotalRecords int
	TotalSales   float64
	ByRegion     *GroupTable
	ByProduct    *GroupTable
	ByMonth      *GroupTable
}
