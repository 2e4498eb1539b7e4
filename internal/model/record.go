package model

import "time"

// RawRow is a single parsed input line: column name -> raw string value,
// as produced by the upstream CSV decoder. Discarded after normalization.
type RawRow map[string]string

// SalesRecord represents a single normalized input record
type SalesRecord struct {
	Units   int
	Price   float64
	Total   float64
	Date    *time.Time // nil when the source row had no parsable date
	Region  string
	Product string
}

// Month returns the record's YYYY-MM bucket key, or "" when it has no date.
func (r SalesRecord) Month() string {
	if r.Date == nil {
		return ""
	}
	return r.Date.Format("2006-01")
}
