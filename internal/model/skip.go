package model

import "fmt"

// SkipNotice describes a raw row that was excluded from aggregation: the
// offending row, the field that failed coercion, and the underlying cause.
// Skips are diagnostics for the caller to log, never failures.
type SkipNotice struct {
	Row   RawRow
	Field string
	Cause error
}

// Reason renders the notice for logs and persistence.
func (n SkipNotice) Reason() string {
	return fmt.Sprintf("cannot parse %s value %q: %v", n.Field, n.Row[n.Field], n.Cause)
}
