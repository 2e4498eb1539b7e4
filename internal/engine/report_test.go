package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-sales-report/internal/model"
)

func TestRenderReportGolden(t *testing.T) {
	res := Aggregate([]model.SalesRecord{
		record("East", "Widget", 10, 50, date(t, "2024-01-15")),
		record("West", "Widget", 5, 25, date(t, "2024-01-20")),
	})
	DeriveShares(res)

	generatedAt := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	got := RenderReport(res, generatedAt)

	want := `DATA ANALYSIS RESULTS
Generated: 2024-02-01 12:00:00

Total Records: 2
Total Sales: $75.00

SALES BY REGION:
East: $50.00 (66.7%) - 10 units
West: $25.00 (33.3%) - 5 units

SALES BY PRODUCT:
Widget: $75.00 (100.0%) - 15 units

SALES BY MONTH:
2024-01: $75.00 (100.0%) - 15 units
`
	assert.Equal(t, want, got)
}

func TestRenderReportDeterministic(t *testing.T) {
	res := Aggregate([]model.SalesRecord{
		record("South", "Gizmo", 4, 12.34, date(t, "2023-11-02")),
		record("North", "Gadget", 9, 99.99, nil),
	})
	DeriveShares(res)

	generatedAt := time.Date(2023, 12, 1, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, RenderReport(res, generatedAt), RenderReport(res, generatedAt))
}

func TestRenderReportTieBreaksByKey(t *testing.T) {
	// Insertion order is Zeta first; equal sales totals must fall back to
	// lexicographic key order.
	res := Aggregate([]model.SalesRecord{
		record("Zeta", "Widget", 1, 10, nil),
		record("Alpha", "Widget", 1, 10, nil),
	})
	DeriveShares(res)

	got := RenderReport(res, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Less(t,
		indexOf(t, got, "Alpha: $10.00"),
		indexOf(t, got, "Zeta: $10.00"),
	)
}

func TestRenderReportMonthsChronological(t *testing.T) {
	res := Aggregate([]model.SalesRecord{
		record("East", "Widget", 1, 10, date(t, "2024-03-01")),
		record("East", "Widget", 1, 10, date(t, "2023-12-31")),
		record("East", "Widget", 1, 10, date(t, "2024-01-15")),
	})
	DeriveShares(res)

	got := RenderReport(res, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	assert.Less(t, indexOf(t, got, "2023-12:"), indexOf(t, got, "2024-01:"))
	assert.Less(t, indexOf(t, got, "2024-01:"), indexOf(t, got, "2024-03:"))
}

func TestRenderReportNegativeTotals(t *testing.T) {
	res := Aggregate([]model.SalesRecord{
		record("East", "Widget", 2, -25, nil),
		record("West", "Widget", 1, 75, nil),
	})
	DeriveShares(res)

	got := RenderReport(res, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, got, "Total Sales: $50.00")
	assert.Contains(t, got, "East: $-25.00 (-50.0%) - 2 units")
}

func TestRenderReportEmptyResult(t *testing.T) {
	res := Aggregate(nil)
	DeriveShares(res)

	got := RenderReport(res, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	want := `DATA ANALYSIS RESULTS
Generated: 2024-01-01 00:00:00

Total Records: 0
Total Sales: $0.00

SALES BY REGION:

SALES BY PRODUCT:

SALES BY MONTH:
`
	assert.Equal(t, want, got)
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	idx := strings.Index(s, sub)
	assert.GreaterOrEqual(t, idx, 0, "expected report to contain %q", sub)
	return idx
}
