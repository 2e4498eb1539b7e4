package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sales-report/internal/model"
)

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &d
}

func record(region, product string, units int, total float64, d *time.Time) model.SalesRecord {
	return model.SalesRecord{Region: region, Product: product, Units: units, Total: total, Date: d}
}

func TestAggregateTwoRegions(t *testing.T) {
	res := Aggregate([]model.SalesRecord{
		record("East", "Widget", 10, 50, date(t, "2024-01-15")),
		record("West", "Widget", 5, 25, date(t, "2024-01-20")),
	})

	assert.Equal(t, 2, res.TotalRecords)
	assert.Equal(t, 75.0, res.TotalSales)

	east := res.ByRegion.Get("East")
	require.NotNil(t, east)
	assert.Equal(t, 50.0, east.SalesTotal)
	assert.Equal(t, 10, east.UnitsTotal)

	west := res.ByRegion.Get("West")
	require.NotNil(t, west)
	assert.Equal(t, 25.0, west.SalesTotal)
	assert.Equal(t, 5, west.UnitsTotal)

	widget := res.ByProduct.Get("Widget")
	require.NotNil(t, widget)
	assert.Equal(t, 75.0, widget.SalesTotal)
	assert.Equal(t, 15, widget.UnitsTotal)

	jan := res.ByMonth.Get("2024-01")
	require.NotNil(t, jan)
	assert.Equal(t, 75.0, jan.SalesTotal)
	assert.Equal(t, 15, jan.UnitsTotal)
}

func TestAggregateMissingDateSkipsMonthTableOnly(t *testing.T) {
	res := Aggregate([]model.SalesRecord{
		record("East", "Widget", 10, 50, date(t, "2024-01-15")),
		record("East", "Gadget", 3, 30, nil),
	})

	assert.Equal(t, 2, res.TotalRecords)
	assert.Equal(t, 80.0, res.TotalSales)
	assert.Equal(t, 80.0, res.ByRegion.Get("East").SalesTotal)
	assert.Equal(t, 1, res.ByMonth.Len())
	assert.Equal(t, 50.0, res.ByMonth.Get("2024-01").SalesTotal)
}

func TestAggregateDimensionTotalsMatchGrandTotal(t *testing.T) {
	records := []model.SalesRecord{
		record("East", "Widget", 10, 50, date(t, "2024-01-15")),
		record("West", "Gadget", 5, 25, date(t, "2024-02-20")),
		record("North", "Widget", 2, -10, nil),
		record("East", "Gizmo", 1, 5.5, date(t, "2024-02-01")),
	}
	res := Aggregate(records)

	sum := func(table *model.GroupTable) float64 {
		total := 0.0
		for _, s := range table.Buckets() {
			total += s.SalesTotal
		}
		return total
	}

	assert.InDelta(t, res.TotalSales, sum(res.ByRegion), 1e-9)
	assert.InDelta(t, res.TotalSales, sum(res.ByProduct), 1e-9)
	// The dateless record is absent from the month table.
	assert.InDelta(t, res.TotalSales+10, sum(res.ByMonth), 1e-9)
}

func TestAggregateEmptyInput(t *testing.T) {
	res := Aggregate(nil)

	assert.Zero(t, res.TotalRecords)
	assert.Zero(t, res.TotalSales)
	assert.Zero(t, res.ByRegion.Len())
	assert.Zero(t, res.ByProduct.Len())
	assert.Zero(t, res.ByMonth.Len())
}
