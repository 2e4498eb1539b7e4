package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-sales-report/internal/model"
)

const dateLayout = "2006-01-02"

// Normalize converts a raw row into a typed sales record. Rows whose Units
// or Total fail numeric coercion are rejected with a skip notice; every
// other field problem falls back to a documented default: Price -> 0,
// Date -> absent, Region/Product -> "Unknown".
func Normalize(row model.RawRow) (model.SalesRecord, *model.SkipNotice) {
	units, err := parseUnits(row["Units"])
	if err != nil {
		return model.SalesRecord{}, &model.SkipNotice{Row: row, Field: "Units", Cause: err}
	}

	total, err := strconv.ParseFloat(strings.TrimSpace(row["Total"]), 64)
	if err != nil {
		return model.SalesRecord{}, &model.SkipNotice{Row: row, Field: "Total", Cause: err}
	}

	rec := model.SalesRecord{
		Units:   units,
		Total:   total,
		Region:  fieldOrUnknown(row["Region"]),
		Product: fieldOrUnknown(row["Product"]),
	}

	// Price is informational only: a bad or negative value degrades to 0
	// instead of rejecting the row.
	if price, err := strconv.ParseFloat(strings.TrimSpace(row["Price"]), 64); err == nil && price >= 0 {
		rec.Price = price
	}

	if d := strings.TrimSpace(row["Date"]); d != "" {
		if t, err := time.Parse(dateLayout, d); err == nil {
			rec.Date = &t
		}
	}

	return rec, nil
}

func parseUnits(s string) (int, error) {
	units, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if units < 0 {
		return 0, fmt.Errorf("units must be non-negative, got %d", units)
	}
	return units, nil
}

func fieldOrUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Unknown"
	}
	return s
}
