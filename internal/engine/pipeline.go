package engine

import (
	"time"

	"go-sales-report/internal/model"
)

// Analysis bundles everything one pipeline run produced.
type Analysis struct {
	Result  *model.AnalysisResult
	Report  string
	Skipped []model.SkipNotice
}

// Run executes the full pipeline over already-parsed rows: normalize,
// aggregate, derive shares, render. Malformed rows are collected as skip
// notices for the caller to log and never abort the run. Zero surviving
// rows is a valid terminal state: all totals and shares are 0.
func Run(rows []model.RawRow, generatedAt time.Time) *Analysis {
	records := make([]model.SalesRecord, 0, len(rows))
	var skipped []model.SkipNotice

	for _, row := range rows {
		rec, skip := Normalize(row)
		if skip != nil {
			skipped = append(skipped, *skip)
			continue
		}
		records = append(records, rec)
	}

	result := Aggregate(records)
	DeriveShares(result)

	return &Analysis{
		Result:  result,
		Report:  RenderReport(result, generatedAt),
		Skipped: skipped,
	}
}
