package engine

import "go-sales-report/internal/model"

// Aggregate folds a sequence of records into the three grouping tables and
// the grand totals. A fixed left-to-right pass keeps float summation
// reproducible for a given input order. Records without a date contribute
// to the region and product tables and the grand total, but not to the
// month table.
func Aggregate(records []model.SalesRecord) *model.AnalysisResult {
	res := &model.AnalysisResult{
		ByRegion:  model.NewGroupTable(),
		ByProduct: model.NewGroupTable(),
		ByMonth:   model.NewGroupTable(),
	}

	for _, rec := range records {
		res.TotalRecords++
		res.TotalSales += rec.Total

		addTo(res.ByRegion, rec.Region, rec)
		addTo(res.ByProduct, rec.Product, rec)
		if month := rec.Month(); month != "" {
			addTo(res.ByMonth, month, rec)
		}
	}

	return res
}

func addTo(table *model.GroupTable, key string, rec model.SalesRecord) {
	stats := table.GetOrInsert(key)
	stats.SalesTotal += rec.Total
	stats.UnitsTotal += rec.Units
}
