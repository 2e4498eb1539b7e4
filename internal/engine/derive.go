package engine

import "go-sales-report/internal/model"

// DeriveShares attaches each bucket's share of the grand total, identically
// across all three dimensions. The denominator is always the grand total,
// never the dimension subtotal. A zero grand total leaves every share at 0
// rather than producing NaN; negative bucket totals yield negative shares.
func DeriveShares(res *model.AnalysisResult) {
	for _, table := range []*model.GroupTable{res.ByRegion, res.ByProduct, res.ByMonth} {
		for _, stats := range table.Buckets() {
			if res.TotalSales != 0 {
				stats.SharePercent = stats.SalesTotal / res.TotalSales * 100
			} else {
				stats.SharePercent = 0
			}
		}
	}
}
