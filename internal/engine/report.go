package engine

import (
	"fmt"
	"strings"
	"time"

	"go-sales-report/internal/model"
)

const generatedLayout = "2006-01-02 15:04:05"

// RenderReport renders the aggregated result as a fixed-structure text
// report: header with generation timestamp and totals, then one section
// per grouping dimension. Region and product sections are ordered by sales
// descending (key order on ties), the month section chronologically.
// Rendering is read-only, so the same result always yields identical bytes.
func RenderReport(res *model.AnalysisResult, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("DATA ANALYSIS RESULTS\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(generatedLayout))

	fmt.Fprintf(&b, "Total Records: %d\n", res.TotalRecords)
	fmt.Fprintf(&b, "Total Sales: $%.2f\n\n", res.TotalSales)

	b.WriteString("SALES BY REGION:\n")
	writeSection(&b, res.ByRegion.BySalesDesc())

	b.WriteString("\nSALES BY PRODUCT:\n")
	writeSection(&b, res.ByProduct.BySalesDesc())

	b.WriteString("\nSALES BY MONTH:\n")
	writeSection(&b, res.ByMonth.ByKey())

	return b.String()
}

func writeSection(b *strings.Builder, buckets []*model.GroupStats) {
	for _, s := range buckets {
		fmt.Fprintf(b, "%s: $%.2f (%.1f%%) - %d units\n", s.Key, s.SalesTotal, s.SharePercent, s.UnitsTotal)
	}
}
