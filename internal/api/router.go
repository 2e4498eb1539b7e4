package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-sales-report/docs" // registers the generated swagger spec
	"go-sales-report/internal/api/handler"
	"go-sales-report/pkg/router"
)

func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/analyses", handler.CreateAnalysis)
	r.GET("/api/v1/analyses", handler.ListAnalyses)
	// More specific routes first
	r.GET("/api/v1/analyses/*/report", handler.GetAnalysisReport)
	r.GET("/api/v1/analyses/*/skips", handler.GetAnalysisSkips)
	// Generic analysis route last
	r.GET("/api/v1/analyses/*", handler.GetAnalysis)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
