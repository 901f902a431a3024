package api

import (
	_ "spacex-dashboard/docs"
	"spacex-dashboard/internal/api/handler"
	"spacex-dashboard/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title SpaceX Launch Records Dashboard API
// @version 1.0
// @description Chart figures, reactive updates and record downloads for the launch dashboard.
// @BasePath /api/v1

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.GET("/", h.Page)

	r.GET("/api/v1/layout", h.GetLayout)
	r.GET("/api/v1/dataset", h.GetDataset)
	r.POST("/api/v1/update", h.Update)
	r.GET("/api/v1/charts/pie", h.GetPieChart)
	r.GET("/api/v1/charts/scatter", h.GetScatterChart)
	r.GET("/api/v1/records", h.GetRecords)

	// Rendered images: /charts/<graph id>.<svg|png>
	r.GET("/charts/*", h.GetChartImage)

	r.GET("/swagger/*", httpSwagger.WrapHandler.ServeHTTP)
}
