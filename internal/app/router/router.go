// Package router assembles the gin route table of the dashboard API.
package router

import (
	"github.com/gin-gonic/gin"

	"te_dashboard/internal/feature/dashboard/transport/handler"
)

// NewRouter wires the dashboard and refresh handlers onto a gin engine.
func NewRouter(dash *handler.DashboardHandler, refresh *handler.RefreshHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// Curated ticker bar
		api.GET("/ticker", dash.GetTicker)
		// Economy category tables (snapshot filtered by group)
		api.GET("/indicators", dash.GetIndicators)
		// Series and forecast overlay for drill-down charts
		api.GET("/historical/:indicator", dash.GetHistorical)
		api.GET("/forecast/:indicator", dash.GetForecast)
		// Markets tables and candlestick history
		api.GET("/markets/:category", dash.GetMarkets)
		api.GET("/ohlc/:symbol", dash.GetOHLC)
		// News feed and economic calendar
		api.GET("/news", dash.GetNews)
		api.GET("/calendar", dash.GetCalendar)
		// Auto-refresh controls
		api.POST("/refresh", refresh.RefreshNow)
		api.GET("/refresh", refresh.Status)
		api.PUT("/refresh/interval", refresh.SetInterval)
	}

	return r
}
