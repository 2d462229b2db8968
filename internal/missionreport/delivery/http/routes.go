package http

import (
	"mission-report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/mission-report")
	api.Use(mw.Auth())
	{
		api.POST("/params/reset", h.ResetParameters)
		api.GET("/params", h.GetParameters)
		api.PUT("/params", h.UpdateParameters)
		api.PUT("/selection", h.SelectReport)
		api.POST("/generate", h.Generate)
		api.GET("/charts", h.GetCharts)
		api.POST("/charts/export", h.ExportCharts)
	}

	internal := r.Group("/internal/v1/mission-report")
	internal.Use(mw.InternalAuth())
	{
		internal.POST("/generate", h.GenerateInternal)
	}
}
