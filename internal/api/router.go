package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/usell/billing/internal/api/v1"
	"github.com/usell/billing/internal/rest/middleware"
)

type Handlers struct {
	Health *v1.HealthHandler
	Export *v1.ExportHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Invoice routes
	invoices := router.Group("/invoices")
	{
		invoices.GET("/:id/excel", handlers.Export.GetInvoiceExcel)
	}
}
