package router

import (
	"github.com/gin-gonic/gin"

	"ekthaa/internal/handler"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Invoice *handler.InvoiceHandler
	Catalog *handler.CatalogHandler
	Health  *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware. global runs
// on every request; heavy runs only on the PDF and export routes.
func Setup(h Handlers, global []gin.HandlerFunc, heavy []gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(global...)

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// Path used by existing web clients for PDF generation.
	r.POST("/generate-invoice", with(heavy, h.Invoice.GeneratePDF)...)

	v1 := r.Group("/api/v1")
	v1.GET("/healthz", h.Health.Liveness)
	v1.GET("/readyz", h.Health.Readiness)

	invoices := v1.Group("/invoices")
	invoices.POST("/totals", h.Invoice.Totals)
	invoices.POST("/validate", h.Invoice.Validate)
	invoices.POST("/pdf", with(heavy, h.Invoice.GeneratePDF)...)
	invoices.POST("/export", with(heavy, h.Invoice.Export)...)

	cat := v1.Group("/catalog")
	cat.GET("/units", h.Catalog.Units)
	cat.GET("/:table/categories", h.Catalog.Categories)
	cat.GET("/:table/categories/:id/options", h.Catalog.Options)
	cat.GET("/:table/search", h.Catalog.Search)
	cat.POST("/:table/selection", h.Catalog.Select)

	return r
}

func with(mw []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(mw)+1)
	return append(append(out, mw...), h)
}
