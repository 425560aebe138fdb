package http

import (
	"github.com/gin-gonic/gin"
)

// SavingsRoutes registers the calculator API under /api.
type SavingsRoutes struct {
	handler *Handler
}

// NewSavingsRoutes creates a new SavingsRoutes instance.
func NewSavingsRoutes(handler *Handler) *SavingsRoutes {
	return &SavingsRoutes{handler: handler}
}

// RegisterRoutes registers the estimate, parameters, comparison and report endpoints.
func (r *SavingsRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/estimate", r.handler.EstimateSavings)
	rg.POST("/estimate", r.handler.EstimateSavingsJSON)
	rg.GET("/parameters", r.handler.GetParameters)
	rg.GET("/compare", r.handler.CompareCostTiers)
	rg.GET("/report.pdf", r.handler.DownloadReport)
}

// PageRoutes registers the calculator page and its static assets.
type PageRoutes struct {
	handler *PageHandler
}

// NewPageRoutes creates a new PageRoutes instance.
func NewPageRoutes(handler *PageHandler) *PageRoutes {
	return &PageRoutes{handler: handler}
}

// RegisterRoutes registers GET / and the page's GET /estimate on the given group.
func (r *PageRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", r.handler.Index)
	rg.GET(estimatePath, r.handler.Estimate)
}
