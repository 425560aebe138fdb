package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup registers a set of routes on a router group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

var (
	_ RouteGroup = (*SavingsRoutes)(nil)
	_ RouteGroup = (*PageRoutes)(nil)
)
