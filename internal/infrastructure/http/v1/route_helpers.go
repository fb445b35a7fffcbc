// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"tradewind/internal/infrastructure/http/v1/middleware"
)

// CatalogRouteHandler defines the interface for catalog handlers.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	GetByCode(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeletionMark(c *gin.Context)
}

// DocumentRouteHandler defines the interface for document handlers.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	GetByNumber(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Post(c *gin.Context)
	Unpost(c *gin.Context)
	AddLine(c *gin.Context)
	UpdateLine(c *gin.Context)
	RemoveLine(c *gin.Context)
}

// RegisterCatalogRoutes wires standard CRUD routes for one catalog, so
// catalogs do not repeat route tables.
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler, permission string) {
	group.GET("", middleware.RequirePermission(permission+":read"), handler.List)
	group.POST("", middleware.RequirePermission(permission+":create"), handler.Create)
	group.GET("/:id", middleware.RequirePermission(permission+":read"), handler.Get)
	group.GET("/by-code/:code", middleware.RequirePermission(permission+":read"), handler.GetByCode)
	group.PUT("/:id", middleware.RequirePermission(permission+":update"), handler.Update)
	group.DELETE("/:id", middleware.RequirePermission(permission+":delete"), handler.Delete)
	group.POST("/:id/deletion-mark", middleware.RequirePermission(permission+":delete"), handler.SetDeletionMark)
}

// RegisterDocumentRoutes wires standard CRUD, posting and line routes
// for one document type.
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler, permission string) {
	group.GET("", middleware.RequirePermission(permission+":read"), handler.List)
	group.POST("", middleware.RequirePermission(permission+":create"), handler.Create)
	group.GET("/:id", middleware.RequirePermission(permission+":read"), handler.Get)
	group.GET("/by-number/:number", middleware.RequirePermission(permission+":read"), handler.GetByNumber)
	group.PUT("/:id", middleware.RequirePermission(permission+":update"), handler.Update)
	group.DELETE("/:id", middleware.RequirePermission(permission+":delete"), handler.Delete)
	group.POST("/:id/post", middleware.RequirePermission(permission+":post"), handler.Post)
	group.POST("/:id/unpost", middleware.RequirePermission(permission+":unpost"), handler.Unpost)
	group.POST("/:id/lines", middleware.RequirePermission(permission+":update"), handler.AddLine)
	group.PUT("/:id/lines/:lineId", middleware.RequirePermission(permission+":update"), handler.UpdateLine)
	group.DELETE("/:id/lines/:lineId", middleware.RequirePermission(permission+":update"), handler.RemoveLine)
}
