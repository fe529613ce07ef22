package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Entry *EntryHandler
	Tag   *TagHandler
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, handlers *Handlers) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Entry routes
	entries := router.Group("/entries")
	{
		entries.GET("", handlers.Entry.List)
		entries.POST("", handlers.Entry.Create)
		entries.GET("/:id", handlers.Entry.GetByID)
		entries.PUT("/:id", handlers.Entry.Update)
		entries.DELETE("/:id", handlers.Entry.Delete)
	}

	// Tag vocabulary
	router.GET("/tags", handlers.Tag.List)
}
