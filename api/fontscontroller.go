package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes registers the liveness endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}

// RegisterFontRoutes exposes the font registry.
func RegisterFontRoutes(r *gin.Engine, lister FontLister) {
	r.GET("/api/fonts", func(c *gin.Context) {
		if lister == nil {
			c.JSON(http.StatusOK, gin.H{"fonts": []any{}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"fonts": lister.List()})
	})
}
