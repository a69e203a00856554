package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accounts_backend/internal/handlers"
)

// RegisterRoutes mounts every handler group plus the health endpoint.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	root := router.Group("")

	h.AuthHandler.RegisterRoutes(root)
	h.UserHandler.RegisterRoutes(root)
	h.ProtectedHandler.RegisterRoutes(root)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
