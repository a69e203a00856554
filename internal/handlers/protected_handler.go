package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accounts_backend/internal/middleware"
)

// ProtectedHandler serves the test-only endpoint used to verify bearer
// authentication end to end.
type ProtectedHandler struct {
	*BaseHandler
}

func NewProtectedHandler(base *BaseHandler) *ProtectedHandler {
	return &ProtectedHandler{BaseHandler: base}
}

func (h *ProtectedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	protected := rg.Group("/protected")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("", h.Get)
	}
}

func (h *ProtectedHandler) Get(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You have access!"})
}
