package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accounts_backend/internal/middleware"
	"accounts_backend/internal/services"
	"accounts_backend/internal/services/dto"
	"accounts_backend/pkg/apperrors"
)

// UserHandler exposes the authenticated profile surface. Users can only
// act on their own record; other ids answer 404 to avoid leaking which
// accounts exist.
type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes mounts the profile endpoints on rg.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/auth/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/:id", h.GetProfile)
		users.PATCH("/:id", h.UpdateProfile)
		users.DELETE("/:id", h.DeleteAccount)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.authorizeOwnRecord(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile changes the display name. An email key in the payload is
// accepted and ignored, the response carries the unchanged email.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.authorizeOwnRecord(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.UpdateProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteAccount removes the user after confirming the current password.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := h.authorizeOwnRecord(c)
	if !ok {
		return
	}

	var req dto.DeleteUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.DeleteAccount(db, userID, req.CurrentPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// authorizeOwnRecord resolves the authenticated user id and checks it
// matches the path id.
func (h *UserHandler) authorizeOwnRecord(c *gin.Context) (string, bool) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return "", false
	}

	if pathID := c.Param("id"); pathID != userID {
		apperrors.HandleError(c, apperrors.ErrUserNotFound)
		return "", false
	}

	return userID, true
}
