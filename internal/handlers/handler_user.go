package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
	"github.com/jkim-dev/budget_tracker_app/internal/middleware"
)

// UserHandler handles requests about the authenticated user's own account.
type UserHandler struct {
	userService portssvc.UserSvcFacade
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe godoc
// @Summary Get current user
// @Description Returns the profile of the authenticated user.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteMe godoc
// @Summary Delete current user
// @Description Permanently deletes the authenticated user's account and all
// @Description of its transactions.
// @Tags users
// @Security BearerAuth
// @Success 204 "Account deleted"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Superuser accounts cannot self-delete"
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
