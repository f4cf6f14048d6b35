package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jkim-dev/budget_tracker_app/internal/apperrors"
	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
	"github.com/jkim-dev/budget_tracker_app/internal/middleware"
	"github.com/jkim-dev/budget_tracker_app/internal/platform/config"
	"github.com/jkim-dev/budget_tracker_app/internal/utils"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: userService, cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account with the given email and password.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "Registration details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and issues a bearer access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Bad email and bad password are indistinguishable to the client.
		if errors.Is(err, apperrors.ErrForbidden) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondServiceError(c, err, "Failed to authenticate user")
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue access token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, TokenType: "Bearer"})
}
