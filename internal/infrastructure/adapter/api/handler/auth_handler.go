package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/api/dto"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Register handles the POST /register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		h.logger.Warn("Registration failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Login handles the POST /login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c)
		return
	}

	user, err := h.userUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Warn("Login failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
