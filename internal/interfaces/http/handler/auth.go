package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedidoflow/backend/internal/application/identity"
	"github.com/pedidoflow/backend/internal/domain/shared"
	"github.com/pedidoflow/backend/internal/interfaces/http/dto"
)

// LoginResponse is the body of a successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

// Login authenticates with the configured credential pair and returns
// a bearer token. Malformed bodies get the same 401 as wrong
// credentials so the endpoint leaks nothing about what was off.
func (h *AuthHandler) Login(c *gin.Context) {
	var input identity.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeInvalidCredentials, shared.ErrInvalidCredentials.Message)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{Token: result.Token, ExpiresAt: result.ExpiresAt})
}
