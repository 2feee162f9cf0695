package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guardianpro/guardianpro-api/internal/middleware"
	"github.com/guardianpro/guardianpro-api/internal/service"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

// AuthHandler handles admin session HTTP endpoints.
type AuthHandler struct {
	authService *service.AdminAuthService
	rateLimiter *middleware.LoginRateLimiter
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AdminAuthService, rateLimiter *middleware.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type verifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// Login handles POST /admin-auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "username and password are required")
		return
	}

	clientIP := c.ClientIP()
	if !h.rateLimiter.Allow(clientIP) {
		utils.Error(c, 429, "TOO_MANY_ATTEMPTS", "Too many login attempts, try again later")
		return
	}

	result, err := h.authService.Login(req.Username, req.Password, clientIP)
	if err != nil {
		switch err {
		case utils.ErrInvalidCredentials, utils.ErrAccountInactive:
			utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid credentials")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	h.rateLimiter.Reset(clientIP)
	utils.Success(c, 200, "Login successful", result)
}

// Verify handles POST /admin-auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "token is required")
		return
	}

	admin, err := h.authService.Verify(req.Token)
	if err != nil {
		utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	utils.Success(c, 200, "Token valid", gin.H{
		"valid": true,
		"admin": admin,
	})
}

// Logout handles POST /admin-auth/logout. It always succeeds; the token is
// only decoded to attribute the logout in the activity log.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := ""
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}

	h.authService.Logout(token)
	utils.Success(c, 200, "Logged out", gin.H{"success": true})
}
