package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/globalwebwork/task-management-api/internal/dto"
	apierrors "github.com/globalwebwork/task-management-api/internal/errors"
	"github.com/globalwebwork/task-management-api/internal/middleware"
	"github.com/globalwebwork/task-management-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	tokenIssuer *services.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokenIssuer *services.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenIssuer: tokenIssuer,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		UniqueID   string `json:"uniqueId"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		Role       string `json:"role"`
		Department string `json:"department"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		UniqueID:   req.UniqueID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    dto.ToAuthUserDTO(*user),
	})
}

// Login verifies credentials and hands out a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		UniqueID string `json:"uniqueId"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.UniqueID == "" || req.Password == "" {
		apierrors.BadRequest(c, "Unique ID and password are required")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.UniqueID, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := h.tokenIssuer.Issue(user.UniqueID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         dto.ToAuthUserDTO(*user),
	})
}

// ChangePassword replaces the authenticated user's password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type ChangePasswordRequest struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		apierrors.BadRequest(c, "Current password and new password are required")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), subject, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
	})
}
