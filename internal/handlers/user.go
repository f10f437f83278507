package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/globalwebwork/task-management-api/internal/dto"
	apierrors "github.com/globalwebwork/task-management-api/internal/errors"
	"github.com/globalwebwork/task-management-api/internal/middleware"
	"github.com/globalwebwork/task-management-api/internal/services"
)

// UserHandler serves the admin user directory.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// ListUsers returns every registered user. Admin only.
func (h *UserHandler) ListUsers(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	requester, err := h.authService.GetUser(c.Request.Context(), subject)
	if err != nil && !errors.Is(err, services.ErrUserNotFound) {
		respondServiceError(c, err)
		return
	}
	if err != nil || !requester.IsAdmin() {
		apierrors.Forbidden(c, "Access denied. Only admins can view all users")
		return
	}

	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicUserDTOs(users))
}
