package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	apierrors "github.com/globalwebwork/task-management-api/internal/errors"
	"github.com/globalwebwork/task-management-api/internal/services"
)

// respondServiceError maps service-layer errors onto the HTTP contract.
// Validation and domain failures carry their message through; anything
// unexpected is logged and answered generically so internal detail stays
// out of responses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidUniqueID),
		errors.Is(err, services.ErrInvalidPasswordLength),
		errors.Is(err, services.ErrWrongPassword):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUniqueIDTaken),
		errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrStoreUnavailable):
		log.Printf("store error: %v", err)
		apierrors.StoreUnavailable(c)
	default:
		log.Printf("unexpected error: %v", err)
		apierrors.InternalError(c, "")
	}
}
