package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/globalwebwork/task-management-api/internal/constants"
	apierrors "github.com/globalwebwork/task-management-api/internal/errors"
	"github.com/globalwebwork/task-management-api/internal/services"
)

// RequireAuth verifies the bearer token on protected routes and stores the
// token subject in the request context. Failure short-circuits the request
// with a 401 before any handler logic runs.
func RequireAuth(issuer *services.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		subject, err := issuer.Verify(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenExpired) {
				apierrors.Unauthorized(c, "Token expired")
			} else {
				apierrors.Unauthorized(c, "Invalid or expired token")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeySubject, subject)
		c.Next()
	}
}

// GetSubject retrieves the authenticated user's unique ID from context.
func GetSubject(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeySubject)
	if !exists {
		return "", false
	}

	subject, ok := value.(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
