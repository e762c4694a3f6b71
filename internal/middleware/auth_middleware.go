package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"panelboard/internal/auth"
	"panelboard/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	// TokenHeader carries the identity token on protected requests.
	TokenHeader = "Authentication"

	// IdentityKey is the gin context key holding the authenticated *model.User.
	IdentityKey = "identity"
)

// TokenVerifier resolves a token to the user it was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, tokenText string, now time.Time) (*model.User, error)
}

// TokenAuthMiddleware rejects requests without a valid token before any
// handler runs, and stores the resolved user for the handlers that follow.
func TokenAuthMiddleware(verifier TokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)

		user, err := verifier.Verify(c.Request.Context(), token, time.Now())
		if err != nil {
			status, message := authFailure(err)
			if status == http.StatusInternalServerError {
				logger.ErrorContext(c.Request.Context(), "token verification failed", "error", err)
			}
			c.AbortWithStatusJSON(status, gin.H{"message": message})
			return
		}

		c.Set(IdentityKey, user)
		c.Next()
	}
}

func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized, "token is missing on request"
	case errors.Is(err, auth.ErrInvalidOrExpiredToken):
		return http.StatusUnauthorized, "token is invalid or expired"
	case errors.Is(err, auth.ErrUnknownSubject):
		return http.StatusUnauthorized, "token subject no longer exists"
	default:
		return http.StatusInternalServerError, "an unexpected error occurred"
	}
}

// CurrentUser returns the user stored by TokenAuthMiddleware.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok && user != nil
}
