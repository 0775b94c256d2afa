package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/treadworks/orderflow/internal/domain/errors"
	"github.com/treadworks/orderflow/internal/domain/model"
	pkgAuth "github.com/treadworks/orderflow/internal/pkg/auth"
)

const (
	// CurrentUserContextKey is a gin context key for the authenticated user.
	CurrentUserContextKey = "currentUser"
	authCookieName        = "orderflow_token"
)

// UserResolver turns a token into the acting user.
type UserResolver interface {
	ParseToken(token string) (string, error)
	CurrentUser(ctx context.Context, username string) (*model.User, error)
}

// AuthRequired ensures a valid session and resolves the acting user before
// the handler runs, so handlers always see the account's current role and site.
func AuthRequired(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		username, err := resolver.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		user, err := resolver.CurrentUser(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
