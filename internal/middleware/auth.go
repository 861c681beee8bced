package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recipe-be/internal/common"
	"recipe-be/internal/entities"
)

const (
	// UserIDKey holds the authenticated user's ID in the gin context
	UserIDKey = "user_id"
	// UserKey holds the authenticated *entities.User in the gin context
	UserKey = "user"
)

// Authenticator resolves a bearer token to a user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// AuthMiddleware requires an "Authorization: Token <t>" or
// "Authorization: Bearer <t>" header and stores the resolved user in the
// context. Requests without valid credentials are rejected with 401.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFromHeader(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "Authentication credentials were not provided.")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case errors.Is(err, common.ErrorInactiveUser):
			unauthorized(c, "User inactive or deleted.")
			return
		case errors.Is(err, common.ErrorInvalidToken):
			unauthorized(c, "Invalid token.")
			return
		case err != nil:
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireStaff rejects authenticated callers without the staff flag. It must
// run after AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "You do not have permission to perform this action.",
			})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID, or 0 outside
// AuthMiddleware.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(UserIDKey)
}

// CurrentUser returns the authenticated user, or nil outside AuthMiddleware.
func CurrentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*entities.User)
	return user
}

func tokenFromHeader(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", false
	}
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Token")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
