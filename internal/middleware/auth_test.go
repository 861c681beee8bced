package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"recipe-be/internal/common"
	"recipe-be/internal/entities"
)

type fakeAuthenticator map[string]*entities.User

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (*entities.User, error) {
	switch token {
	case "inactive":
		return nil, common.ErrorInactiveUser
	case "broken":
		return nil, errors.New("db down")
	}
	if u, ok := f[token]; ok {
		return u, nil
	}
	return nil, common.ErrorInvalidToken
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := fakeAuthenticator{
		"cook":  {ID: 7, Email: "cook@example.com", IsActive: true},
		"staff": {ID: 1, Email: "admin@example.com", IsActive: true, IsStaff: true},
	}

	r := gin.New()
	protected := r.Group("", AuthMiddleware(auth))
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c), "email": CurrentUser(c).Email})
	})
	protected.GET("/admin", RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"unknown scheme", "Basic abc", http.StatusUnauthorized},
		{"scheme without token", "Token ", http.StatusUnauthorized},
		{"invalid token", "Token nope", http.StatusUnauthorized},
		{"inactive user", "Token inactive", http.StatusUnauthorized},
		{"lookup failure", "Token broken", http.StatusInternalServerError},
		{"token scheme", "Token cook", http.StatusOK},
		{"bearer scheme", "Bearer cook", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"email":"cook@example.com"}`, w.Body.String())
			}
		})
	}
}

func TestRequireStaff(t *testing.T) {
	r := newAuthRouter()

	for token, want := range map[string]int{"cook": http.StatusForbidden, "staff": http.StatusNoContent} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Token "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, token)
	}
}

func TestTokenFromHeader(t *testing.T) {
	tok, ok := tokenFromHeader("token  abc ")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = tokenFromHeader("abc")
	assert.False(t, ok)
}
