package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nutrisync/internal/user"
)

const userIDKey = "userID"

// AuthMiddleware validates bearer tokens issued by the user service.
type AuthMiddleware struct {
	users *user.Service
}

func NewAuthMiddleware(users *user.Service) *AuthMiddleware {
	return &AuthMiddleware{users: users}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := m.parseBearer(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// OptionalAuth attaches the user id when a valid token is present but lets
// anonymous requests through.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := m.parseBearer(c); ok {
			c.Set(userIDKey, id)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) parseBearer(c *gin.Context) (int64, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, false
	}
	id, err := m.users.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return 0, false
	}
	return id, true
}

func currentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
