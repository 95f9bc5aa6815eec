package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"commerce-actions/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware admits callers holding a service token issued to the
// conversational front end.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxCallerKey = "caller"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			return
		}

		caller, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		c.Set(ctxCallerKey, caller)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetCaller(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxCallerKey)
	if !exists {
		return "", false
	}
	caller, ok := v.(string)
	return caller, ok
}
