//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"commerce-actions/internal/handler/middleware"
	"commerce-actions/internal/pkg/jwt"
	"commerce-actions/internal/usecase"
	"commerce-actions/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	r.GET("/protected", auth.RequireAuth(), func(c *gin.Context) {
		caller, _ := middleware.GetCaller(c)
		c.JSON(http.StatusOK, gin.H{"caller": caller})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("secret", "commerce-actions", time.Hour)
	router := newProtectedRouter(svc)

	t.Run("success: valid token exposes the caller", func(t *testing.T) {
		token, err := svc.GenerateToken("assistant")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "assistant", body["caller"])
	})

	t.Run("error: missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("error: expired token", func(t *testing.T) {
		token, err := jwt.NewService("secret", "commerce-actions", -time.Minute).GenerateToken("assistant")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
