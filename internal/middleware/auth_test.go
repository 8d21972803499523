package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"talentswipe_backend/internal/auth"
	"talentswipe_backend/internal/config"
	"talentswipe_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	gin.SetMode(gin.TestMode)
	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(AuthMiddleware())
	protected.GET("", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})

	admin := router.Group("/admin")
	admin.Use(AuthMiddleware(), RoleMiddleware(models.UserRoleAdmin))
	admin.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doAuthRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := authTestRouter()

	token, err := auth.GenerateToken("user-9", "recruiter")
	require.NoError(t, err)

	rec := doAuthRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-9")
	assert.Contains(t, rec.Body.String(), "recruiter")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := authTestRouter()

	rec := doAuthRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := authTestRouter()

	for _, header := range []string{"Bearer", "Basic abc", "Bearer not.a.token"} {
		rec := doAuthRequest(router, "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestRoleMiddlewareForbidsWrongRole(t *testing.T) {
	router := authTestRouter()

	token, err := auth.GenerateToken("user-9", "recruiter")
	require.NoError(t, err)

	rec := doAuthRequest(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleMiddlewareAllowsMatchingRole(t *testing.T) {
	router := authTestRouter()

	token, err := auth.GenerateToken("user-1", "admin")
	require.NoError(t, err)

	rec := doAuthRequest(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
