package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"talentswipe_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The original client talks to /users/*, /jd/generate_jd and
// /outreach/{generate-outreach,send-outreach-emails}; those paths must
// stay registered next to the grouped ones.
func TestOriginalClientPathsStayRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	base := NewBaseHandler(validator.New())
	api := router.Group("/api/v1")
	NewUserHandler(base, nil).RegisterRoutes(api)
	NewJDHandler(base, nil).RegisterRoutes(api)
	NewOutreachHandler(base, nil).RegisterRoutes(api)

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		registered[fmt.Sprintf("%s %s", route.Method, route.Path)] = true
	}

	expected := []string{
		// grouped paths
		http.MethodPost + " /api/v1/auth/register",
		http.MethodPost + " /api/v1/auth/login",
		http.MethodGet + " /api/v1/profile",
		http.MethodPost + " /api/v1/profile/onboarding",
		http.MethodGet + " /api/v1/myprofile",
		http.MethodPost + " /api/v1/jd/generate",
		http.MethodPost + " /api/v1/outreach/generate",
		http.MethodPost + " /api/v1/outreach/send",
		// original client paths
		http.MethodPost + " /api/v1/users/register",
		http.MethodPost + " /api/v1/users/login",
		http.MethodGet + " /api/v1/users/profile",
		http.MethodGet + " /api/v1/users/myprofile",
		http.MethodPost + " /api/v1/users/onboarding",
		http.MethodPost + " /api/v1/jd/generate_jd",
		http.MethodPost + " /api/v1/outreach/generate-outreach",
		http.MethodPost + " /api/v1/outreach/send-outreach-emails",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
