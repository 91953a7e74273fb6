package handler

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hermes/backend/internal/infrastructure/auth"
	"github.com/hermes/backend/internal/infrastructure/config"
	"github.com/hermes/backend/internal/interfaces/http/middleware"
	"github.com/hermes/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

// testJWTConfig returns a default JWT config for tests
func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
	}
}

// setupTestRouter builds a gin engine with the standard middleware stack
// and the given route registrars mounted under /api/v1
func setupTestRouter(jwtService *auth.JWTService, registrars ...router.RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.RequestID())

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths:  []string{"/api/v1/auth/login"},
	}))
	for _, registrar := range registrars {
		r.Register(registrar)
	}
	r.Setup()

	return engine
}

// bearerToken issues an access token for the given user and role
func bearerToken(t *testing.T, jwtService *auth.JWTService, userID uuid.UUID, username, role string) string {
	t.Helper()
	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   userID,
		Username: username,
		Role:     role,
	})
	require.NoError(t, err)
	return "Bearer " + pair.AccessToken
}
