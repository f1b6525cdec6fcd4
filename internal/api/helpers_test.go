package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dishcovery/backend/internal/api"
	"github.com/dishcovery/backend/internal/service"
	"github.com/dishcovery/backend/internal/testhelpers"
)

// setupTestRouter builds a router with the full API surface over an in-memory
// database. Image uploads and rate limiting stay disabled.
func setupTestRouter(t *testing.T) (*gin.Engine, *service.AuthService, *gorm.DB) {
	return setupTestRouterWithEmail(t, service.NewEmailService())
}

func setupTestRouterWithEmail(t *testing.T, emailService service.IEmailService) (*gin.Engine, *service.AuthService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)

	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db)
	profileService := service.NewProfileService(db)

	router := gin.New()
	v1 := router.Group("/api/v1")

	api.NewAuthHandler(authService).RegisterRoutes(v1)
	api.NewRecipeHandler(recipeService, authService, emailService, nil, nil).RegisterRoutes(v1)
	api.NewProfileHandler(profileService, authService, nil).RegisterRoutes(v1)

	return router, authService, db
}

// authToken registers a user and returns a bearer token for it.
func authToken(t *testing.T, authService *service.AuthService, username string) string {
	t.Helper()

	user, err := authService.Register(context.Background(), username, "password123")
	require.NoError(t, err)

	token, err := authService.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
