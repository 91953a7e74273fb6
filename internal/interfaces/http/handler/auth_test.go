package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	identityapp "github.com/hermes/backend/internal/application/identity"
	"github.com/hermes/backend/internal/domain/identity"
	"github.com/hermes/backend/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newAuthTestRouter(userRepo *MockUserRepository) (*auth.JWTService, http.Handler) {
	jwtService := auth.NewJWTService(testJWTConfig())
	authService := identityapp.NewAuthService(userRepo, jwtService, zap.NewNop())
	handler := NewAuthHandler(authService)
	return jwtService, setupTestRouter(jwtService, handler)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	user, err := identity.NewUser("admin", "admin123", identity.RoleAdmin)
	require.NoError(t, err)
	userRepo.On("FindByUsername", mock.Anything, "admin").Return(user, nil)

	_, engine := newAuthTestRouter(userRepo)

	body, _ := json.Marshal(LoginRequest{Username: "admin", Password: "admin123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.True(t, response["success"].(bool))
	data := response["data"].(map[string]interface{})
	token := data["token"].(map[string]interface{})
	assert.NotEmpty(t, token["access_token"])
	assert.NotEmpty(t, token["refresh_token"])
	assert.Equal(t, "Bearer", token["token_type"])

	userInfo := data["user"].(map[string]interface{})
	assert.Equal(t, "admin", userInfo["username"])
	assert.Equal(t, "admin", userInfo["role"])
	assert.Equal(t, user.ID.String(), userInfo["id"])
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	user, err := identity.NewUser("admin", "admin123", identity.RoleAdmin)
	require.NoError(t, err)
	userRepo.On("FindByUsername", mock.Anything, "admin").Return(user, nil)

	_, engine := newAuthTestRouter(userRepo)

	body, _ := json.Marshal(LoginRequest{Username: "admin", Password: "nope"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response["success"].(bool))
	errInfo := response["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_CREDENTIALS", errInfo["code"])
}

func TestAuthHandler_Login_InvalidRequestBody(t *testing.T) {
	userRepo := new(MockUserRepository)
	_, engine := newAuthTestRouter(userRepo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	userRepo.AssertNotCalled(t, "FindByUsername")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	userRepo := new(MockUserRepository)
	_, engine := newAuthTestRouter(userRepo)

	body, _ := json.Marshal(map[string]string{"username": "admin"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
