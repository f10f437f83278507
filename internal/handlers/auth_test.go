package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/globalwebwork/task-management-api/internal/middleware"
	"github.com/globalwebwork/task-management-api/internal/models"
	"github.com/globalwebwork/task-management-api/internal/repository"
	"github.com/globalwebwork/task-management-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	tokenIssuer *services.TokenIssuer
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db, time.Second)
	authService := services.NewAuthService(userRepo)
	tokenIssuer := services.NewTokenIssuer("test-secret")
	handler := NewAuthHandler(authService, tokenIssuer)

	r := gin.New()
	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/change-password", middleware.RequireAuth(tokenIssuer), handler.ChangePassword)

	return authTestEnv{
		db:          db,
		router:      r,
		authService: authService,
		tokenIssuer: tokenIssuer,
	}
}

func (env authTestEnv) do(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func registerPayload() map[string]string {
	return map[string]string{
		"uniqueId": "1234",
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "pass1234",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Message string `json:"message"`
		User    struct {
			UniqueID   string `json:"unique_id"`
			Role       string `json:"role"`
			Department string `json:"department"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "User registered successfully", response.Message)
	require.Equal(t, "1234", response.User.UniqueID)
	require.Equal(t, "employee", response.User.Role)
	require.Equal(t, "General", response.User.Department)

	// The hash must not leak into the response.
	require.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_RegisterValidationAndConflicts(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := registerPayload()
	payload["uniqueId"] = "12"
	w := env.do(t, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "4-8 digits")

	payload = registerPayload()
	payload["password"] = "short"
	w = env.do(t, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "exactly 8 characters")

	w = env.do(t, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate unique ID and duplicate email both come back as 400.
	w = env.do(t, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Unique ID already exists")

	payload = registerPayload()
	payload["uniqueId"] = "5678"
	w = env.do(t, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Email already exists")
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"uniqueId": "1234",
		"password": "pass1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		AccessToken string `json:"access_token"`
		User        struct {
			UniqueID string `json:"unique_id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)
	require.Equal(t, "1234", response.User.UniqueID)

	subject, err := env.tokenIssuer.Verify(response.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "1234", subject)
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"uniqueId": "1234",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "required")

	unknown := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"uniqueId": "9999",
		"password": "pass1234",
	})
	require.Equal(t, http.StatusUnauthorized, unknown.Code)

	wrong := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"uniqueId": "1234",
		"password": "wrongpwd",
	})
	require.Equal(t, http.StatusUnauthorized, wrong.Code)

	// Identifier enumeration guard: identical bodies for both failures.
	require.Equal(t, unknown.Body.String(), wrong.Body.String())
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	token, err := env.tokenIssuer.Issue("1234")
	require.NoError(t, err)

	// No token: rejected before any logic runs.
	w = env.do(t, http.MethodPost, "/api/auth/change-password", "", map[string]string{
		"currentPassword": "pass1234",
		"newPassword":     "newpass1",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"currentPassword": "wrongpwd",
		"newPassword":     "newpass1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Current password is incorrect")

	w = env.do(t, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"currentPassword": "pass1234",
		"newPassword":     "newpass1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Password changed successfully")

	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"uniqueId": "1234",
		"password": "newpass1",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_ChangePasswordUnknownSubject(t *testing.T) {
	env := setupAuthTestEnv(t)

	// Valid token for a user that was never registered.
	token, err := env.tokenIssuer.Issue("4321")
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"currentPassword": "pass1234",
		"newPassword":     "newpass1",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}
