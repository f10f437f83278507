package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/globalwebwork/task-management-api/internal/dto"
	"github.com/globalwebwork/task-management-api/internal/middleware"
	"github.com/globalwebwork/task-management-api/internal/models"
	"github.com/globalwebwork/task-management-api/internal/repository"
	"github.com/globalwebwork/task-management-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestUserHandler_ListUsers(t *testing.T) {
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
	handler := NewUserHandler(authService)

	r := gin.New()
	r.GET("/api/users", middleware.RequireAuth(tokenIssuer), handler.ListUsers)

	users := []models.User{
		{UniqueID: "1000", Name: "Root", Email: "root@example.com", PasswordHash: "x", Role: models.RoleAdmin, Department: "General"},
		{UniqueID: "2000", Name: "Emp", Email: "emp@example.com", PasswordHash: "x", Role: models.RoleEmployee, Department: "Sales"},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}

	get := func(subject string) *httptest.ResponseRecorder {
		token, err := tokenIssuer.Issue(subject)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// Employees and unknown subjects get a 403.
	w := get("2000")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = get("9999")
	require.Equal(t, http.StatusForbidden, w.Code)

	// Admin gets the directory, hashes excluded.
	w = get("1000")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []dto.PublicUserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	require.NotContains(t, w.Body.String(), "password_hash")
}
