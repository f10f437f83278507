package handlers

import (
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

type analyticsTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	tokenIssuer *services.TokenIssuer
}

func setupAnalyticsTestEnv(t *testing.T) analyticsTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db, time.Second)
	taskRepo := repository.NewTaskRepository(db, time.Second)
	tokenIssuer := services.NewTokenIssuer("test-secret")
	handler := NewAnalyticsHandler(services.NewAnalyticsService(taskRepo, userRepo))

	r := gin.New()
	protected := r.Group("/api")
	protected.Use(middleware.RequireAuth(tokenIssuer))
	protected.GET("/analytics/dashboard", handler.Dashboard)
	protected.GET("/ai/suggestions", handler.Suggestions)

	return analyticsTestEnv{
		db:          db,
		router:      r,
		tokenIssuer: tokenIssuer,
	}
}

func (env analyticsTestEnv) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env analyticsTestEnv) seedUser(t *testing.T, uniqueID string) string {
	t.Helper()
	require.NoError(t, env.db.Create(&models.User{
		UniqueID:     uniqueID,
		Name:         "User " + uniqueID,
		Email:        uniqueID + "@example.com",
		PasswordHash: "irrelevant",
		Role:         models.RoleEmployee,
		Department:   "General",
	}).Error)

	token, err := env.tokenIssuer.Issue(uniqueID)
	require.NoError(t, err)
	return token
}

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	env := setupAnalyticsTestEnv(t)
	token := env.seedUser(t, "1234")

	require.NoError(t, env.db.Create(&models.Task{
		Title:      "done",
		CreatedBy:  "1234",
		Status:     models.TaskStatusCompleted,
		Priority:   models.TaskPriorityHigh,
		DueDate:    time.Now().Add(-24 * time.Hour),
		Department: "Engineering",
	}).Error)
	require.NoError(t, env.db.Create(&models.Task{
		Title:      "late",
		CreatedBy:  "1234",
		Status:     models.TaskStatusPending,
		Priority:   models.TaskPriorityLow,
		DueDate:    time.Now().Add(-24 * time.Hour),
		Department: "Engineering",
	}).Error)

	w := env.get(t, "/api/analytics/dashboard", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Overview struct {
			TotalTasks     int `json:"total_tasks"`
			CompletedTasks int `json:"completed_tasks"`
			PendingTasks   int `json:"pending_tasks"`
			OverdueTasks   int `json:"overdue_tasks"`
		} `json:"overview"`
		PriorityDistribution struct {
			High int `json:"high"`
			Low  int `json:"low"`
		} `json:"priority_distribution"`
		DepartmentStats map[string]struct {
			Total     int `json:"total"`
			Completed int `json:"completed"`
		} `json:"department_stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Equal(t, 2, resp.Overview.TotalTasks)
	require.Equal(t, 1, resp.Overview.CompletedTasks)
	require.Equal(t, 1, resp.Overview.PendingTasks)
	require.Equal(t, 1, resp.Overview.OverdueTasks)
	require.Equal(t, 1, resp.PriorityDistribution.High)
	require.Equal(t, 1, resp.PriorityDistribution.Low)
	require.Equal(t, 2, resp.DepartmentStats["Engineering"].Total)
	require.Equal(t, 1, resp.DepartmentStats["Engineering"].Completed)
}

func TestAnalyticsHandler_DashboardUnknownUser(t *testing.T) {
	env := setupAnalyticsTestEnv(t)

	token, err := env.tokenIssuer.Issue("9999")
	require.NoError(t, err)

	w := env.get(t, "/api/analytics/dashboard", token)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyticsHandler_SuggestionsEmpty(t *testing.T) {
	env := setupAnalyticsTestEnv(t)
	token := env.seedUser(t, "1234")

	w := env.get(t, "/api/ai/suggestions", token)
	require.Equal(t, http.StatusOK, w.Code)

	// Always a JSON array, never null.
	require.JSONEq(t, `{"suggestions": []}`, w.Body.String())
}

func TestAnalyticsHandler_Suggestions(t *testing.T) {
	env := setupAnalyticsTestEnv(t)
	token := env.seedUser(t, "1234")

	require.NoError(t, env.db.Create(&models.Task{
		Title:      "due soon",
		CreatedBy:  "1234",
		AssignedTo: "1234",
		Status:     models.TaskStatusPending,
		DueDate:    time.Now().Add(24 * time.Hour),
	}).Error)

	w := env.get(t, "/api/ai/suggestions", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []services.Suggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 1)
	require.Equal(t, "deadline", resp.Suggestions[0].Type)
}
