package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/globalwebwork/task-management-api/internal/database"
)

// Health reports process liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Task Management API is running",
	})
}

// StoreHealth reports connectivity to the task store. Unauthenticated, so
// deploy tooling can probe it. The route keeps its historical path from the
// Supabase-hosted deployment.
func StoreHealth(c *gin.Context) {
	c.JSON(http.StatusOK, database.Health())
}
