package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/globalwebwork/task-management-api/internal/constants"
	apierrors "github.com/globalwebwork/task-management-api/internal/errors"
	"github.com/globalwebwork/task-management-api/internal/middleware"
	"github.com/globalwebwork/task-management-api/internal/services"
)

// TaskHandler coordinates task lifecycle HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the tasks visible to the authenticated user.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.List(c.Request.Context(), subject)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
	})
}

// CreateTask stores a new task with its derived priority and completion
// estimate.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		AssignedTo  string `json:"assignedTo"`
		DueDate     string `json:"dueDate"`
		Urgency     *int   `json:"urgency"`
		Complexity  *int   `json:"complexity"`
		TaskSize    *int   `json:"taskSize"`
		Department  string `json:"department"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dueDate := time.Now()
	if req.DueDate != "" {
		parsed, err := parseDueDate(req.DueDate)
		if err != nil {
			apierrors.BadRequest(c, "Invalid due date")
			return
		}
		dueDate = parsed
	}

	task, err := h.taskService.Create(c.Request.Context(), subject, services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     dueDate,
		Urgency:     intOrDefault(req.Urgency, constants.DefaultUrgency),
		Complexity:  intOrDefault(req.Complexity, constants.DefaultComplexity),
		TaskSize:    intOrDefault(req.TaskSize, constants.DefaultTaskSize),
		Department:  req.Department,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"task":    task,
		"message": "Task created successfully",
	})
}

// UpdateTask patches the allow-listed fields of a task by ID.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), subject, c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":    task,
		"message": "Task updated successfully",
	})
}

// parseDueDate accepts a full timestamp or a bare calendar date.
func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
