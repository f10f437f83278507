package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/globalwebwork/task-management-api/internal/constants"
	"github.com/globalwebwork/task-management-api/internal/models"
	"github.com/globalwebwork/task-management-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("Task not found")

// taskPatchAllowlist is the set of columns a task update may touch. Keys
// outside the list are dropped without complaint; priority and the
// completion-time estimate are otherwise frozen at creation.
var taskPatchAllowlist = map[string]struct{}{
	"title":       {},
	"description": {},
	"assigned_to": {},
	"status":      {},
	"priority":    {},
}

// TaskService handles the task lifecycle: creation with derived estimates,
// role-scoped listing and allow-listed updates.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a task. Numeric knobs carry
// their defaults already applied by the caller.
type CreateTaskInput struct {
	Title       string
	Description string
	AssignedTo  string
	DueDate     time.Time
	Urgency     int
	Complexity  int
	TaskSize    int
	Department  string
}

// Create stores a new task for the subject, deriving priority and the
// completion-time estimate at this point and never again.
func (s *TaskService) Create(ctx context.Context, subject string, input CreateTaskInput) (*models.Task, error) {
	user, err := s.findUser(ctx, subject)
	if err != nil {
		return nil, err
	}

	// Whole days until the due date, floored; negative when the due date
	// is already past. The estimator takes the raw value.
	deadlineDays := int(math.Floor(time.Until(input.DueDate).Hours() / 24))

	priority := PredictPriority(input.Urgency, input.Complexity, deadlineDays)
	hours, err := PredictCompletionTime(float64(input.TaskSize), float64(input.Complexity), constants.DefaultEfficiency)
	if err != nil {
		return nil, err
	}

	assignedTo := input.AssignedTo
	if assignedTo == "" {
		assignedTo = subject
	}
	department := input.Department
	if department == "" {
		department = user.Department
	}

	task := &models.Task{
		Title:                   input.Title,
		Description:             input.Description,
		AssignedTo:              assignedTo,
		CreatedBy:               subject,
		Priority:                priority,
		DueDate:                 input.DueDate,
		Status:                  models.TaskStatusPending,
		AIPriorityScore:         priority,
		PredictedCompletionTime: hours,
		Urgency:                 input.Urgency,
		Complexity:              input.Complexity,
		Department:              department,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, wrapStoreErr("create task", err)
	}

	return task, nil
}

// List returns the tasks visible to the subject: all of them for admins,
// otherwise only tasks the subject created or is assigned to. Store order
// is preserved.
func (s *TaskService) List(ctx context.Context, subject string) ([]models.Task, error) {
	user, err := s.findUser(ctx, subject)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, wrapStoreErr("list tasks", err)
	}

	visible := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.IsVisibleTo(user) {
			visible = append(visible, task)
		}
	}

	return visible, nil
}

// Update patches the allow-listed fields of a task. Unknown patch keys are
// silently discarded.
func (s *TaskService) Update(ctx context.Context, subject, taskID string, patch map[string]interface{}) (*models.Task, error) {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, wrapStoreErr("find task", err)
	}

	if !canModifyTask(subject, task) {
		return nil, ErrTaskNotFound
	}

	fields := make(map[string]interface{}, len(patch))
	for key, value := range patch {
		if _, ok := taskPatchAllowlist[key]; ok {
			fields[key] = value
		}
	}

	updated, err := s.taskRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, wrapStoreErr("update task", err)
	}

	return updated, nil
}

// canModifyTask is the update authorization policy. Any authenticated user
// may currently update any task by ID; tightening the rule only needs a
// change here, not in the handler.
func canModifyTask(subject string, task *models.Task) bool {
	return true
}

func (s *TaskService) findUser(ctx context.Context, subject string) (*models.User, error) {
	user, err := s.userRepo.FindByUniqueID(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, wrapStoreErr("find user", err)
	}
	return user, nil
}
