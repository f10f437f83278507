package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/globalwebwork/task-management-api/internal/constants"
	"github.com/globalwebwork/task-management-api/internal/models"
	"github.com/globalwebwork/task-management-api/internal/repository"
	"gorm.io/gorm"
)

// Overview holds the top-line dashboard counts over the whole task set.
type Overview struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
}

// PriorityDistribution counts tasks per derived priority band.
type PriorityDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// DepartmentStat is the per-department completion rollup.
type DepartmentStat struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Dashboard is the full analytics payload.
type Dashboard struct {
	Overview             Overview                  `json:"overview"`
	PriorityDistribution PriorityDistribution      `json:"priority_distribution"`
	DepartmentStats      map[string]DepartmentStat `json:"department_stats"`
}

// Suggestion is a heuristic hint generated from a user's open workload.
type Suggestion struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// AnalyticsService folds the task collection into dashboard rollups and
// per-user suggestions. Everything is recomputed from scratch per call; at
// the task counts this serves, a cache would cost more than the fold.
type AnalyticsService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *AnalyticsService {
	return &AnalyticsService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// GetDashboard computes the global rollups. Every authenticated user sees
// the same numbers; the dashboard is deliberately not scoped the way the
// task list is.
func (s *AnalyticsService) GetDashboard(ctx context.Context, subject string) (*Dashboard, error) {
	if _, err := s.findUser(ctx, subject); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, wrapStoreErr("list tasks", err)
	}

	now := time.Now()
	dashboard := &Dashboard{
		DepartmentStats: make(map[string]DepartmentStat),
	}

	for _, task := range tasks {
		dashboard.Overview.TotalTasks++

		switch task.Status {
		case models.TaskStatusCompleted:
			dashboard.Overview.CompletedTasks++
		case models.TaskStatusPending:
			dashboard.Overview.PendingTasks++
		}
		if !task.IsCompleted() && task.DueDate.Before(now) {
			dashboard.Overview.OverdueTasks++
		}

		switch task.Priority {
		case models.TaskPriorityHigh:
			dashboard.PriorityDistribution.High++
		case models.TaskPriorityMedium:
			dashboard.PriorityDistribution.Medium++
		case models.TaskPriorityLow:
			dashboard.PriorityDistribution.Low++
		}

		dept := task.Department
		if dept == "" {
			dept = constants.DefaultDepartment
		}
		stat := dashboard.DepartmentStats[dept]
		stat.Total++
		if task.IsCompleted() {
			stat.Completed++
		}
		dashboard.DepartmentStats[dept] = stat
	}

	return dashboard, nil
}

// GetSuggestions generates workload and deadline hints over the subject's
// open assigned tasks. Stateless; ordering is workload then deadline.
func (s *AnalyticsService) GetSuggestions(ctx context.Context, subject string) ([]Suggestion, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, wrapStoreErr("list tasks", err)
	}

	now := time.Now()
	var open, dueSoon int
	for _, task := range tasks {
		if task.AssignedTo != subject || task.IsCompleted() {
			continue
		}
		open++

		days := int(math.Floor(task.DueDate.Sub(now).Hours() / 24))
		if days <= constants.DeadlineWarningDays {
			dueSoon++
		}
	}

	suggestions := []Suggestion{}
	if open > constants.WorkloadTaskThreshold {
		suggestions = append(suggestions, Suggestion{
			Type:     "workload",
			Message:  "You have many pending tasks. Consider delegating some to team members.",
			Priority: "high",
		})
	}
	if dueSoon > 0 {
		suggestions = append(suggestions, Suggestion{
			Type:     "deadline",
			Message:  fmt.Sprintf("You have %d tasks due within %d days.", dueSoon, constants.DeadlineWarningDays),
			Priority: "medium",
		})
	}

	return suggestions, nil
}

func (s *AnalyticsService) findUser(ctx context.Context, subject string) (*models.User, error) {
	user, err := s.userRepo.FindByUniqueID(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, wrapStoreErr("find user", err)
	}
	return user, nil
}
