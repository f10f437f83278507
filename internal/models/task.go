package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityLow    TaskPriority = "Low"
)

// Task is a unit of work. Priority and the completion-time estimate are
// computed once at creation and never recomputed on update.
type Task struct {
	ID                      uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title                   string       `gorm:"type:varchar(255);not null" json:"title"`
	Description             string       `gorm:"type:text" json:"description"`
	AssignedTo              string       `gorm:"type:varchar(8);index" json:"assigned_to"`
	CreatedBy               string       `gorm:"type:varchar(8);index;not null" json:"created_by"`
	Priority                TaskPriority `gorm:"type:varchar(50);default:'Medium'" json:"priority"`
	DueDate                 time.Time    `json:"due_date"`
	Status                  TaskStatus   `gorm:"type:varchar(50);index;not null;default:'pending'" json:"status"`
	AIPriorityScore         TaskPriority `gorm:"type:varchar(50)" json:"ai_priority_score"`
	PredictedCompletionTime float64      `json:"predicted_completion_time"`
	Urgency                 int          `gorm:"default:5" json:"urgency"`
	Complexity              int          `gorm:"default:5" json:"complexity"`
	Department              string       `gorm:"type:varchar(100);default:'General'" json:"department"`
	CreatedAt               time.Time    `json:"created_at"`
	UpdatedAt               time.Time    `json:"updated_at"`
}

// BeforeCreate assigns the record ID at insertion time.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsCompleted reports whether the task has reached the completed status.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// IsVisibleTo reports whether a task shows up in a user's task list.
// Admins see everything; everyone else sees tasks they created or were
// assigned.
func (t *Task) IsVisibleTo(user *User) bool {
	if user.IsAdmin() {
		return true
	}
	return t.AssignedTo == user.UniqueID || t.CreatedBy == user.UniqueID
}
