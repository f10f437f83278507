package repository

import (
	"context"

	"github.com/globalwebwork/task-management-api/internal/models"
	"github.com/google/uuid"
)

// The store is a plain table-per-entity CRUD surface: insert one, fetch by
// field equality, fetch all, update by primary key. No joins, no
// transactions spanning entities; every method is one independent round
// trip with a bounded timeout.

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *models.User) error

	// FindByUniqueID finds a user by their login identifier
	FindByUniqueID(ctx context.Context, uniqueID string) (*models.User, error)

	// FindAll retrieves every user
	FindAll(ctx context.Context) ([]models.User, error)

	// UpdatePasswordHash replaces a user's stored credential digest
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error)

	// FindAll retrieves every task in insertion order
	FindAll(ctx context.Context) ([]models.Task, error)

	// UpdateFields patches the given columns on a task and returns the
	// updated record
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Task, error)
}
