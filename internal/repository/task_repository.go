package repository

import (
	"context"
	"time"

	"github.com/globalwebwork/task-management-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB, timeout time.Duration) TaskRepository {
	return &GormTaskRepository{db: db, timeout: timeout}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var task models.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindAll retrieves every task. Insertion order is the list contract, so
// the query sorts on created_at rather than the UUID key.
func (r *GormTaskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var tasks []models.Task
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateFields patches the given columns on a task and returns the updated
// record. Last write wins; there is no version check on the row.
func (r *GormTaskRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx := r.db.WithContext(ctx)
	if len(fields) > 0 {
		if err := tx.Model(&models.Task{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	var task models.Task
	if err := tx.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}
