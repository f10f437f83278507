package repository

import (
	"context"
	"time"

	"github.com/globalwebwork/task-management-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewUserRepository creates a new UserRepository. Every store round trip is
// capped at the given timeout so a slow store surfaces as an error instead
// of a hung request.
func NewUserRepository(db *gorm.DB, timeout time.Duration) UserRepository {
	return &GormUserRepository{db: db, timeout: timeout}
}

// Create inserts a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByUniqueID finds a user by their login identifier
func (r *GormUserRepository) FindByUniqueID(ctx context.Context, uniqueID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).Where("unique_id = ?", uniqueID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll retrieves every user
func (r *GormUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdatePasswordHash replaces a user's stored credential digest
func (r *GormUserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}
