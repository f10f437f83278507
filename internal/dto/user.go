package dto

import (
	"time"

	"github.com/globalwebwork/task-management-api/internal/models"
	"github.com/google/uuid"
)

// AuthUserDTO is the user projection returned by register and login.
type AuthUserDTO struct {
	UniqueID   string      `json:"unique_id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	Department string      `json:"department"`
}

// PublicUserDTO is the fuller projection returned by the admin user
// listing. The password hash never appears in either shape.
type PublicUserDTO struct {
	ID         uuid.UUID   `json:"id"`
	UniqueID   string      `json:"unique_id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	Department string      `json:"department"`
	CreatedAt  time.Time   `json:"created_at"`
}

// ToAuthUserDTO converts a User model to AuthUserDTO
func ToAuthUserDTO(user models.User) AuthUserDTO {
	return AuthUserDTO{
		UniqueID:   user.UniqueID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
	}
}

// ToPublicUserDTO converts a User model to PublicUserDTO
func ToPublicUserDTO(user models.User) PublicUserDTO {
	return PublicUserDTO{
		ID:         user.ID,
		UniqueID:   user.UniqueID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		CreatedAt:  user.CreatedAt,
	}
}

// ToPublicUserDTOs converts a slice of users.
func ToPublicUserDTOs(users []models.User) []PublicUserDTO {
	dtos := make([]PublicUserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToPublicUserDTO(user)
	}
	return dtos
}
