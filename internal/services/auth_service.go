package services

import (
	"context"
	"errors"
	"regexp"

	"github.com/globalwebwork/task-management-api/internal/constants"
	"github.com/globalwebwork/task-management-api/internal/models"
	"github.com/globalwebwork/task-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidUniqueID       = errors.New("Unique ID must be 4-8 digits only")
	ErrInvalidPasswordLength = errors.New("Password must be exactly 8 characters")
	ErrUniqueIDTaken         = errors.New("Unique ID already exists")
	ErrEmailTaken            = errors.New("Email already exists")
	ErrInvalidCredentials    = errors.New("Invalid credentials")
	ErrUserNotFound          = errors.New("User not found")
	ErrWrongPassword         = errors.New("Current password is incorrect")
	ErrFailedToHashPassword  = errors.New("failed to hash password")
)

var uniqueIDPattern = regexp.MustCompile(`^\d{4,8}$`)

// AuthService owns registration, credential verification and the password
// lifecycle.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	UniqueID   string
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
}

// Register validates input, enforces the unique ID and email uniqueness
// invariants and stores the new user with a bcrypt digest of the password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if !uniqueIDPattern.MatchString(input.UniqueID) {
		return nil, ErrInvalidUniqueID
	}
	if len(input.Password) != constants.PasswordLength {
		return nil, ErrInvalidPasswordLength
	}

	if _, err := s.userRepo.FindByUniqueID(ctx, input.UniqueID); err == nil {
		return nil, ErrUniqueIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrapStoreErr("check unique id", err)
	}

	// The store has no find-by-email, so the email check scans all users.
	// Linear, but fine at the user counts this runs at.
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, wrapStoreErr("check email", err)
	}
	for _, u := range users {
		if u.Email == input.Email {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	role := models.Role(input.Role)
	if role == "" {
		role = models.RoleEmployee
	}
	department := input.Department
	if department == "" {
		department = constants.DefaultDepartment
	}

	user := &models.User{
		UniqueID:     input.UniqueID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Department:   department,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, wrapStoreErr("create user", err)
	}

	return user, nil
}

// Login verifies credentials and returns the authenticated user. Unknown
// identifier and wrong password both come back as ErrInvalidCredentials so
// the response never reveals which identifiers exist.
func (s *AuthService) Login(ctx context.Context, uniqueID, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUniqueID(ctx, uniqueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, wrapStoreErr("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword verifies the current password and replaces the stored
// digest of the authenticated subject.
func (s *AuthService) ChangePassword(ctx context.Context, subject, currentPassword, newPassword string) error {
	if len(newPassword) != constants.PasswordLength {
		return ErrInvalidPasswordLength
	}

	user, err := s.userRepo.FindByUniqueID(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return wrapStoreErr("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return wrapStoreErr("update password", err)
	}

	return nil
}

// GetUser retrieves a user by their unique ID.
func (s *AuthService) GetUser(ctx context.Context, uniqueID string) (*models.User, error) {
	user, err := s.userRepo.FindByUniqueID(ctx, uniqueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, wrapStoreErr("find user", err)
	}
	return user, nil
}

// ListUsers returns every registered user.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, wrapStoreErr("list users", err)
	}
	return users, nil
}
