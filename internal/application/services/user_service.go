package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskdesk/core/internal/domain/entities"
	"github.com/taskdesk/core/internal/infrastructure/logger"
	"github.com/taskdesk/core/internal/ports"
)

// UserService handles account management. All operations are boss-only.
type UserService struct {
	userRepo ports.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo ports.UserRepository, logger *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers returns all accounts, boss only
func (s *UserService) ListUsers(ctx context.Context, requester entities.Requester) ([]*entities.User, error) {
	if requester.Role != entities.RoleBoss {
		return nil, entities.ErrUnauthorized
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	for _, user := range users {
		user.PasswordHash = ""
	}

	return users, nil
}

// CreateUser creates a new account, boss only
func (s *UserService) CreateUser(ctx context.Context, requester entities.Requester, req ports.CreateUserRequest) (*entities.User, error) {
	if requester.Role != entities.RoleBoss {
		return nil, entities.ErrUnauthorized
	}

	if !req.Role.IsValid() {
		return nil, entities.ErrInvalidRole
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, entities.ErrEmailTaken
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &entities.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User created", "user_id", user.ID, "email", user.Email, "role", user.Role, "created_by", requester.ID)

	user.PasswordHash = ""
	return user, nil
}

// UpdateUserRole changes an account's role, boss only. A boss cannot change
// their own role.
func (s *UserService) UpdateUserRole(ctx context.Context, requester entities.Requester, userID string, role entities.Role) error {
	if requester.Role != entities.RoleBoss {
		return entities.ErrUnauthorized
	}

	if !role.IsValid() {
		return entities.ErrInvalidRole
	}

	if userID == requester.ID {
		return entities.ErrOwnRoleChange
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	s.logger.Info("User role updated", "user_id", userID, "role", role, "updated_by", requester.ID)

	return nil
}
