package ports

import (
	"context"
	"time"

	"github.com/taskdesk/core/internal/domain/entities"
)

// AuthService interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	ValidateToken(tokenString string) (*entities.Requester, error)
	BootstrapBoss(ctx context.Context, name, email, password string) (*entities.User, error)
}

// UserService interface for account management. Every call takes the
// verified requester explicitly; boss-only operations re-check the role even
// when the route is already gated.
type UserService interface {
	ListUsers(ctx context.Context, requester entities.Requester) ([]*entities.User, error)
	CreateUser(ctx context.Context, requester entities.Requester, req CreateUserRequest) (*entities.User, error)
	UpdateUserRole(ctx context.Context, requester entities.Requester, userID string, role entities.Role) error
}

// TaskService interface for task operations. The authorization policy is
// applied before every mutation.
type TaskService interface {
	ListTasksByDate(ctx context.Context, requester entities.Requester) (map[string][]*entities.Task, error)
	CreateTask(ctx context.Context, requester entities.Requester, req CreateTaskRequest) (*entities.Task, error)
	ToggleCompletion(ctx context.Context, requester entities.Requester, taskID string, completed bool) error
	Reorder(ctx context.Context, requester entities.Requester, taskID string, order int) error
}

// Request/Response types

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int64          `json:"expires_in"`
	User        *entities.User `json:"user"`
}

type CreateUserRequest struct {
	Name     string        `json:"name" validate:"required,max=100"`
	Email    string        `json:"email" validate:"required,email"`
	Password string        `json:"password" validate:"required,min=8"`
	Role     entities.Role `json:"role" validate:"required"`
}

type UpdateUserRoleRequest struct {
	Role entities.Role `json:"role" validate:"required"`
}

type CreateTaskRequest struct {
	Title       string
	Description *string
	DueDate     *time.Time
}
