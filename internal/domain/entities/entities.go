package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthorized       = errors.New("not authorized")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrOwnRoleChange      = errors.New("cannot change your own role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBossExists         = errors.New("boss user already exists")
)

// Role is the closed set of account roles.
type Role string

const (
	RoleBoss  Role = "boss"
	RoleClerk Role = "clerk"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleBoss, RoleClerk:
		return true
	default:
		return false
	}
}

// User represents an account in the system
type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Task represents a single task owned by a user. OwnerName and OwnerRole are
// populated from a join with the owning user; OwnerRole feeds the
// authorization policy and is never serialized.
type Task struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Completed   bool       `json:"completed" db:"completed"`
	DueDate     *time.Time `json:"dueDate" db:"due_date"`
	UserID      string     `json:"userId" db:"user_id"`
	Order       int        `json:"order" db:"order"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	OwnerName   string     `json:"userName" db:"owner_name"`
	OwnerRole   Role       `json:"-" db:"owner_role"`
}

// NoDueDateLabel is the grouping label for tasks without a due date.
const NoDueDateLabel = "No Due Date"

// DateLabel returns the label the task is grouped under when listed:
// DD/MM/YYYY in the server's local time zone, or NoDueDateLabel.
func (t *Task) DateLabel() string {
	if t.DueDate == nil {
		return NoDueDateLabel
	}
	return t.DueDate.Local().Format("02/01/2006")
}

// Requester is the verified identity attempting an operation. It is built
// from a validated session token, never from caller-supplied fields.
type Requester struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
