package ports

import (
	"context"

	"github.com/taskdesk/core/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateRole(ctx context.Context, id string, role entities.Role) error
	List(ctx context.Context) ([]*entities.User, error)
	CountByRole(ctx context.Context, role entities.Role) (int64, error)
}

// TaskRepository defines the interface for task data operations. Reads join
// the owning user so OwnerName and OwnerRole come back populated.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id string) (*entities.Task, error)
	// ListVisible returns every task the requester may view, filtered in a
	// single query so unauthorized rows never leave the store.
	ListVisible(ctx context.Context, requester entities.Requester) ([]*entities.Task, error)
	// NextOrder returns 1 + max(order) over the owner's tasks, 0 when the
	// owner has none.
	NextOrder(ctx context.Context, ownerID string) (int, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	SetOrder(ctx context.Context, id string, order int) error
}

// ListingCache caches grouped task listings per requester. Any task mutation
// invalidates the whole cache; the next listing repopulates it.
type ListingCache interface {
	Get(requesterID string) (map[string][]*entities.Task, bool)
	Put(requesterID string, groups map[string][]*entities.Task)
	Invalidate()
}
