package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/taskdesk/core/internal/domain/entities"
	"github.com/taskdesk/core/internal/infrastructure/config"
	"github.com/taskdesk/core/internal/infrastructure/logger"
)

// Common test errors
var (
	ErrMockRepo = errors.New("mock repository error")
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(config.LoggerConfig{Level: "error", Format: "json", Output: "stdout"})
	if err != nil {
		t.Fatalf("failed to build test logger: %v", err)
	}
	return l
}

// MockTaskRepository implements ports.TaskRepository for testing
type MockTaskRepository struct {
	CreateFunc       func(ctx context.Context, task *entities.Task) error
	GetByIDFunc      func(ctx context.Context, id string) (*entities.Task, error)
	ListVisibleFunc  func(ctx context.Context, requester entities.Requester) ([]*entities.Task, error)
	NextOrderFunc    func(ctx context.Context, ownerID string) (int, error)
	SetCompletedFunc func(ctx context.Context, id string, completed bool) error
	SetOrderFunc     func(ctx context.Context, id string, order int) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entities.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, entities.ErrTaskNotFound
}

func (m *MockTaskRepository) ListVisible(ctx context.Context, requester entities.Requester) ([]*entities.Task, error) {
	if m.ListVisibleFunc != nil {
		return m.ListVisibleFunc(ctx, requester)
	}
	return nil, nil
}

func (m *MockTaskRepository) NextOrder(ctx context.Context, ownerID string) (int, error) {
	if m.NextOrderFunc != nil {
		return m.NextOrderFunc(ctx, ownerID)
	}
	return 0, nil
}

func (m *MockTaskRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	if m.SetCompletedFunc != nil {
		return m.SetCompletedFunc(ctx, id, completed)
	}
	return nil
}

func (m *MockTaskRepository) SetOrder(ctx context.Context, id string, order int) error {
	if m.SetOrderFunc != nil {
		return m.SetOrderFunc(ctx, id, order)
	}
	return nil
}

// MockUserRepository implements ports.UserRepository for testing
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entities.User) error
	GetByIDFunc     func(ctx context.Context, id string) (*entities.User, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*entities.User, error)
	UpdateRoleFunc  func(ctx context.Context, id string, role entities.Role) error
	ListFunc        func(ctx context.Context) ([]*entities.User, error)
	CountByRoleFunc func(ctx context.Context, role entities.Role) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, entities.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, entities.ErrUserNotFound
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role entities.Role) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, id, role)
	}
	return nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role entities.Role) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, role)
	}
	return 0, nil
}

// MockListingCache implements ports.ListingCache for testing. It records the
// number of invalidations so tests can assert mutations drop the cache.
type MockListingCache struct {
	mu          sync.Mutex
	entries     map[string]map[string][]*entities.Task
	Invalidated int
}

func NewMockListingCache() *MockListingCache {
	return &MockListingCache{entries: make(map[string]map[string][]*entities.Task)}
}

func (m *MockListingCache) Get(requesterID string) (map[string][]*entities.Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	groups, ok := m.entries[requesterID]
	return groups, ok
}

func (m *MockListingCache) Put(requesterID string, groups map[string][]*entities.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[requesterID] = groups
}

func (m *MockListingCache) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]map[string][]*entities.Task)
	m.Invalidated++
}
