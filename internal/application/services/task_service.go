package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdesk/core/internal/domain/entities"
	"github.com/taskdesk/core/internal/infrastructure/logger"
	"github.com/taskdesk/core/internal/ports"
)

// TaskService handles task-related operations. The authorization policy runs
// before every mutation, even when the route already gated the request.
type TaskService struct {
	taskRepo ports.TaskRepository
	cache    ports.ListingCache
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, cache ports.ListingCache, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		cache:    cache,
		logger:   logger,
	}
}

// ListTasksByDate returns the requester's visible tasks grouped by due-date
// label. Within a group tasks sort by manual order ascending; equal orders
// fall back to creation time so repeated listings are stable.
func (s *TaskService) ListTasksByDate(ctx context.Context, requester entities.Requester) (map[string][]*entities.Task, error) {
	if groups, ok := s.cache.Get(requester.ID); ok {
		return groups, nil
	}

	tasks, err := s.taskRepo.ListVisible(ctx, requester)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	groups := make(map[string][]*entities.Task)
	for _, task := range tasks {
		label := task.DateLabel()
		groups[label] = append(groups[label], task)
	}

	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Order != group[j].Order {
				return group[i].Order < group[j].Order
			}
			return group[i].CreatedAt.Before(group[j].CreatedAt)
		})
	}

	s.cache.Put(requester.ID, groups)

	return groups, nil
}

// CreateTask creates a task owned by the requester, appended to the end of
// the requester's own sequence.
func (s *TaskService) CreateTask(ctx context.Context, requester entities.Requester, req ports.CreateTaskRequest) (*entities.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, entities.ErrEmptyTitle
	}

	// Read-max-then-insert is not isolated from concurrent creates by the
	// same owner; duplicate orders are tolerated and tie-broken on listing.
	order, err := s.taskRepo.NextOrder(ctx, requester.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine task order: %w", err)
	}

	now := time.Now()
	task := &entities.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: req.Description,
		DueDate:     req.DueDate,
		UserID:      requester.ID,
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
		OwnerName:   requester.Name,
		OwnerRole:   requester.Role,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.cache.Invalidate()

	s.logger.Info("Task created successfully", "task_id", task.ID, "user_id", requester.ID, "order", order)

	return task, nil
}

// ToggleCompletion sets the task's completed flag. Setting the current value
// again is a no-op write that still succeeds.
func (s *TaskService) ToggleCompletion(ctx context.Context, requester entities.Requester, taskID string, completed bool) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	if !requester.CanToggle(task) {
		s.logger.Warn("Toggle denied by policy", "task_id", taskID, "user_id", requester.ID, "role", requester.Role)
		return entities.ErrUnauthorized
	}

	if err := s.taskRepo.SetCompleted(ctx, taskID, completed); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	s.cache.Invalidate()

	s.logger.Info("Task completion updated", "task_id", taskID, "completed", completed, "user_id", requester.ID)

	return nil
}

// Reorder sets the task's manual order verbatim. Sibling tasks are not
// renumbered; concurrent reorders can leave duplicate orders within a group.
func (s *TaskService) Reorder(ctx context.Context, requester entities.Requester, taskID string, order int) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	if !requester.CanReorder(task) {
		s.logger.Warn("Reorder denied by policy", "task_id", taskID, "user_id", requester.ID, "role", requester.Role)
		return entities.ErrUnauthorized
	}

	if err := s.taskRepo.SetOrder(ctx, taskID, order); err != nil {
		return fmt.Errorf("failed to update task order: %w", err)
	}

	s.cache.Invalidate()

	s.logger.Info("Task reordered", "task_id", taskID, "order", order, "user_id", requester.ID)

	return nil
}
