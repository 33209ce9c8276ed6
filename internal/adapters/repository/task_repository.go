package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/taskdesk/core/internal/domain/entities"
	"github.com/taskdesk/core/internal/ports"
)

// TaskRepositoryImpl implements the TaskRepository interface
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

const taskColumns = `
	t.id, t.title, t.description, t.completed, t.due_date, t.user_id,
	t."order", t.created_at, t.updated_at,
	u.name AS owner_name, u.role AS owner_role`

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, completed, due_date, user_id, "order", created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.Completed,
		task.DueDate, task.UserID, task.Order, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN users u ON u.id = t.user_id
		WHERE t.id = ?`

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return &task, nil
}

// ListVisible applies the visibility rules in the query itself: a boss reads
// every row, a clerk reads their own rows plus boss-owned rows. Rows the
// requester may not view never reach the application.
func (r *TaskRepositoryImpl) ListVisible(ctx context.Context, requester entities.Requester) ([]*entities.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN users u ON u.id = t.user_id`

	var args []interface{}
	if requester.Role != entities.RoleBoss {
		query += ` WHERE t.user_id = ? OR u.role = ?`
		args = append(args, requester.ID, entities.RoleBoss)
	}

	query += ` ORDER BY t."order", t.created_at`

	var tasks []*entities.Task
	err := r.db.SelectContext(ctx, &tasks, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list visible tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) NextOrder(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT COALESCE(MAX("order") + 1, 0) FROM tasks WHERE user_id = ?`

	var next int
	err := r.db.GetContext(ctx, &next, query, ownerID)
	if err != nil {
		return 0, fmt.Errorf("next task order: %w", err)
	}

	return next, nil
}

func (r *TaskRepositoryImpl) SetCompleted(ctx context.Context, id string, completed bool) error {
	query := `UPDATE tasks SET completed = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, completed, time.Now(), id)
	if err != nil {
		return fmt.Errorf("set task completed: %w", err)
	}

	return checkAffected(result)
}

func (r *TaskRepositoryImpl) SetOrder(ctx context.Context, id string, order int) error {
	query := `UPDATE tasks SET "order" = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, order, time.Now(), id)
	if err != nil {
		return fmt.Errorf("set task order: %w", err)
	}

	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}
