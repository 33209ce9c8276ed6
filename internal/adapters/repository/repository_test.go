package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/taskdesk/core/internal/domain/entities"
)

const testSchema = `
CREATE TABLE users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'clerk' CHECK (role IN ('boss', 'clerk')),
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE tasks (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    completed BOOLEAN NOT NULL DEFAULT 0,
    due_date DATETIME,
    user_id TEXT NOT NULL REFERENCES users(id),
    "order" INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	// A single connection keeps every statement on the same in-memory store.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func seedUser(t *testing.T, db *sqlx.DB, id, name string, role entities.Role) {
	t.Helper()
	now := time.Now()
	_, err := db.Exec(
		`INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, id+"@example.com", "hash", role, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", id, err)
	}
}

func seedTask(t *testing.T, db *sqlx.DB, id, userID string, order int, createdAt time.Time) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO tasks (id, title, user_id, "order", created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, "task "+id, userID, order, createdAt, createdAt,
	)
	if err != nil {
		t.Fatalf("failed to seed task %s: %v", id, err)
	}
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	now := time.Now()
	user := &entities.User{
		ID:           "u-1",
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "hash",
		Role:         entities.RoleBoss,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	byID, err := repo.GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if byID.Email != "ann@example.com" || byID.Role != entities.RoleBoss {
		t.Errorf("GetByID = %+v, want the created user", byID)
	}

	byEmail, err := repo.GetByEmail(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if byEmail.ID != "u-1" {
		t.Errorf("GetByEmail ID = %q, want u-1", byEmail.ID)
	}
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	now := time.Now()
	first := &entities.User{ID: "u-1", Name: "Ann", Email: "ann@example.com", PasswordHash: "h", Role: entities.RoleClerk, CreatedAt: now, UpdatedAt: now}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	dup := &entities.User{ID: "u-2", Name: "Ann2", Email: "ann@example.com", PasswordHash: "h", Role: entities.RoleClerk, CreatedAt: now, UpdatedAt: now}
	if err := repo.Create(ctx, dup); !errors.Is(err, entities.ErrEmailTaken) {
		t.Errorf("duplicate email error = %v, want ErrEmailTaken", err)
	}
}

func TestUserRepositoryMissingUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, entities.ErrUserNotFound) {
		t.Errorf("GetByID error = %v, want ErrUserNotFound", err)
	}
	if _, err := repo.GetByEmail(ctx, "missing@example.com"); !errors.Is(err, entities.ErrUserNotFound) {
		t.Errorf("GetByEmail error = %v, want ErrUserNotFound", err)
	}
	if err := repo.UpdateRole(ctx, "missing", entities.RoleBoss); !errors.Is(err, entities.ErrUserNotFound) {
		t.Errorf("UpdateRole error = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepositoryUpdateRoleAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u-1", "Ann", entities.RoleBoss)
	seedUser(t, db, "u-2", "Bob", entities.RoleClerk)

	count, err := repo.CountByRole(ctx, entities.RoleBoss)
	if err != nil {
		t.Fatalf("CountByRole failed: %v", err)
	}
	if count != 1 {
		t.Errorf("boss count = %d, want 1", count)
	}

	if err := repo.UpdateRole(ctx, "u-2", entities.RoleBoss); err != nil {
		t.Fatalf("UpdateRole failed: %v", err)
	}

	count, err = repo.CountByRole(ctx, entities.RoleBoss)
	if err != nil {
		t.Fatalf("CountByRole failed: %v", err)
	}
	if count != 2 {
		t.Errorf("boss count after promotion = %d, want 2", count)
	}
}

func TestTaskRepositoryGetByIDJoinsOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedUser(t, db, "b1", "Boss", entities.RoleBoss)
	seedTask(t, db, "t-1", "b1", 0, time.Now())

	task, err := repo.GetByID(ctx, "t-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if task.OwnerName != "Boss" {
		t.Errorf("OwnerName = %q, want Boss", task.OwnerName)
	}
	if task.OwnerRole != entities.RoleBoss {
		t.Errorf("OwnerRole = %q, want boss", task.OwnerRole)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, entities.ErrTaskNotFound) {
		t.Errorf("missing task error = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskRepositoryListVisible(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedUser(t, db, "b1", "Boss", entities.RoleBoss)
	seedUser(t, db, "c1", "Clerk One", entities.RoleClerk)
	seedUser(t, db, "c2", "Clerk Two", entities.RoleClerk)

	base := time.Now()
	seedTask(t, db, "t-boss", "b1", 0, base)
	seedTask(t, db, "t-c1", "c1", 0, base.Add(time.Second))
	seedTask(t, db, "t-c2", "c2", 0, base.Add(2*time.Second))

	boss := entities.Requester{ID: "b1", Role: entities.RoleBoss}
	bossTasks, err := repo.ListVisible(ctx, boss)
	if err != nil {
		t.Fatalf("boss ListVisible failed: %v", err)
	}
	if len(bossTasks) != 3 {
		t.Errorf("boss sees %d tasks, want 3", len(bossTasks))
	}

	clerk := entities.Requester{ID: "c1", Role: entities.RoleClerk}
	clerkTasks, err := repo.ListVisible(ctx, clerk)
	if err != nil {
		t.Fatalf("clerk ListVisible failed: %v", err)
	}
	if len(clerkTasks) != 2 {
		t.Fatalf("clerk sees %d tasks, want 2 (own + boss)", len(clerkTasks))
	}
	for _, task := range clerkTasks {
		if task.ID == "t-c2" {
			t.Error("clerk must not see another clerk's task")
		}
	}
}

func TestTaskRepositoryListVisibleOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedUser(t, db, "b1", "Boss", entities.RoleBoss)
	base := time.Now()
	seedTask(t, db, "t-late", "b1", 2, base)
	seedTask(t, db, "t-first", "b1", 0, base)
	// Duplicate order: creation time breaks the tie.
	seedTask(t, db, "t-dup-b", "b1", 1, base.Add(time.Second))
	seedTask(t, db, "t-dup-a", "b1", 1, base)

	tasks, err := repo.ListVisible(ctx, entities.Requester{ID: "b1", Role: entities.RoleBoss})
	if err != nil {
		t.Fatalf("ListVisible failed: %v", err)
	}

	want := []string{"t-first", "t-dup-a", "t-dup-b", "t-late"}
	if len(tasks) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(tasks), len(want))
	}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Errorf("tasks[%d] = %q, want %q", i, tasks[i].ID, id)
		}
	}
}

func TestTaskRepositoryNextOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u-1", "Ann", entities.RoleClerk)
	seedUser(t, db, "u-2", "Bob", entities.RoleClerk)

	next, err := repo.NextOrder(ctx, "u-1")
	if err != nil {
		t.Fatalf("NextOrder failed: %v", err)
	}
	if next != 0 {
		t.Errorf("NextOrder with no tasks = %d, want 0", next)
	}

	seedTask(t, db, "t-1", "u-1", 0, time.Now())
	seedTask(t, db, "t-2", "u-1", 4, time.Now())

	next, err = repo.NextOrder(ctx, "u-1")
	if err != nil {
		t.Fatalf("NextOrder failed: %v", err)
	}
	if next != 5 {
		t.Errorf("NextOrder = %d, want 5 (1 + max)", next)
	}

	// Another owner's tasks do not bleed into the sequence.
	next, err = repo.NextOrder(ctx, "u-2")
	if err != nil {
		t.Fatalf("NextOrder failed: %v", err)
	}
	if next != 0 {
		t.Errorf("NextOrder for other owner = %d, want 0", next)
	}
}

func TestTaskRepositorySetCompletedAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u-1", "Ann", entities.RoleClerk)
	seedTask(t, db, "t-1", "u-1", 0, time.Now())

	if err := repo.SetCompleted(ctx, "t-1", true); err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}
	if err := repo.SetOrder(ctx, "t-1", 7); err != nil {
		t.Fatalf("SetOrder failed: %v", err)
	}

	task, err := repo.GetByID(ctx, "t-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !task.Completed {
		t.Error("Completed = false, want true")
	}
	if task.Order != 7 {
		t.Errorf("Order = %d, want 7", task.Order)
	}

	if err := repo.SetCompleted(ctx, "missing", true); !errors.Is(err, entities.ErrTaskNotFound) {
		t.Errorf("SetCompleted on missing task error = %v, want ErrTaskNotFound", err)
	}
	if err := repo.SetOrder(ctx, "missing", 1); !errors.Is(err, entities.ErrTaskNotFound) {
		t.Errorf("SetOrder on missing task error = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskRepositoryCreateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u-1", "Ann", entities.RoleClerk)

	description := "bring the folder"
	due := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	task := &entities.Task{
		ID:          "t-1",
		Title:       "Visit archive",
		Description: &description,
		DueDate:     &due,
		UserID:      "u-1",
		Order:       2,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "t-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Visit archive" || got.Order != 2 {
		t.Errorf("got %+v, want the created task", got)
	}
	if got.Description == nil || *got.Description != description {
		t.Errorf("Description = %v, want %q", got.Description, description)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
}
