package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
)

// TaskRequestRepository handles internal staff work requests.
type TaskRequestRepository struct {
	db *pgxpool.Pool
}

// NewTaskRequestRepository creates a new TaskRequestRepository.
func NewTaskRequestRepository(db *pgxpool.Pool) *TaskRequestRepository {
	return &TaskRequestRepository{db: db}
}

const taskRequestSelect = `
	SELECT id, title, description, created_by, created_by_name, target_role,
	       is_completed, created_at, updated_at
	FROM task_requests`

func scanTaskRequest(row interface{ Scan(dest ...any) error }) (*models.TaskRequest, error) {
	t := &models.TaskRequest{}
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.CreatedBy, &t.CreatedByName,
		&t.TargetRole, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrTaskRequestNotFound
		}
		return nil, fmt.Errorf("error scanning task request: %w", err)
	}
	return t, nil
}

func (r *TaskRequestRepository) queryTasks(ctx context.Context, sql string, args ...any) ([]*models.TaskRequest, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying task requests: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.TaskRequest, 0)
	for rows.Next() {
		t, err := scanTaskRequest(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Create inserts a task request.
func (r *TaskRequestRepository) Create(ctx context.Context, t *models.TaskRequest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO task_requests (title, description, created_by, created_by_name, target_role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		t.Title, t.Description, t.CreatedBy, t.CreatedByName, t.TargetRole).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating task request: %w", err)
	}
	return nil
}

// ListForRole retrieves the tasks a role should see: those addressed to
// it, addressed to everyone, or created by the caller. Open tasks first.
func (r *TaskRequestRepository) ListForRole(ctx context.Context, role models.RoleType, accountID int64) ([]*models.TaskRequest, error) {
	return r.queryTasks(ctx, taskRequestSelect+`
		WHERE target_role = $1 OR target_role = $2 OR created_by = $3
		ORDER BY is_completed, created_at DESC`, role, models.TargetAll, accountID)
}

// ListOpenForRole retrieves a role's unfinished tasks for the dashboard.
func (r *TaskRequestRepository) ListOpenForRole(ctx context.Context, role models.RoleType, limit int) ([]*models.TaskRequest, error) {
	return r.queryTasks(ctx, taskRequestSelect+`
		WHERE is_completed = false AND (target_role = $1 OR target_role = $2)
		ORDER BY created_at DESC
		LIMIT $3`, role, models.TargetAll, limit)
}

// SetCompleted toggles a task's completion flag.
func (r *TaskRequestRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE task_requests
		SET is_completed = $1, updated_at = now()
		WHERE id = $2`, completed, id)
	if err != nil {
		return fmt.Errorf("error updating task request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTaskRequestNotFound
	}
	return nil
}

// Delete removes a task request.
func (r *TaskRequestRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM task_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting task request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTaskRequestNotFound
	}
	return nil
}
