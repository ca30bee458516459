package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/partnerlink/internal/domain"
)

// manualTaskColumns is the shared list of columns for manual task queries.
var manualTaskColumns = []string{
	"id", "owner_id", "title", "description", "priority", "due_date", "vendor_id",
	"status", "completed_at", "created_at", "updated_at",
}

// ManualTaskRepository handles database operations for manual tasks.
// It is the only agenda store that accepts writes.
type ManualTaskRepository struct {
	pool *pgxpool.Pool
}

// NewManualTaskRepository creates a new ManualTaskRepository.
func NewManualTaskRepository(pool *pgxpool.Pool) *ManualTaskRepository {
	return &ManualTaskRepository{pool: pool}
}

// scanManualTask scans a single row into a ManualTask struct.
func scanManualTask(row pgx.Row) (*domain.ManualTask, error) {
	var (
		task    domain.ManualTask
		dueDate *time.Time
	)
	err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&dueDate,
		&task.VendorID,
		&task.Status,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrManualTaskNotFound
		}
		return nil, fmt.Errorf("scan manual task: %w", err)
	}
	task.DueDate = datePtr(dueDate)
	return &task, nil
}

// scanManualTasks scans multiple rows into a slice of ManualTask structs.
func scanManualTasks(rows pgx.Rows) ([]domain.ManualTask, error) {
	defer rows.Close()

	tasks := make([]domain.ManualTask, 0)
	for rows.Next() {
		task, err := scanManualTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return tasks, nil
}

// GetByID retrieves an owner's manual task by ID.
func (r *ManualTaskRepository) GetByID(ctx context.Context, ownerID, taskID string) (*domain.ManualTask, error) {
	query, args, err := psql.
		Select(manualTaskColumns...).
		From("manual_tasks").
		Where(sq.Eq{"id": taskID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for manual task: %w", err)
	}

	return scanManualTask(r.pool.QueryRow(ctx, query, args...))
}

// GetByIDForUpdate retrieves an owner's manual task with FOR UPDATE lock (within transaction).
func (r *ManualTaskRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, ownerID, taskID string) (*domain.ManualTask, error) {
	query, args, err := psql.
		Select(manualTaskColumns...).
		From("manual_tasks").
		Where(sq.Eq{"id": taskID, "owner_id": ownerID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDForUpdate query for manual task %s: %w", taskID, err)
	}

	return scanManualTask(tx.QueryRow(ctx, query, args...))
}

// ListBetween returns an owner's manual tasks bucketed within [from, to].
// Tasks without a due date are bucketed on their creation day in the given time zone.
func (r *ManualTaskRepository) ListBetween(
	ctx context.Context,
	ownerID string,
	from, to domain.Date,
	loc *time.Location,
) ([]domain.ManualTask, error) {
	query, args, err := psql.
		Select(manualTaskColumns...).
		From("manual_tasks").
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Expr(
			"COALESCE(due_date, (created_at AT TIME ZONE ?)::date) BETWEEN ? AND ?",
			loc.String(), from.Time(), to.Time(),
		)).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListBetween query for manual tasks: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query manual tasks: %w", err)
	}

	return scanManualTasks(rows)
}

// Create inserts a manual task within a transaction.
// Returns the task with ID, CreatedAt and UpdatedAt populated.
func (r *ManualTaskRepository) Create(ctx context.Context, tx pgx.Tx, task *domain.ManualTask) (*domain.ManualTask, error) {
	query, args, err := psql.
		Insert("manual_tasks").
		Columns("owner_id", "title", "description", "priority", "due_date", "vendor_id", "status").
		Values(
			task.OwnerID,
			task.Title,
			task.Description,
			task.Priority,
			dateParam(task.DueDate),
			task.VendorID,
			task.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for manual task: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create manual task: %w", err)
	}

	return task, nil
}

// UpdateStatus sets the status and completion time of a manual task,
// guarded on the status read under lock.
func (r *ManualTaskRepository) UpdateStatus(
	ctx context.Context,
	tx pgx.Tx,
	taskID string,
	oldStatus domain.ManualTaskStatus,
	newStatus domain.ManualTaskStatus,
	completedAt *time.Time,
) (time.Time, error) {
	query, args, err := psql.
		Update("manual_tasks").
		Set("status", newStatus).
		Set("completed_at", completedAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"id":     taskID,
			"status": oldStatus,
		}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("build UpdateStatus query for manual task %s: %w", taskID, err)
	}

	var updatedAt time.Time
	if err := tx.QueryRow(ctx, query, args...).Scan(&updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrManualTaskNotFound
		}
		return time.Time{}, fmt.Errorf("update manual task status: %w", err)
	}

	return updatedAt, nil
}

// Delete removes an owner's manual task.
func (r *ManualTaskRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	query, args, err := psql.
		Delete("manual_tasks").
		Where(sq.Eq{"id": taskID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for manual task %s: %w", taskID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete manual task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrManualTaskNotFound
	}
	return nil
}
