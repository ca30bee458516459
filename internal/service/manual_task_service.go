package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/repository"
)

// ManualTaskService is the only writer of the manual task store.
// Work orders and contact logs are never mutated through it.
type ManualTaskService struct {
	pool      *pgxpool.Pool
	taskRepo  *repository.ManualTaskRepository
	calendar  *Calendar
	validator *Validator
}

// NewManualTaskService creates a new ManualTaskService.
func NewManualTaskService(
	pool *pgxpool.Pool,
	taskRepo *repository.ManualTaskRepository,
	calendar *Calendar,
) *ManualTaskService {
	return &ManualTaskService{
		pool:      pool,
		taskRepo:  taskRepo,
		calendar:  calendar,
		validator: NewValidator(calendar),
	}
}

// rollback is deferred after Begin; it is a no-op once the transaction committed.
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Error("failed to rollback transaction", "error", err)
	}
}

// CreateManualTask validates input and inserts a PENDING task.
func (s *ManualTaskService) CreateManualTask(ctx context.Context, params CreateManualTaskParams) (*domain.ManualTask, error) {
	task, err := s.validator.NewManualTask(params)
	if err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	task, err = s.taskRepo.Create(ctx, tx, task)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("manual task created",
		"task_id", task.ID,
		"owner_id", task.OwnerID,
		"due_date", task.DueDate.String(),
		"priority", task.Priority,
	)

	return task, nil
}

// ToggleManualTask flips a manual task between PENDING and COMPLETED.
// CompletedAt is stamped on entering COMPLETED and cleared on leaving it.
func (s *ManualTaskService) ToggleManualTask(ctx context.Context, ownerID, taskID string) (*domain.ManualTask, error) {
	if !isStoreID(taskID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrManualTaskNotFound, taskID)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	oldStatus := task.Status
	newStatus := oldStatus.Toggled()

	var completedAt *time.Time
	if newStatus == domain.ManualTaskStatusCompleted {
		now := s.calendar.Now()
		completedAt = &now
	}

	updatedAt, err := s.taskRepo.UpdateStatus(ctx, tx, taskID, oldStatus, newStatus, completedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	task.Status = newStatus
	task.CompletedAt = completedAt
	task.UpdatedAt = updatedAt

	slog.Info("manual task toggled",
		"task_id", taskID,
		"owner_id", ownerID,
		"old_status", oldStatus,
		"new_status", newStatus,
	)

	return task, nil
}

// ToggleTask toggles the task behind a unified agenda id.
// Only todo: ids are accepted; the other sources fail with ErrToggleNotSupported.
func (s *ManualTaskService) ToggleTask(ctx context.Context, ownerID, unifiedID string) (*domain.ManualTask, error) {
	taskID, err := s.validator.ManualTaskID(unifiedID, domain.ErrToggleNotSupported)
	if err != nil {
		return nil, err
	}
	return s.ToggleManualTask(ctx, ownerID, taskID)
}

// DeleteTask removes the manual task behind a unified agenda id.
func (s *ManualTaskService) DeleteTask(ctx context.Context, ownerID, unifiedID string) error {
	taskID, err := s.validator.ManualTaskID(unifiedID, domain.ErrDeleteNotSupported)
	if err != nil {
		return err
	}
	if !isStoreID(taskID) {
		return fmt.Errorf("%w: %s", domain.ErrManualTaskNotFound, taskID)
	}

	if err := s.taskRepo.Delete(ctx, ownerID, taskID); err != nil {
		return err
	}

	slog.Info("manual task deleted", "task_id", taskID, "owner_id", ownerID)
	return nil
}

// GetTask returns the manual task behind a unified agenda id.
// Read-only sources have no stored to-do and report not found.
func (s *ManualTaskService) GetTask(ctx context.Context, ownerID, unifiedID string) (*domain.ManualTask, error) {
	taskID, err := s.validator.ManualTaskID(unifiedID, domain.ErrManualTaskNotFound)
	if err != nil {
		return nil, err
	}
	return s.GetManualTask(ctx, ownerID, taskID)
}

// GetManualTask returns one of the owner's manual tasks.
func (s *ManualTaskService) GetManualTask(ctx context.Context, ownerID, taskID string) (*domain.ManualTask, error) {
	if !isStoreID(taskID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrManualTaskNotFound, taskID)
	}
	return s.taskRepo.GetByID(ctx, ownerID, taskID)
}
