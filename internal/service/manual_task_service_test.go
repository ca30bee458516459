package service_test

import (
	"context"

	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/service"
)

func strPtr(s string) *string { return &s }

// TestCreateManualTask_Success creates a task with defaults applied.
func (s *ServiceTestSuite) TestCreateManualTask_Success() {
	ctx := context.Background()
	selected := domain.Date{Year: 2024, Month: 3, Day: 12}

	task, err := s.taskService.CreateManualTask(ctx, service.CreateManualTaskParams{
		OwnerID:      ownerID,
		Title:        "  Chase invoice  ",
		SelectedDate: &selected,
		VendorID:     strPtr("V0001"),
	})
	s.Require().NoError(err)
	s.NotEmpty(task.ID)
	s.Equal("Chase invoice", task.Title)
	s.Equal(domain.TaskPriorityMedium, task.Priority)
	s.Equal(domain.ManualTaskStatusPending, task.Status)
	s.Require().NotNil(task.DueDate)
	s.Equal("2024-03-12", task.DueDate.String())

	stored, err := s.taskRepo.GetByID(ctx, ownerID, task.ID)
	s.Require().NoError(err)
	s.Equal("Chase invoice", stored.Title)
	s.Require().NotNil(stored.VendorID)
	s.Equal("V0001", *stored.VendorID)
	s.Equal("2024-03-12", stored.DueDate.String())
	s.Nil(stored.CompletedAt)
}

// TestCreateManualTask_EmptyTitle rejects blank titles and writes nothing.
func (s *ServiceTestSuite) TestCreateManualTask_EmptyTitle() {
	ctx := context.Background()

	_, err := s.taskService.CreateManualTask(ctx, service.CreateManualTaskParams{OwnerID: ownerID, Title: ""})
	s.ErrorIs(err, domain.ErrTitleRequired)
	s.ErrorIs(err, domain.ErrValidation)

	var count int
	s.Require().NoError(s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM manual_tasks").Scan(&count))
	s.Zero(count)
}

// TestCreateManualTask_DefaultsToToday uses the business calendar when no day is given.
func (s *ServiceTestSuite) TestCreateManualTask_DefaultsToToday() {
	task, err := s.taskService.CreateManualTask(context.Background(), service.CreateManualTaskParams{
		OwnerID: ownerID,
		Title:   "Walk-in visit",
	})
	s.Require().NoError(err)
	s.Equal("2024-03-10", task.DueDate.String())
}

// TestToggleManualTask_RoundTrip completes and reopens a task.
func (s *ServiceTestSuite) TestToggleManualTask_RoundTrip() {
	ctx := context.Background()
	id := s.insertManualTask(ownerID, "Order parts", strPtr("2024-03-10"))

	task, err := s.taskService.ToggleManualTask(ctx, ownerID, id)
	s.Require().NoError(err)
	s.Equal(domain.ManualTaskStatusCompleted, task.Status)
	s.Require().NotNil(task.CompletedAt)
	s.WithinDuration(s.now, *task.CompletedAt, 0)

	stored, err := s.taskRepo.GetByID(ctx, ownerID, id)
	s.Require().NoError(err)
	s.Equal(domain.ManualTaskStatusCompleted, stored.Status)
	s.Require().NotNil(stored.CompletedAt)
	s.True(stored.CompletedAt.Equal(s.now))

	task, err = s.taskService.ToggleManualTask(ctx, ownerID, id)
	s.Require().NoError(err)
	s.Equal(domain.ManualTaskStatusPending, task.Status)
	s.Nil(task.CompletedAt)

	stored, err = s.taskRepo.GetByID(ctx, ownerID, id)
	s.Require().NoError(err)
	s.Equal(domain.ManualTaskStatusPending, stored.Status)
	s.Nil(stored.CompletedAt)
}

// TestToggleManualTask_NotFound fails for ids that do not exist.
func (s *ServiceTestSuite) TestToggleManualTask_NotFound() {
	ctx := context.Background()

	_, err := s.taskService.ToggleManualTask(ctx, ownerID, "7d1b5a84-8f5e-4a57-9d8e-3f1b2c3d4e5f")
	s.ErrorIs(err, domain.ErrManualTaskNotFound)
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.taskService.ToggleManualTask(ctx, ownerID, "not-a-uuid")
	s.ErrorIs(err, domain.ErrNotFound)
}

// TestToggleManualTask_OtherOwner cannot see another user's to-do.
func (s *ServiceTestSuite) TestToggleManualTask_OtherOwner() {
	id := s.insertManualTask(otherID, "Bob's task", nil)

	_, err := s.taskService.ToggleManualTask(context.Background(), ownerID, id)
	s.ErrorIs(err, domain.ErrManualTaskNotFound)
}

// TestToggleTask_ReadOnlySources rejects work order and contact log ids.
func (s *ServiceTestSuite) TestToggleTask_ReadOnlySources() {
	ctx := context.Background()
	var woID string
	s.Require().NoError(s.pool.QueryRow(ctx, `
		INSERT INTO work_orders (vendor_id, date, description, status)
		VALUES ('V0001', '2024-03-10', 'Fix leak', 'PENDING')
		RETURNING id
	`).Scan(&woID))

	_, err := s.taskService.ToggleTask(ctx, ownerID, domain.WorkOrderIDPrefix+woID)
	s.ErrorIs(err, domain.ErrToggleNotSupported)
	s.ErrorIs(err, domain.ErrInvalidOperation)

	_, err = s.taskService.ToggleTask(ctx, ownerID, "log:7d1b5a84-8f5e-4a57-9d8e-3f1b2c3d4e5f")
	s.ErrorIs(err, domain.ErrToggleNotSupported)

	var status string
	s.Require().NoError(s.pool.QueryRow(ctx, "SELECT status FROM work_orders WHERE id = $1", woID).Scan(&status))
	s.Equal("PENDING", status)
}

// TestToggleTask_ManualID toggles through the unified id.
func (s *ServiceTestSuite) TestToggleTask_ManualID() {
	id := s.insertManualTask(ownerID, "Renew insurance", nil)

	task, err := s.taskService.ToggleTask(context.Background(), ownerID, domain.ManualTaskIDPrefix+id)
	s.Require().NoError(err)
	s.Equal(domain.ManualTaskStatusCompleted, task.Status)
}

// TestDeleteTask removes a manual task and rejects read-only ids.
func (s *ServiceTestSuite) TestDeleteTask() {
	ctx := context.Background()
	id := s.insertManualTask(ownerID, "Temp", nil)

	s.Require().NoError(s.taskService.DeleteTask(ctx, ownerID, domain.ManualTaskIDPrefix+id))

	_, err := s.taskRepo.GetByID(ctx, ownerID, id)
	s.ErrorIs(err, domain.ErrManualTaskNotFound)

	err = s.taskService.DeleteTask(ctx, ownerID, domain.ManualTaskIDPrefix+id)
	s.ErrorIs(err, domain.ErrManualTaskNotFound)

	err = s.taskService.DeleteTask(ctx, ownerID, "wo:7d1b5a84-8f5e-4a57-9d8e-3f1b2c3d4e5f")
	s.ErrorIs(err, domain.ErrDeleteNotSupported)
}
