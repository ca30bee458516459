package domain

import "time"

// ManualTaskStatus is the completion state of a user-created to-do.
type ManualTaskStatus string

const (
	ManualTaskStatusPending   ManualTaskStatus = "PENDING"
	ManualTaskStatusCompleted ManualTaskStatus = "COMPLETED"
)

// Toggled returns the opposite status.
func (s ManualTaskStatus) Toggled() ManualTaskStatus {
	if s == ManualTaskStatusCompleted {
		return ManualTaskStatusPending
	}
	return ManualTaskStatusCompleted
}

// TaskPriority represents the priority level of a manual task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// IsValid checks if the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// ManualTask is a to-do created by a user, not derived from any other record.
type ManualTask struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     *Date
	VendorID    *string
	Status      ManualTaskStatus
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCompleted returns true if the task is marked done.
func (t *ManualTask) IsCompleted() bool {
	return t.Status == ManualTaskStatusCompleted
}
