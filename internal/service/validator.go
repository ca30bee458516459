package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/partnerlink/partnerlink/internal/domain"
)

const maxTitleLength = 200

// Validator handles input validation and defaulting for manual task operations.
type Validator struct {
	calendar *Calendar
}

// NewValidator creates a new Validator.
func NewValidator(calendar *Calendar) *Validator {
	return &Validator{calendar: calendar}
}

// CreateManualTaskParams holds the caller input for a new manual task.
type CreateManualTaskParams struct {
	OwnerID     string
	Title       string
	Description string
	Priority    domain.TaskPriority
	DueDate     *domain.Date
	// SelectedDate is the day open in the calendar; used when DueDate is omitted.
	SelectedDate *domain.Date
	VendorID     *string
}

// NewManualTask validates params and returns the task to insert.
// Title is trimmed and required; priority defaults to MEDIUM; due date
// falls back to the selected day, then to today.
func (v *Validator) NewManualTask(params CreateManualTaskParams) (*domain.ManualTask, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}
	if len([]rune(title)) > maxTitleLength {
		return nil, fmt.Errorf("%w: title longer than %d characters", domain.ErrValidation, maxTitleLength)
	}

	priority := params.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, priority)
	}

	var due domain.Date
	switch {
	case params.DueDate != nil && !params.DueDate.IsZero():
		due = *params.DueDate
	case params.SelectedDate != nil && !params.SelectedDate.IsZero():
		due = *params.SelectedDate
	default:
		due = v.calendar.Today()
	}

	var vendorID *string
	if params.VendorID != nil {
		if id := strings.TrimSpace(*params.VendorID); id != "" {
			vendorID = &id
		}
	}

	return &domain.ManualTask{
		OwnerID:     params.OwnerID,
		Title:       title,
		Description: strings.TrimSpace(params.Description),
		Priority:    priority,
		DueDate:     &due,
		VendorID:    vendorID,
		Status:      domain.ManualTaskStatusPending,
	}, nil
}

// ManualTaskID resolves a unified task id to a manual task store id.
// Ids of read-only sources fail with readOnly.
func (v *Validator) ManualTaskID(unifiedID string, readOnly error) (string, error) {
	source, raw, ok := domain.SplitTaskID(unifiedID)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTaskID, unifiedID)
	}
	if !source.IsMutable() {
		return "", fmt.Errorf("%w: task %s is read-only", readOnly, unifiedID)
	}
	return raw, nil
}

// isStoreID reports whether id can exist in the manual task store.
func isStoreID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
