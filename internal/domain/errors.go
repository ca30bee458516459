package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors wrap one of these so callers can branch with errors.Is.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
)

var (
	// Manual task errors
	ErrTitleRequired      = fmt.Errorf("%w: title required", ErrValidation)
	ErrInvalidPriority    = fmt.Errorf("%w: invalid task priority", ErrValidation)
	ErrInvalidTaskID      = fmt.Errorf("%w: invalid task id", ErrValidation)
	ErrManualTaskNotFound = fmt.Errorf("%w: manual task", ErrNotFound)
	ErrToggleNotSupported = fmt.Errorf("%w: only manual tasks support toggling", ErrInvalidOperation)
	ErrDeleteNotSupported = fmt.Errorf("%w: only manual tasks can be deleted", ErrInvalidOperation)

	// Calendar errors
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrValidation)

	// User errors
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
	ErrUserInactive = errors.New("user is inactive")
	ErrInvalidToken = errors.New("invalid authentication token")
)
