package dto

import "github.com/partnerlink/partnerlink/internal/domain"

// CreateTaskRequest represents the request body for POST /tasks.
type CreateTaskRequest struct {
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Priority     string       `json:"priority,omitempty"`
	DueDate      *domain.Date `json:"due_date,omitempty" swaggertype:"string" example:"2024-03-10"`
	SelectedDate *domain.Date `json:"selected_date,omitempty" swaggertype:"string" example:"2024-03-10"`
	VendorID     *string      `json:"vendor_id,omitempty"`
}

