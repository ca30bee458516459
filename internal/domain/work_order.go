package domain

import "time"

// WorkOrderStatus represents the billing lifecycle of a work order.
type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "PENDING"
	WorkOrderStatusInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusCompleted  WorkOrderStatus = "COMPLETED"
	WorkOrderStatusApproved   WorkOrderStatus = "APPROVED"
	WorkOrderStatusPaid       WorkOrderStatus = "PAID"
	WorkOrderStatusCancelled  WorkOrderStatus = "CANCELLED"
)

// IsSettled returns true once the work order has been approved or paid.
// Settled work orders show as completed on the agenda.
func (s WorkOrderStatus) IsSettled() bool {
	return s == WorkOrderStatusPaid || s == WorkOrderStatusApproved
}

// IsValid checks if the status is one of the allowed values.
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusCompleted,
		WorkOrderStatusApproved, WorkOrderStatusPaid, WorkOrderStatusCancelled:
		return true
	default:
		return false
	}
}

// WorkOrder is a maintenance transaction raised against a vendor.
// The agenda only reads work orders.
type WorkOrder struct {
	ID          string
	VendorID    string
	Date        Date
	Description string
	Status      WorkOrderStatus
	CreatedAt   time.Time
}
