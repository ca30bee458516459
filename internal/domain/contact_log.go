package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContactLog records one interaction with a vendor.
// A log is schedulable when it carries a follow-up date or is a reservation.
type ContactLog struct {
	ID              string
	VendorID        string
	ContactDate     Date
	Note            string
	NextFollowUp    *Date
	IsReservation   bool
	ReservationTime string // HH:MM, empty when unset
	QuoteAmount     *decimal.Decimal
	Location        string
	CreatedAt       time.Time
}

// IsSchedulable reports whether the log belongs on the agenda.
func (l *ContactLog) IsSchedulable() bool {
	return l.NextFollowUp != nil || l.IsReservation
}

// ScheduledDate is the follow-up date when set, otherwise the contact date.
func (l *ContactLog) ScheduledDate() Date {
	if l.NextFollowUp != nil && !l.NextFollowUp.IsZero() {
		return *l.NextFollowUp
	}
	return l.ContactDate
}
