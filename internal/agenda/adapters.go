// Package agenda merges work orders, contact logs and manual to-dos into one
// calendar-indexed timeline.
//
// Everything here is pure: callers fetch records and pass them in, and every
// read rebuilds the view from scratch.
package agenda

import (
	"github.com/partnerlink/partnerlink/internal/domain"
)

// VendorLookup maps vendor ids to directory entries used for decoration.
type VendorLookup map[string]domain.Vendor

// get returns the vendor for id, or a blank entry when it is unknown.
func (l VendorLookup) get(id string) domain.Vendor {
	if id == "" || l == nil {
		return domain.Vendor{}
	}
	return l[id]
}

const (
	transactionTitlePrefix = "工單: "
	reservationTitlePrefix = "預約: "
	followUpTitlePrefix    = "跟進: "
)

// AdaptTransactions emits one TRANSACTION task per work order.
func AdaptTransactions(records []domain.WorkOrder, vendors VendorLookup) []domain.UnifiedTask {
	tasks := make([]domain.UnifiedTask, 0, len(records))
	for _, rec := range records {
		vendor := vendors.get(rec.VendorID)
		tasks = append(tasks, domain.UnifiedTask{
			ID:                 domain.WorkOrderIDPrefix + rec.ID,
			SourceType:         domain.SourceTransaction,
			Date:               rec.Date,
			Title:              transactionTitlePrefix + rec.Description,
			Subtitle:           vendor.Name,
			RelatedPartyID:     rec.VendorID,
			RelatedPartyName:   vendor.Name,
			RelatedPartyAvatar: vendor.AvatarURL,
			IsCompleted:        rec.Status.IsSettled(),
		})
	}
	return tasks
}

// AdaptContactLogs emits one FOLLOW_UP or RESERVATION task per schedulable log.
// Logs with neither a follow-up date nor a reservation flag are dropped.
func AdaptContactLogs(records []domain.ContactLog, vendors VendorLookup) []domain.UnifiedTask {
	tasks := make([]domain.UnifiedTask, 0, len(records))
	for i := range records {
		rec := &records[i]
		if !rec.IsSchedulable() {
			continue
		}

		vendor := vendors.get(rec.VendorID)
		party := vendor.Name
		if party == "" {
			party = rec.VendorID
		}

		task := domain.UnifiedTask{
			ID:                 domain.ContactLogIDPrefix + rec.ID,
			SourceType:         domain.SourceFollowUp,
			Date:               rec.ScheduledDate(),
			Title:              followUpTitlePrefix + party,
			Subtitle:           rec.Note,
			RelatedPartyID:     rec.VendorID,
			RelatedPartyName:   vendor.Name,
			RelatedPartyAvatar: vendor.AvatarURL,
		}

		// Reservation wins when a log has both flags.
		if rec.IsReservation {
			task.SourceType = domain.SourceReservation
			task.Title = reservationTitlePrefix + party
			task.Time = rec.ReservationTime
			task.QuoteAmount = rec.QuoteAmount
			task.Location = rec.Location
			if task.Location == "" {
				task.Location = vendor.Address
			}
		}

		tasks = append(tasks, task)
	}
	return tasks
}

// AdaptManualTasks emits one MANUAL task per to-do.
// A to-do without a due date is bucketed on the day it was created; CreatedAt
// must already be in the business calendar location.
func AdaptManualTasks(records []domain.ManualTask, vendors VendorLookup) []domain.UnifiedTask {
	tasks := make([]domain.UnifiedTask, 0, len(records))
	for _, rec := range records {
		date := domain.DateOf(rec.CreatedAt)
		if rec.DueDate != nil && !rec.DueDate.IsZero() {
			date = *rec.DueDate
		}

		var vendorID string
		if rec.VendorID != nil {
			vendorID = *rec.VendorID
		}
		vendor := vendors.get(vendorID)

		tasks = append(tasks, domain.UnifiedTask{
			ID:                 domain.ManualTaskIDPrefix + rec.ID,
			SourceType:         domain.SourceManual,
			Date:               date,
			Title:              rec.Title,
			Subtitle:           rec.Description,
			RelatedPartyID:     vendorID,
			RelatedPartyName:   vendor.Name,
			RelatedPartyAvatar: vendor.AvatarURL,
			IsCompleted:        rec.IsCompleted(),
		})
	}
	return tasks
}
