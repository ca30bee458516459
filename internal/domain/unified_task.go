package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SourceType identifies where a unified task came from.
type SourceType string

const (
	SourceTransaction SourceType = "TRANSACTION"
	SourceFollowUp    SourceType = "FOLLOW_UP"
	SourceReservation SourceType = "RESERVATION"
	SourceManual      SourceType = "MANUAL"
)

// Unified task id prefixes, one per store.
const (
	WorkOrderIDPrefix  = "wo:"
	ContactLogIDPrefix = "log:"
	ManualTaskIDPrefix = "todo:"
)

// IsMutable returns true for the only source that accepts writes.
func (s SourceType) IsMutable() bool {
	return s == SourceManual
}

// UnifiedTask is one schedulable item on the agenda, regardless of origin.
type UnifiedTask struct {
	ID                 string
	SourceType         SourceType
	Date               Date
	Time               string
	Title              string
	Subtitle           string
	RelatedPartyID     string
	RelatedPartyName   string
	RelatedPartyAvatar string
	IsCompleted        bool
	QuoteAmount        *decimal.Decimal
	Location           string
}

// IsReservation reports whether the task is a vendor visit.
func (t *UnifiedTask) IsReservation() bool {
	return t.SourceType == SourceReservation
}

// SplitTaskID splits a unified id into its source and the store id.
// Returns false if the prefix is unknown or the store id is empty.
func SplitTaskID(id string) (SourceType, string, bool) {
	var (
		source SourceType
		raw    string
	)
	switch {
	case strings.HasPrefix(id, WorkOrderIDPrefix):
		source, raw = SourceTransaction, strings.TrimPrefix(id, WorkOrderIDPrefix)
	case strings.HasPrefix(id, ContactLogIDPrefix):
		// FOLLOW_UP and RESERVATION share a prefix; the store decides which.
		source, raw = SourceFollowUp, strings.TrimPrefix(id, ContactLogIDPrefix)
	case strings.HasPrefix(id, ManualTaskIDPrefix):
		source, raw = SourceManual, strings.TrimPrefix(id, ManualTaskIDPrefix)
	default:
		return "", "", false
	}
	if raw == "" {
		return "", "", false
	}
	return source, raw, true
}
