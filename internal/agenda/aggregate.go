package agenda

import "github.com/partnerlink/partnerlink/internal/domain"

// Aggregate concatenates the three streams in the fixed order
// transactions, contact-derived, manual. Ids are disjoint by prefix, so no
// deduplication happens, and nothing is sorted here.
func Aggregate(transactions, contacts, manual []domain.UnifiedTask) []domain.UnifiedTask {
	all := make([]domain.UnifiedTask, 0, len(transactions)+len(contacts)+len(manual))
	all = append(all, transactions...)
	all = append(all, contacts...)
	all = append(all, manual...)
	return all
}

// Sources bundles already-fetched records from every store.
type Sources struct {
	WorkOrders  []domain.WorkOrder
	ContactLogs []domain.ContactLog
	ManualTasks []domain.ManualTask
	Vendors     VendorLookup
}

// Build adapts every source and aggregates the result.
func Build(src Sources) []domain.UnifiedTask {
	return Aggregate(
		AdaptTransactions(src.WorkOrders, src.Vendors),
		AdaptContactLogs(src.ContactLogs, src.Vendors),
		AdaptManualTasks(src.ManualTasks, src.Vendors),
	)
}
