package agenda

import (
	"sort"

	"github.com/partnerlink/partnerlink/internal/domain"
)

// SelectDay returns the tasks on date, reservations first.
// Everything else keeps its aggregation order.
func SelectDay(tasks []domain.UnifiedTask, date domain.Date) []domain.UnifiedTask {
	day := make([]domain.UnifiedTask, 0)
	for _, t := range tasks {
		if t.Date == date {
			day = append(day, t)
		}
	}

	sort.SliceStable(day, func(i, j int) bool {
		return day[i].IsReservation() && !day[j].IsReservation()
	})

	return day
}
