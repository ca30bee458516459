package agenda

import (
	"strings"
	"time"

	"github.com/partnerlink/partnerlink/internal/domain"
)

// DaySummary is the calendar-cell summary for one day.
type DaySummary struct {
	Count          int
	HasReservation bool
}

// IndexByDate summarizes tasks per day of the given month.
// Days without tasks are omitted from the map.
func IndexByDate(tasks []domain.UnifiedTask, year int, month time.Month) map[int]DaySummary {
	index := make(map[int]DaySummary)
	for i := range tasks {
		d := tasks[i].Date
		if d.Year != year || d.Month != month {
			continue
		}
		// Dates are validated on construction, but a hand-built value could still be out of range.
		if d.Day < 1 || d.Day > domain.DaysIn(year, month) {
			continue
		}
		s := index[d.Day]
		s.Count++
		if tasks[i].IsReservation() {
			s.HasReservation = true
		}
		index[d.Day] = s
	}
	return index
}

// MonthTotal counts tasks whose YYYY-MM-DD date starts with the month's YYYY-MM- prefix.
func MonthTotal(tasks []domain.UnifiedTask, year int, month time.Month) int {
	prefix := domain.MonthPrefix(year, month)
	total := 0
	for i := range tasks {
		if strings.HasPrefix(tasks[i].Date.String(), prefix) {
			total++
		}
	}
	return total
}

// DayCell is one cell of a dense month grid.
type DayCell struct {
	Date           domain.Date
	Count          int
	HasReservation bool
}

// MonthView is everything a calendar page needs for one month.
type MonthView struct {
	Year        int
	Month       time.Month
	DaysInMonth int
	Index       map[int]DaySummary
	Days        []DayCell
	Total       int
}

// Month builds the month view: the sparse index, a dense cell per day, and the month total.
func Month(tasks []domain.UnifiedTask, year int, month time.Month) MonthView {
	n := domain.DaysIn(year, month)
	index := IndexByDate(tasks, year, month)

	days := make([]DayCell, n)
	for day := 1; day <= n; day++ {
		s := index[day]
		days[day-1] = DayCell{
			Date:           domain.Date{Year: year, Month: month, Day: day},
			Count:          s.Count,
			HasReservation: s.HasReservation,
		}
	}

	return MonthView{
		Year:        year,
		Month:       month,
		DaysInMonth: n,
		Index:       index,
		Days:        days,
		Total:       MonthTotal(tasks, year, month),
	}
}
