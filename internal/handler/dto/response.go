package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/partnerlink/partnerlink/internal/agenda"
	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/repository"
)

// TaskItem represents one unified agenda entry.
type TaskItem struct {
	ID                 string  `json:"id"`
	SourceType         string  `json:"source_type"`
	Date               string  `json:"date"`
	Time               string  `json:"time,omitempty"`
	Title              string  `json:"title"`
	Subtitle           string  `json:"subtitle,omitempty"`
	RelatedPartyID     string  `json:"related_party_id,omitempty"`
	RelatedPartyName   string  `json:"related_party_name,omitempty"`
	RelatedPartyAvatar string  `json:"related_party_avatar,omitempty"`
	IsCompleted        bool    `json:"is_completed"`
	QuoteAmount        *string `json:"quote_amount,omitempty" example:"1250.50"`
	Location           string  `json:"location,omitempty"`
	Mutable            bool    `json:"mutable"`
}

// AgendaResponse represents the response for GET /agenda.
type AgendaResponse struct {
	Date  string     `json:"date"`
	Tasks []TaskItem `json:"tasks"`
}

// CalendarDay represents one cell of the month grid.
type CalendarDay struct {
	Date           string `json:"date"`
	Count          int    `json:"count"`
	HasReservation bool   `json:"has_reservation"`
}

// CalendarResponse represents the response for GET /calendar.
// Index is keyed by day-of-month and omits days without tasks.
type CalendarResponse struct {
	Month       string                `json:"month"`
	DaysInMonth int                   `json:"days_in_month"`
	Total       int                   `json:"total"`
	Index       map[string]DaySummary `json:"index"`
	Days        []CalendarDay         `json:"days"`
}

// DaySummary is the per-day entry of CalendarResponse.Index.
type DaySummary struct {
	Count          int  `json:"count"`
	HasReservation bool `json:"has_reservation"`
}

// ManualTaskResponse represents a stored manual to-do.
type ManualTaskResponse struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *string    `json:"due_date"`
	VendorID    *string    `json:"vendor_id"`
	Status      string     `json:"status"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StatsResponse represents the response for GET /stats.
type StatsResponse struct {
	Month                string         `json:"month"`
	MonthTotal           int            `json:"month_total"`
	ActiveVendors        int            `json:"active_vendors"`
	WorkOrdersByStatus   map[string]int `json:"work_orders_by_status"`
	Reservations         int            `json:"reservations"`
	FollowUps            int            `json:"follow_ups"`
	PendingManualTasks   int            `json:"pending_manual_tasks"`
	CompletedManualTasks int            `json:"completed_manual_tasks"`
	OverdueManualTasks   int            `json:"overdue_manual_tasks"`
}

// ToTaskItem converts a unified task to its API form.
func ToTaskItem(t domain.UnifiedTask) TaskItem {
	item := TaskItem{
		ID:                 t.ID,
		SourceType:         string(t.SourceType),
		Date:               t.Date.String(),
		Time:               t.Time,
		Title:              t.Title,
		Subtitle:           t.Subtitle,
		RelatedPartyID:     t.RelatedPartyID,
		RelatedPartyName:   t.RelatedPartyName,
		RelatedPartyAvatar: t.RelatedPartyAvatar,
		IsCompleted:        t.IsCompleted,
		Location:           t.Location,
		Mutable:            t.SourceType.IsMutable(),
	}
	if t.QuoteAmount != nil {
		q := t.QuoteAmount.StringFixed(2)
		item.QuoteAmount = &q
	}
	return item
}

// ToAgendaResponse converts an ordered day list.
func ToAgendaResponse(date domain.Date, tasks []domain.UnifiedTask) AgendaResponse {
	items := make([]TaskItem, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskItem(t)
	}
	return AgendaResponse{Date: date.String(), Tasks: items}
}

// ToCalendarResponse converts a month view.
func ToCalendarResponse(view *agenda.MonthView) CalendarResponse {
	index := make(map[string]DaySummary, len(view.Index))
	for day, s := range view.Index {
		index[strconv.Itoa(day)] = DaySummary{Count: s.Count, HasReservation: s.HasReservation}
	}

	days := make([]CalendarDay, len(view.Days))
	for i, cell := range view.Days {
		days[i] = CalendarDay{
			Date:           cell.Date.String(),
			Count:          cell.Count,
			HasReservation: cell.HasReservation,
		}
	}

	return CalendarResponse{
		Month:       FormatMonth(view.Year, view.Month),
		DaysInMonth: view.DaysInMonth,
		Total:       view.Total,
		Index:       index,
		Days:        days,
	}
}

// ToManualTaskResponse converts a stored manual task.
func ToManualTaskResponse(t *domain.ManualTask) ManualTaskResponse {
	var due *string
	if t.DueDate != nil {
		s := t.DueDate.String()
		due = &s
	}
	return ManualTaskResponse{
		ID:          t.ID,
		TaskID:      domain.ManualTaskIDPrefix + t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		DueDate:     due,
		VendorID:    t.VendorID,
		Status:      string(t.Status),
		IsCompleted: t.IsCompleted(),
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToStatsResponse combines repository counters with the month total.
func ToStatsResponse(year int, month time.Month, monthTotal int, stats *repository.DashboardStatsResult) StatsResponse {
	return StatsResponse{
		Month:                FormatMonth(year, month),
		MonthTotal:           monthTotal,
		ActiveVendors:        stats.ActiveVendors,
		WorkOrdersByStatus:   stats.WorkOrdersByStatus,
		Reservations:         stats.ReservationsInPeriod,
		FollowUps:            stats.FollowUpsInPeriod,
		PendingManualTasks:   stats.PendingManualTasks,
		CompletedManualTasks: stats.CompletedManualTasks,
		OverdueManualTasks:   stats.OverdueManualTasks,
	}
}

// FormatMonth renders YYYY-MM.
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
