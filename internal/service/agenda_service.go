package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/partnerlink/partnerlink/internal/agenda"
	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/repository"
)

// AgendaService fetches the three task sources for a date range and runs
// them through the agenda engine. Nothing is cached between calls.
type AgendaService struct {
	workOrders  *repository.WorkOrderRepository
	contactLogs *repository.ContactLogRepository
	manualTasks *repository.ManualTaskRepository
	vendors     *repository.VendorRepository
	calendar    *Calendar
}

// NewAgendaService creates a new AgendaService.
func NewAgendaService(
	workOrders *repository.WorkOrderRepository,
	contactLogs *repository.ContactLogRepository,
	manualTasks *repository.ManualTaskRepository,
	vendors *repository.VendorRepository,
	calendar *Calendar,
) *AgendaService {
	return &AgendaService{
		workOrders:  workOrders,
		contactLogs: contactLogs,
		manualTasks: manualTasks,
		vendors:     vendors,
		calendar:    calendar,
	}
}

// Today returns the current day in the business calendar.
func (s *AgendaService) Today() domain.Date {
	return s.calendar.Today()
}

// MonthView returns the calendar summary of one month for the owner.
func (s *AgendaService) MonthView(ctx context.Context, ownerID string, year int, month time.Month) (*agenda.MonthView, error) {
	if _, err := domain.NewDate(year, month, 1); err != nil {
		return nil, err
	}

	from, to := MonthRange(year, month)
	tasks, err := s.load(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	view := agenda.Month(tasks, year, month)
	return &view, nil
}

// Day returns the owner's agenda for one day, reservations first.
func (s *AgendaService) Day(ctx context.Context, ownerID string, date domain.Date) ([]domain.UnifiedTask, error) {
	tasks, err := s.load(ctx, ownerID, date, date)
	if err != nil {
		return nil, err
	}
	return agenda.SelectDay(tasks, date), nil
}

// load fetches every source bucketed within [from, to] and aggregates them.
func (s *AgendaService) load(ctx context.Context, ownerID string, from, to domain.Date) ([]domain.UnifiedTask, error) {
	workOrders, err := s.workOrders.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}

	contactLogs, err := s.contactLogs.ListScheduledBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list contact logs: %w", err)
	}

	manualTasks, err := s.manualTasks.ListBetween(ctx, ownerID, from, to, s.calendar.Location())
	if err != nil {
		return nil, fmt.Errorf("list manual tasks: %w", err)
	}
	// Undated to-dos fall on their creation day in the business calendar.
	for i := range manualTasks {
		manualTasks[i].CreatedAt = manualTasks[i].CreatedAt.In(s.calendar.Location())
	}

	vendorIDs := collectVendorIDs(workOrders, contactLogs, manualTasks)
	vendors, err := s.vendors.Lookup(ctx, vendorIDs)
	if err != nil {
		// Vendors only decorate tasks; continue with blank fields.
		slog.Warn("vendor lookup failed, rendering agenda without vendor details",
			"owner_id", ownerID,
			"vendor_count", len(vendorIDs),
			"error", err,
		)
		vendors = nil
	}

	tasks := agenda.Build(agenda.Sources{
		WorkOrders:  workOrders,
		ContactLogs: contactLogs,
		ManualTasks: manualTasks,
		Vendors:     vendors,
	})

	slog.Debug("agenda loaded",
		"owner_id", ownerID,
		"from", from.String(),
		"to", to.String(),
		"work_orders", len(workOrders),
		"contact_logs", len(contactLogs),
		"manual_tasks", len(manualTasks),
		"tasks", len(tasks),
	)

	return tasks, nil
}

// collectVendorIDs returns the distinct vendor ids referenced by the records.
func collectVendorIDs(workOrders []domain.WorkOrder, contactLogs []domain.ContactLog, manualTasks []domain.ManualTask) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, wo := range workOrders {
		add(wo.VendorID)
	}
	for _, l := range contactLogs {
		add(l.VendorID)
	}
	for _, t := range manualTasks {
		if t.VendorID != nil {
			add(*t.VendorID)
		}
	}
	return ids
}
