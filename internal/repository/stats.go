package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/partnerlink/internal/domain"
)

// StatsFilters holds filters for dashboard queries.
type StatsFilters struct {
	OwnerID string
	From    domain.Date
	To      domain.Date
}

// DashboardStatsResult holds the counters shown on the dashboard.
type DashboardStatsResult struct {
	ActiveVendors        int
	WorkOrdersByStatus   map[string]int
	ReservationsInPeriod int
	FollowUpsInPeriod    int
	PendingManualTasks   int
	CompletedManualTasks int
	OverdueManualTasks   int
}

// StatsRepository runs the aggregation queries behind the dashboard.
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// GetDashboardStats retrieves directory, work order, contact log and to-do counters.
// today decides which pending to-dos are overdue.
func (r *StatsRepository) GetDashboardStats(ctx context.Context, filters StatsFilters, today domain.Date) (*DashboardStatsResult, error) {
	result := &DashboardStatsResult{WorkOrdersByStatus: make(map[string]int)}

	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM vendors WHERE is_active = true
	`).Scan(&result.ActiveVendors)
	if err != nil {
		return nil, fmt.Errorf("count active vendors: %w", err)
	}

	// Work orders by status within the period
	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*)
		FROM work_orders
		WHERE date BETWEEN $1 AND $2
		GROUP BY status
	`, filters.From.Time(), filters.To.Time())
	if err != nil {
		return nil, fmt.Errorf("query work orders by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		result.WorkOrdersByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status rows: %w", err)
	}

	err = r.pool.QueryRow(ctx, `
		SELECT
			COUNT(CASE WHEN is_reservation THEN 1 END),
			COUNT(CASE WHEN NOT is_reservation AND next_follow_up IS NOT NULL THEN 1 END)
		FROM contact_logs
		WHERE COALESCE(next_follow_up, contact_date) BETWEEN $1 AND $2
	`, filters.From.Time(), filters.To.Time()).Scan(&result.ReservationsInPeriod, &result.FollowUpsInPeriod)
	if err != nil {
		return nil, fmt.Errorf("count scheduled contact logs: %w", err)
	}

	// To-do counters are not limited to the period
	err = r.pool.QueryRow(ctx, `
		SELECT
			COUNT(CASE WHEN status = $2 THEN 1 END),
			COUNT(CASE WHEN status = $3 THEN 1 END),
			COUNT(CASE WHEN status = $2 AND due_date < $4 THEN 1 END)
		FROM manual_tasks
		WHERE owner_id = $1
	`, filters.OwnerID,
		domain.ManualTaskStatusPending,
		domain.ManualTaskStatusCompleted,
		today.Time(),
	).Scan(&result.PendingManualTasks, &result.CompletedManualTasks, &result.OverdueManualTasks)
	if err != nil {
		return nil, fmt.Errorf("count manual tasks: %w", err)
	}

	return result, nil
}
