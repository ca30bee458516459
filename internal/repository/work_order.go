package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/partnerlink/internal/domain"
)

// WorkOrderRepository reads work orders for the agenda.
type WorkOrderRepository struct {
	pool *pgxpool.Pool
}

// NewWorkOrderRepository creates a new WorkOrderRepository.
func NewWorkOrderRepository(pool *pgxpool.Pool) *WorkOrderRepository {
	return &WorkOrderRepository{pool: pool}
}

func scanWorkOrder(row pgx.Row) (*domain.WorkOrder, error) {
	var (
		wo   domain.WorkOrder
		date time.Time
	)
	if err := row.Scan(&wo.ID, &wo.VendorID, &date, &wo.Description, &wo.Status, &wo.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan work order: %w", err)
	}
	wo.Date = domain.DateOf(date.UTC())
	return &wo, nil
}

// ListBetween returns work orders dated within [from, to], oldest first.
func (r *WorkOrderRepository) ListBetween(ctx context.Context, from, to domain.Date) ([]domain.WorkOrder, error) {
	query, args, err := psql.
		Select("id", "vendor_id", "date", "description", "status", "created_at").
		From("work_orders").
		Where(dateBetween("date", from, to)).
		OrderBy("date ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListBetween query for work orders: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query work orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.WorkOrder, 0)
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *wo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return orders, nil
}

// Create inserts a work order within a transaction.
func (r *WorkOrderRepository) Create(ctx context.Context, tx pgx.Tx, wo *domain.WorkOrder) error {
	if wo.Status == "" {
		wo.Status = domain.WorkOrderStatusPending
	}

	query, args, err := psql.
		Insert("work_orders").
		Columns("vendor_id", "date", "description", "status").
		Values(wo.VendorID, wo.Date.Time(), wo.Description, wo.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for work order: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&wo.ID, &wo.CreatedAt); err != nil {
		return fmt.Errorf("create work order: %w", err)
	}
	return nil
}
