package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/shopspring/decimal"
)

// contactLogColumns renders TIME and NUMERIC as text so they scan without custom codecs.
var contactLogColumns = []string{
	"id", "vendor_id", "contact_date", "note", "next_follow_up", "is_reservation",
	"to_char(reservation_time, 'HH24:MI')", "quote_amount::text", "location", "created_at",
}

// scheduledDateExpr is the bucketing date of a contact log.
const scheduledDateExpr = "COALESCE(next_follow_up, contact_date)"

// ContactLogRepository reads vendor contact logs.
type ContactLogRepository struct {
	pool *pgxpool.Pool
}

// NewContactLogRepository creates a new ContactLogRepository.
func NewContactLogRepository(pool *pgxpool.Pool) *ContactLogRepository {
	return &ContactLogRepository{pool: pool}
}

func scanContactLog(row pgx.Row) (*domain.ContactLog, error) {
	var (
		log             domain.ContactLog
		contactDate     time.Time
		nextFollowUp    *time.Time
		reservationTime *string
		quote           *string
	)
	err := row.Scan(
		&log.ID,
		&log.VendorID,
		&contactDate,
		&log.Note,
		&nextFollowUp,
		&log.IsReservation,
		&reservationTime,
		&quote,
		&log.Location,
		&log.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan contact log: %w", err)
	}

	log.ContactDate = domain.DateOf(contactDate.UTC())
	log.NextFollowUp = datePtr(nextFollowUp)
	if reservationTime != nil {
		log.ReservationTime = *reservationTime
	}
	if quote != nil {
		amount, err := decimal.NewFromString(*quote)
		if err != nil {
			return nil, fmt.Errorf("parse quote amount for contact log %s: %w", log.ID, err)
		}
		log.QuoteAmount = &amount
	}

	return &log, nil
}

// ListScheduledBetween returns follow-ups and reservations whose bucketing
// date lies within [from, to]. Logs that are neither are not fetched.
func (r *ContactLogRepository) ListScheduledBetween(ctx context.Context, from, to domain.Date) ([]domain.ContactLog, error) {
	query, args, err := psql.
		Select(contactLogColumns...).
		From("contact_logs").
		Where(sq.Or{
			sq.NotEq{"next_follow_up": nil},
			sq.Eq{"is_reservation": true},
		}).
		Where(dateBetween(scheduledDateExpr, from, to)).
		OrderBy(scheduledDateExpr+" ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListScheduledBetween query for contact logs: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query contact logs: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.ContactLog, 0)
	for rows.Next() {
		log, err := scanContactLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return logs, nil
}

// Create inserts a contact log within a transaction.
func (r *ContactLogRepository) Create(ctx context.Context, tx pgx.Tx, log *domain.ContactLog) error {
	var reservationTime *string
	if log.ReservationTime != "" {
		reservationTime = &log.ReservationTime
	}
	var quote *string
	if log.QuoteAmount != nil {
		s := log.QuoteAmount.String()
		quote = &s
	}

	query, args, err := psql.
		Insert("contact_logs").
		Columns(
			"vendor_id", "contact_date", "note", "next_follow_up", "is_reservation",
			"reservation_time", "quote_amount", "location",
		).
		Values(
			log.VendorID,
			log.ContactDate.Time(),
			log.Note,
			dateParam(log.NextFollowUp),
			log.IsReservation,
			sq.Expr("?::text::time", reservationTime),
			sq.Expr("?::text::numeric", quote),
			log.Location,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for contact log: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&log.ID, &log.CreatedAt); err != nil {
		return fmt.Errorf("create contact log: %w", err)
	}
	return nil
}
