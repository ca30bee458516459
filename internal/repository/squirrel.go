package repository

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/partnerlink/partnerlink/internal/domain"
)

// psql is the shared Squirrel statement builder configured for PostgreSQL dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// dateBetween matches rows whose DATE expression lies in [from, to], both inclusive.
func dateBetween(expr string, from, to domain.Date) sq.Sqlizer {
	return sq.Expr(expr+" BETWEEN ? AND ?", from.Time(), to.Time())
}

// datePtr converts a nullable DATE column scanned as *time.Time.
func datePtr(t *time.Time) *domain.Date {
	if t == nil {
		return nil
	}
	d := domain.DateOf(t.UTC())
	return &d
}

// dateParam converts an optional date into a DATE query parameter.
func dateParam(d *domain.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time()
	return &t
}
