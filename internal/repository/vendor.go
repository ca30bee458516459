package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/partnerlink/internal/domain"
)

var vendorColumns = []string{"id", "name", "avatar_url", "address", "category", "is_active", "created_at"}

// VendorRepository reads the vendor directory.
type VendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository creates a new VendorRepository.
func NewVendorRepository(pool *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{pool: pool}
}

func scanVendor(row pgx.Row) (*domain.Vendor, error) {
	var v domain.Vendor
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.AvatarURL,
		&v.Address,
		&v.Category,
		&v.IsActive,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan vendor: %w", err)
	}
	return &v, nil
}

// Lookup returns the vendors with the given ids keyed by id.
// Unknown ids are simply absent from the result.
func (r *VendorRepository) Lookup(ctx context.Context, vendorIDs []string) (map[string]domain.Vendor, error) {
	lookup := make(map[string]domain.Vendor, len(vendorIDs))
	if len(vendorIDs) == 0 {
		return lookup, nil
	}

	query, args, err := psql.
		Select(vendorColumns...).
		From("vendors").
		Where(sq.Eq{"id": vendorIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Lookup query for vendors: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vendors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		lookup[v.ID] = *v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return lookup, nil
}

// Upsert inserts or replaces a vendor within a transaction.
func (r *VendorRepository) Upsert(ctx context.Context, tx pgx.Tx, v *domain.Vendor) error {
	query, args, err := psql.
		Insert("vendors").
		Columns("id", "name", "avatar_url", "address", "category", "is_active").
		Values(v.ID, v.Name, v.AvatarURL, v.Address, v.Category, v.IsActive).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			address = EXCLUDED.address,
			category = EXCLUDED.category,
			is_active = EXCLUDED.is_active`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Upsert query for vendor %s: %w", v.ID, err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert vendor %s: %w", v.ID, err)
	}
	return nil
}
