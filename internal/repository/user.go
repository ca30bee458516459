package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/partnerlink/internal/domain"
)

// UserRepository handles database operations for back-office users.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) getOne(ctx context.Context, where sq.Eq) (*domain.User, error) {
	query, args, err := psql.
		Select("id", "name", "token", "role", "is_active", "created_at").
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user domain.User
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Token,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &user, nil
}

// GetByToken finds a user by authentication token.
func (r *UserRepository) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"token": token})
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": userID})
}

// Create inserts a user within a transaction.
func (r *UserRepository) Create(ctx context.Context, tx pgx.Tx, user *domain.User) error {
	if user.Role == "" {
		user.Role = "staff"
	}

	query, args, err := psql.
		Insert("users").
		Columns("name", "token", "role", "is_active").
		Values(user.Name, user.Token, user.Role, user.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for user: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
