package repo

import (
	"context"

	"github.com/example/storefront-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresContactRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresContactRepo(pool *pgxpool.Pool) *PostgresContactRepo {
	return &PostgresContactRepo{Pool: pool}
}

func (r *PostgresContactRepo) Save(ctx context.Context, name, email, message string) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO contact_messages(name, email, message) VALUES($1, $2, $3)`,
		name, email, message)
	return err
}

var _ domain.ContactRepository = (*PostgresContactRepo)(nil)
