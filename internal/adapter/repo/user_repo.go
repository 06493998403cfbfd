package repo

import (
	"context"
	"errors"

	"github.com/example/storefront-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresUserRepo(pool *pgxpool.Pool) *PostgresUserRepo {
	return &PostgresUserRepo{Pool: pool}
}

func (r *PostgresUserRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO users(name, email, role) VALUES($1, $2, $3)`,
		u.Name, u.Email, u.Role)
	return err
}

func (r *PostgresUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.Pool.QueryRow(ctx, `SELECT id, name, email, role FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	return u, err
}

func (r *PostgresUserRepo) FindByNameAndEmail(ctx context.Context, name, email string) (domain.User, error) {
	var u domain.User
	err := r.Pool.QueryRow(ctx, `SELECT id, name, email, role FROM users WHERE name = $1 AND email = $2`,
		name, email).Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	return u, err
}

var _ domain.UserRepository = (*PostgresUserRepo)(nil)
