package repo

import (
	"context"
	"errors"

	"github.com/example/storefront-service/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// foreign_key_violation
const fkViolation = "23503"

type PostgresCartRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresCartRepo(pool *pgxpool.Pool) *PostgresCartRepo {
	return &PostgresCartRepo{Pool: pool}
}

func (r *PostgresCartRepo) Lines(ctx context.Context, userID int64) ([]domain.CartEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT i.title, i.image, c.quantity
        FROM cart_lines c JOIN items i ON c.item_id = i.id
        WHERE c.user_id = $1 ORDER BY c.item_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []domain.CartEntry
	for rows.Next() {
		var e domain.CartEntry
		if err := rows.Scan(&e.Title, &e.Image, &e.Quantity); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Merge — атомарный upsert: пара (user, item) всегда представлена не более чем одной строкой,
// количество суммируется одним оператором. xmax = 0 отличает вставку от обновления.
func (r *PostgresCartRepo) Merge(ctx context.Context, userID, itemID int64, delta int) (bool, error) {
	var qty int
	var created bool
	err := r.Pool.QueryRow(ctx, `INSERT INTO cart_lines(user_id, item_id, quantity) VALUES($1, $2, $3)
        ON CONFLICT (user_id, item_id) DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
        RETURNING quantity, (xmax = 0)`, userID, itemID, delta).Scan(&qty, &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			// товара нет в каталоге — целостность обеспечивает внешний ключ
			return false, domain.ErrNotFound
		}
		return false, err
	}
	if qty <= 0 {
		// строка с неположительным количеством не хранится
		return created, r.Remove(ctx, userID, itemID)
	}
	return created, nil
}

func (r *PostgresCartRepo) Remove(ctx context.Context, userID, itemID int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM cart_lines WHERE user_id = $1 AND item_id = $2`, userID, itemID)
	return err
}

var _ domain.CartRepository = (*PostgresCartRepo)(nil)
