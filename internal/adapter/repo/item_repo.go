package repo

import (
	"context"

	"github.com/example/storefront-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresItemRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresItemRepo(pool *pgxpool.Pool) *PostgresItemRepo {
	return &PostgresItemRepo{Pool: pool}
}

func (r *PostgresItemRepo) Insert(ctx context.Context, it domain.Item) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `INSERT INTO items(title, description, image, category, price)
        VALUES($1, $2, $3, $4, $5) RETURNING id`,
		it.Title, it.Description, it.Image, it.Category, it.Price).Scan(&id)
	return id, err
}

// Upsert применяет позицию с внешним идентификатором (поток синхронизации каталога).
func (r *PostgresItemRepo) Upsert(ctx context.Context, it domain.Item) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO items(id, title, description, image, category, price)
        VALUES($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description,
          image = EXCLUDED.image, category = EXCLUDED.category, price = EXCLUDED.price`,
		it.ID, it.Title, it.Description, it.Image, it.Category, it.Price)
	return err
}

func (r *PostgresItemRepo) LoadAll(ctx context.Context, fn func(it domain.Item) error) error {
	rows, err := r.Pool.Query(ctx, `SELECT id, title, description, image, category, price FROM items`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.Image, &it.Category, &it.Price); err != nil {
			return err
		}
		if err := fn(it); err != nil {
			return err
		}
	}
	return rows.Err()
}

var _ domain.ItemRepository = (*PostgresItemRepo)(nil)
