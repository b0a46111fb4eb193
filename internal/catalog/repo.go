package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("product not found")

// DB matches the methods of *pgxpool.Pool that the repo uses,
// so tests can swap in a mock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Repo struct{ DB DB }

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, title, price_rupiah, category, image_url, created_at
                                FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.PriceRupiah, &p.Category, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := r.DB.QueryRow(ctx, `SELECT id, title, price_rupiah, category, image_url, created_at
                             FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Title, &p.PriceRupiah, &p.Category, &p.ImageURL, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return p, err
}

// Seed inserts the sample catalog. Existing rows are kept as-is.
func (r *Repo) Seed(ctx context.Context) error {
	for _, p := range SampleProducts {
		_, err := r.DB.Exec(ctx, `
			INSERT INTO products(id, title, price_rupiah, category, image_url)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`, p.ID, p.Title, p.PriceRupiah, p.Category, p.ImageURL)
		if err != nil {
			return err
		}
	}
	return nil
}
