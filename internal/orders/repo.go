package orders

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("order not found")

// DB matches the methods of *pgxpool.Pool that the repo uses,
// so tests can swap in a mock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type Repo struct{ DB DB }

// Append writes the order and its item snapshot in one tx.
func (r *Repo) Append(ctx context.Context, o *Order) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders(id, username, email, method, total_rupiah, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, o.ID, o.Username, o.Email, string(o.Method), o.TotalRupiah, o.Status, o.CreatedAt)
	if err != nil {
		return err
	}

	for _, it := range o.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items(order_id, product_id, title, price_rupiah, qty)
			VALUES ($1, $2, $3, $4, $5)`,
			o.ID, it.ProductID, it.Title, it.PriceRupiah, it.Qty,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListByUser returns the user's orders, newest first, items included.
func (r *Repo) ListByUser(ctx context.Context, username string) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, username, email, method, total_rupiah, status, created_at
		FROM orders WHERE username=$1 ORDER BY created_at DESC`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		var method string
		if err := rows.Scan(&o.ID, &o.Username, &o.Email, &method, &o.TotalRupiah, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Method = Method(method)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.listItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, orderID string) (Order, error) {
	var o Order
	var method string
	err := r.DB.QueryRow(ctx, `
		SELECT id, username, email, method, total_rupiah, status, created_at
		FROM orders WHERE id=$1`, orderID).
		Scan(&o.ID, &o.Username, &o.Email, &method, &o.TotalRupiah, &o.Status, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	o.Method = Method(method)
	o.Items, err = r.listItems(ctx, o.ID)
	return o, err
}

func (r *Repo) listItems(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT product_id, title, price_rupiah, qty
		FROM order_items WHERE order_id=$1 ORDER BY product_id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Title, &it.PriceRupiah, &it.Qty); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
