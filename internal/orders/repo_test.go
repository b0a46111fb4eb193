package orders

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("DANA")
	require.NoError(t, err)
	assert.Equal(t, MethodDana, m)

	m, err = ParseMethod("GOPAY")
	require.NoError(t, err)
	assert.Equal(t, MethodGopay, m)

	_, err = ParseMethod("OVO")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestAppend(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := &Repo{DB: mock}

	o := &Order{
		ID:          "ord-1",
		Username:    "alice",
		Email:       "a@x.com",
		Method:      MethodDana,
		TotalRupiah: 238000,
		Status:      StatusAwaitingConfirmation,
		CreatedAt:   time.Now().UTC(),
		Items: []Item{
			{ProductID: 1, Title: "Kaos Retro", PriceRupiah: 119000, Qty: 2},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(o.ID, o.Username, o.Email, "DANA", o.TotalRupiah, o.Status, o.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(o.ID, int64(1), "Kaos Retro", int64(119000), 2).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback() // deferred rollback after commit is a no-op

	require.NoError(t, repo.Append(context.Background(), o))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := &Repo{DB: mock}

	created := time.Now().UTC()
	mock.ExpectQuery(`FROM orders WHERE username=`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "username", "email", "method", "total_rupiah", "status", "created_at"}).
			AddRow("ord-1", "alice", "a@x.com", "DANA", int64(238000), StatusAwaitingConfirmation, created))
	mock.ExpectQuery(`FROM order_items WHERE order_id=`).
		WithArgs("ord-1").
		WillReturnRows(pgxmock.NewRows([]string{"product_id", "title", "price_rupiah", "qty"}).
			AddRow(int64(1), "Kaos Retro", int64(119000), 2))

	got, err := repo.ListByUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, MethodDana, got[0].Method)
	assert.Equal(t, int64(238000), got[0].TotalRupiah)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, 2, got[0].Items[0].Qty)
}

func TestGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := &Repo{DB: mock}

	created := time.Now().UTC()
	mock.ExpectQuery(`FROM orders WHERE id=`).
		WithArgs("ord-1").
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "username", "email", "method", "total_rupiah", "status", "created_at"}).
			AddRow("ord-1", "alice", "a@x.com", "GOPAY", int64(119000), StatusAwaitingConfirmation, created))
	mock.ExpectQuery(`FROM order_items WHERE order_id=`).
		WithArgs("ord-1").
		WillReturnRows(pgxmock.NewRows([]string{"product_id", "title", "price_rupiah", "qty"}).
			AddRow(int64(1), "Kaos Retro", int64(119000), 1))

	got, err := repo.Get(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, MethodGopay, got.Method)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Kaos Retro", got.Items[0].Title)
}

func TestGetNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := &Repo{DB: mock}

	mock.ExpectQuery(`FROM orders WHERE id=`).
		WithArgs("nope").WillReturnError(pgx.ErrNoRows)

	_, err = repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
