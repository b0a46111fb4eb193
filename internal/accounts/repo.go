package accounts

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// DB matches the methods of *pgxpool.Pool that the repo uses,
// so tests can swap in a mock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Repo struct{ DB DB }

const accountCols = `id, email, username, password_hash, avatar, created_at, updated_at`

func scanAccount(row pgx.Row) (Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Email, &a.Username, &a.PasswordHash, &a.Avatar, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Register creates an account with an empty avatar. Email and username must be
// unique; the app-level checks give precise errors, the unique indexes are the
// backstop.
func (r *Repo) Register(ctx context.Context, email, username, password string) (Account, error) {
	var one int
	err := r.DB.QueryRow(ctx, `SELECT 1 FROM accounts WHERE email=$1`, email).Scan(&one)
	if err == nil {
		return Account{}, ErrDuplicateEmail
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return Account{}, err
	}
	err = r.DB.QueryRow(ctx, `SELECT 1 FROM accounts WHERE username=$1`, username).Scan(&one)
	if err == nil {
		return Account{}, ErrDuplicateUsername
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	a, err := scanAccount(r.DB.QueryRow(ctx, `
		INSERT INTO accounts(id, email, username, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING `+accountCols,
		uuid.NewString(), email, username, string(hash)))
	if err != nil {
		return Account{}, mapUniqueViolation(err)
	}
	return a, nil
}

// Authenticate matches identifier against email or username. Unknown identifier
// and wrong password return the same error.
func (r *Repo) Authenticate(ctx context.Context, identifier, password string) (Account, error) {
	a, err := scanAccount(r.DB.QueryRow(ctx,
		`SELECT `+accountCols+` FROM accounts WHERE email=$1 OR username=$1`, identifier))
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return Account{}, ErrInvalidCredentials
	}
	return a, nil
}

// UpdateProfile applies patch to the account owned by username.
func (r *Repo) UpdateProfile(ctx context.Context, username string, patch ProfilePatch) (Account, error) {
	a, err := scanAccount(r.DB.QueryRow(ctx, `
		UPDATE accounts
		SET email = COALESCE($2, email), avatar = COALESCE($3, avatar), updated_at = now()
		WHERE username=$1
		RETURNING `+accountCols,
		username, patch.Email, patch.Avatar))
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, mapUniqueViolation(err)
	}
	return a, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return ErrDuplicateEmail
		}
		return ErrDuplicateUsername
	}
	return err
}
