package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shooid/shoo-shop/internal/accounts"
	"github.com/shooid/shoo-shop/internal/redisx"
)

// Record is what a valid token resolves to. It mirrors the account's public
// fields; the account row stays the source of truth.
type Record struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

var ErrNotFound = errors.New("session not found")

type Store struct {
	RDB *redis.Client
}

// Create issues a fresh token for the account.
func (s *Store) Create(ctx context.Context, a accounts.Account) (string, error) {
	token := uuid.NewString()
	rec := Record{Email: a.Email, Username: a.Username, Avatar: a.Avatar}
	if err := s.save(ctx, token, rec); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (Record, error) {
	raw, err := s.RDB.Get(ctx, fmt.Sprintf(redisx.KeySession, token)).Result()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		// corrupt entry, treat as logged out
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Refresh rewrites the record under an existing token, e.g. after a profile save.
func (s *Store) Refresh(ctx context.Context, token string, a accounts.Account) (Record, error) {
	rec := Record{Email: a.Email, Username: a.Username, Avatar: a.Avatar}
	return rec, s.save(ctx, token, rec)
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.RDB.Del(ctx, fmt.Sprintf(redisx.KeySession, token)).Err()
}

func (s *Store) save(ctx context.Context, token string, rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.RDB.Set(ctx, fmt.Sprintf(redisx.KeySession, token), b, redisx.TTLSession).Err()
}
