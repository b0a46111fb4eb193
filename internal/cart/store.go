package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shooid/shoo-shop/internal/redisx"
)

// Store persists one cart per username as a JSON blob. The cart survives
// logout; it is only emptied by the user or by checkout.
type Store struct {
	RDB *redis.Client
}

func (s *Store) Load(ctx context.Context, username string) (*Cart, error) {
	raw, err := s.RDB.Get(ctx, fmt.Sprintf(redisx.KeyCart, username)).Result()
	if errors.Is(err, redis.Nil) {
		return &Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		// corrupt blob, start over with an empty cart
		return &Cart{}, nil
	}
	return &c, nil
}

func (s *Store) Save(ctx context.Context, username string, c *Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.RDB.Set(ctx, fmt.Sprintf(redisx.KeyCart, username), b, 0).Err()
}

func (s *Store) Clear(ctx context.Context, username string) error {
	return s.RDB.Del(ctx, fmt.Sprintf(redisx.KeyCart, username)).Err()
}
