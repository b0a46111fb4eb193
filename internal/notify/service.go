package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/shooid/shoo-shop/internal/kafka"
	"github.com/shooid/shoo-shop/internal/orders"
	"github.com/shooid/shoo-shop/internal/redisx"
)

// Notifier consumes shop.order.created and emits the admin WhatsApp
// notification. Delivery here means logging the deep link; the shop never
// waits on it.
type Notifier struct {
	Redis         *redis.Client
	AdminWhatsApp string
	ServiceName   string
}

// HandleOrderCreated is wired as the consumer handler.
func (n *Notifier) HandleOrderCreated(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventOrderCreated {
		return nil
	}

	// dedup on event_id so a redelivered event does not notify twice
	dkey := fmt.Sprintf(redisx.KeyDedup, "notifier", env.EventID)
	exists, _ := redisx.Exists(ctx, n.Redis, dkey)
	if exists {
		return nil
	}
	_ = n.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[orders.OrderCreatedPayload](env.Payload)
	if err != nil {
		return err
	}

	o := orders.Order{
		ID:          p.OrderID,
		Username:    p.Username,
		Email:       p.Email,
		Method:      p.Method,
		TotalRupiah: p.TotalRupiah,
		Items:       p.Items,
	}
	link := WhatsAppLink(n.AdminWhatsApp, BuildMessage(o))
	log.Printf("order %s: payment notification ready: %s", p.OrderID, link)
	return nil
}
