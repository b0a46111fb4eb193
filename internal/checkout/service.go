package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/shooid/shoo-shop/internal/cart"
	kafkax "github.com/shooid/shoo-shop/internal/kafka"
	"github.com/shooid/shoo-shop/internal/notify"
	"github.com/shooid/shoo-shop/internal/orders"
	"github.com/shooid/shoo-shop/internal/redisx"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNotAwaitingPayment = errors.New("no payment in progress")
)

type OrderLog interface {
	Append(ctx context.Context, o *orders.Order) error
}

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type Service struct {
	Carts    *cart.Store
	Orders   OrderLog
	Producer Publisher
	Redis    *redis.Client

	ServiceName   string
	DanaNumber    string
	GopayNumber   string
	AdminWhatsApp string
}

// PaymentInfo is what the payment dialog shows: the manual transfer
// destinations and the amount due.
type PaymentInfo struct {
	DanaNumber  string `json:"dana_number"`
	GopayNumber string `json:"gopay_number"`
	TotalRupiah int64  `json:"total_rupiah"`
}

// Result carries the appended order plus the ready-to-open WhatsApp
// notification for the admin.
type Result struct {
	Order        orders.Order `json:"order"`
	Message      string       `json:"message"`
	WhatsAppLink string       `json:"whatsapp_link"`
}

// Open starts the payment flow. The cart must be non-empty. Reopening while
// already awaiting payment keeps the state.
func (s *Service) Open(ctx context.Context, username string) (PaymentInfo, error) {
	c, err := s.Carts.Load(ctx, username)
	if err != nil {
		return PaymentInfo{}, err
	}
	if c.Empty() {
		return PaymentInfo{}, ErrEmptyCart
	}
	if from := s.state(ctx, username); CanTransition(from, StateAwaitingPayment) {
		if err := s.setState(ctx, username, StateAwaitingPayment); err != nil {
			return PaymentInfo{}, err
		}
	}
	return PaymentInfo{
		DanaNumber:  s.DanaNumber,
		GopayNumber: s.GopayNumber,
		TotalRupiah: c.Total(),
	}, nil
}

// Confirm snapshots the cart into an order, clears the cart, publishes the
// OrderCreated event and returns to idle. Confirming twice needs two full
// Open+Confirm cycles and intentionally yields two orders.
func (s *Service) Confirm(ctx context.Context, user, email, methodStr, traceID string) (*Result, error) {
	if s.state(ctx, user) != StateAwaitingPayment {
		return nil, ErrNotAwaitingPayment
	}
	method, err := orders.ParseMethod(methodStr)
	if err != nil {
		return nil, err
	}

	c, err := s.Carts.Load(ctx, user)
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, ErrEmptyCart
	}

	o := &orders.Order{
		ID:          uuid.NewString(),
		Username:    user,
		Email:       email,
		Method:      method,
		TotalRupiah: c.Total(),
		Status:      orders.StatusAwaitingConfirmation,
		CreatedAt:   time.Now().UTC(),
		Items:       snapshot(c),
	}
	if err := s.Orders.Append(ctx, o); err != nil {
		return nil, err
	}
	if err := s.Carts.Clear(ctx, user); err != nil {
		return nil, err
	}

	s.publishCreated(o, traceID)

	if err := s.setState(ctx, user, StateIdle); err != nil {
		return nil, err
	}

	msg := notify.BuildMessage(*o)
	return &Result{
		Order:        *o,
		Message:      msg,
		WhatsAppLink: notify.WhatsAppLink(s.AdminWhatsApp, msg),
	}, nil
}

// Cancel abandons the flow with no side effects.
func (s *Service) Cancel(ctx context.Context, username string) error {
	if from := s.state(ctx, username); !CanTransition(from, StateIdle) {
		return ErrNotAwaitingPayment
	}
	return s.setState(ctx, username, StateIdle)
}

func snapshot(c *cart.Cart) []orders.Item {
	items := make([]orders.Item, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, orders.Item{
			ProductID:   l.ProductID,
			Title:       l.Title,
			PriceRupiah: l.PriceRupiah,
			Qty:         l.Qty,
		})
	}
	return items
}

func (s *Service) publishCreated(o *orders.Order, traceID string) {
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		TraceID:       traceID,
		CorrelationID: o.ID,
		Payload: kafkax.MustMarshal(orders.OrderCreatedPayload{
			OrderID:     o.ID,
			Username:    o.Username,
			Email:       o.Email,
			Method:      o.Method,
			TotalRupiah: o.TotalRupiah,
			Items:       o.Items,
		}),
	}
	s.Producer.Publish(orders.PartitionKey(o.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (s *Service) state(ctx context.Context, username string) State {
	raw, err := s.Redis.Get(ctx, fmt.Sprintf(redisx.KeyCheckout, username)).Result()
	if err != nil || raw == "" {
		return StateIdle
	}
	return State(raw)
}

func (s *Service) setState(ctx context.Context, username string, st State) error {
	return s.Redis.Set(ctx, fmt.Sprintf(redisx.KeyCheckout, username), string(st), redisx.TTLCheckout).Err()
}
