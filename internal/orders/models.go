package orders

import "time"

// StatusAwaitingConfirmation is the only status an order ever has here:
// payment is confirmed manually by the admin outside this system.
const StatusAwaitingConfirmation = "Menunggu Konfirmasi"

// Order is an append-only record of a checkout attempt. Items are a snapshot
// of the cart at confirmation time; nothing is mutated afterwards.
type Order struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Method      Method    `json:"method"`
	TotalRupiah int64     `json:"total_rupiah"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Items       []Item    `json:"items"`
}

type Item struct {
	ProductID   int64  `json:"product_id"`
	Title       string `json:"title"`
	PriceRupiah int64  `json:"price_rupiah"`
	Qty         int    `json:"qty"`
}
