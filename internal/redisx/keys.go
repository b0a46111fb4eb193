package redisx

import "time"

const (
	// Session token: session:{token} -> {"email":..., "username":..., "avatar":...}
	KeySession = "session:%s"

	// Cart per user: cart:{username} -> JSON cart lines
	KeyCart = "cart:%s"

	// Checkout state per user: checkout:{username} -> "idle" | "awaiting_payment"
	KeyCheckout = "checkout:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLSession  = 7 * 24 * time.Hour
	TTLCheckout = 30 * time.Minute
	TTLDedup    = 48 * time.Hour
)
