package catalog

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	PriceRupiah int64     `json:"price_rupiah"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryAll is the sentinel selector that matches every category.
const CategoryAll = "Semua"
