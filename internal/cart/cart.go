package cart

import "github.com/shooid/shoo-shop/internal/catalog"

// Line is a product snapshot plus the selected quantity. Qty is always >= 1;
// a line that would reach zero is removed instead.
type Line struct {
	ProductID   int64  `json:"product_id"`
	Title       string `json:"title"`
	PriceRupiah int64  `json:"price_rupiah"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Qty         int    `json:"qty"`
}

// Cart keeps lines in insertion order.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add inserts a qty=1 line for the product, or bumps the existing line.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Qty++
			return
		}
	}
	c.Lines = append(c.Lines, Line{
		ProductID:   p.ID,
		Title:       p.Title,
		PriceRupiah: p.PriceRupiah,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Qty:         1,
	})
}

// SetQty replaces the line's quantity, floored at 1. Returns false when the
// product is not in the cart.
func (c *Cart) SetQty(productID int64, qty int) bool {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Qty = qty
			return true
		}
	}
	return false
}

// Remove deletes the line if present.
func (c *Cart) Remove(productID int64) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() { c.Lines = nil }

// Total is the sum of price x qty over all lines, in rupiah.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.PriceRupiah * int64(l.Qty)
	}
	return total
}

// Count is the badge number: total selected units.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }
