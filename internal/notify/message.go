package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shooid/shoo-shop/internal/orders"
)

// BuildMessage renders the admin payment notification for an order.
// The template is fixed; one bullet per cart line.
func BuildMessage(o orders.Order) string {
	lines := []string{
		"Halo admin, saya sudah melakukan pembayaran.",
		"",
		"Nama: " + o.Username,
		"Email: " + o.Email,
		"Total: " + FormatRupiah(o.TotalRupiah),
		"Metode Pembayaran: " + string(o.Method),
		"",
		"Produk:",
	}
	for _, it := range o.Items {
		lines = append(lines, fmt.Sprintf("• %s × %d", it.Title, it.Qty))
	}
	lines = append(lines, "", "Mohon segera dicek ya. Terima kasih 🙏")
	return strings.Join(lines, "\n")
}

// WhatsAppLink builds the wa.me deep link carrying the message. Opening it is
// one-way; there is no delivery confirmation.
func WhatsAppLink(phone, msg string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(msg)
}
