package notify

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idr = message.NewPrinter(language.Indonesian)

// FormatRupiah renders whole-rupiah amounts with id-ID grouping: Rp 238.000.
func FormatRupiah(n int64) string {
	return idr.Sprintf("Rp %v", number.Decimal(n))
}
