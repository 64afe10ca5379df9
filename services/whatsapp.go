package services

import (
	"fmt"
	"net/url"
	"strings"

	"cafe-order/cart"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount with id-ID thousands grouping, e.g.
// 15000 -> "15.000".
func FormatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("%d", amount)
}

// NormalizePhone strips everything but digits and rewrites a local trunk
// "0" prefix to the country calling code ("081..." -> "6281...").
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		return countryCode + digits[1:]
	}
	return digits
}

// BuildOrderMessage renders the delivery summary the admin receives on
// WhatsApp. The layout is fixed; only names, address and amounts vary.
func BuildOrderMessage(customerName, address string, lines []cart.Line, total int64) string {
	var b strings.Builder
	b.WriteString("🛒 *PESANAN BARU (DELIVERY)*\n\n")
	fmt.Fprintf(&b, "👤 *Nama:* %s\n", customerName)
	fmt.Fprintf(&b, "🏠 *Alamat:* %s\n", address)
	b.WriteString("\n📋 *Detail Pesanan:*\n")
	b.WriteString("─────────────────\n")
	for i, l := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, l.Item.Name)
		fmt.Fprintf(&b, "   %dx @ Rp %s\n", l.Qty, FormatRupiah(l.Item.Price))
		fmt.Fprintf(&b, "   = Rp %s\n", FormatRupiah(l.Subtotal()))
	}
	b.WriteString("─────────────────\n")
	fmt.Fprintf(&b, "💰 *TOTAL: Rp %s*\n", FormatRupiah(total))
	b.WriteString("\nTerima kasih! 🙏")
	return b.String()
}

// BuildWhatsAppURL builds the deep link the customer's browser opens, with
// the message percent-encoded into the text query parameter.
func BuildWhatsAppURL(host, phone, msg string) string {
	q := url.Values{"text": {msg}}
	return fmt.Sprintf("https://%s/%s?%s", host, phone, q.Encode())
}
