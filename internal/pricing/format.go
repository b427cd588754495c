// Package pricing renders catalog prices for display.
package pricing

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tbourn/go-marketplace/internal/domain"
)

// Free is shown for items that cost nothing.
const Free = "Free"

// symbols maps common ISO 4217 codes to the glyph shown before the amount.
// Valid codes without an entry fall back to "<CODE> ".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"RUB": "₽",
	"TRY": "₺",
	"BRL": "R$",
	"CAD": "CA$",
	"AUD": "A$",
	"CHF": "CHF ",
}

var printer = message.NewPrinter(language.English)

// Format returns the display string for a price: "Free" for unpaid or
// zero-priced items, otherwise the currency symbol followed by the amount
// with two decimals and thousands grouping ("$1,234.50"). An empty currency
// means domain.DefaultCurrency. An unrecognized code yields the bare amount.
func Format(price float64, code string, isPaid bool) string {
	if !isPaid || price == 0 {
		return Free
	}
	amount := printer.Sprint(number.Decimal(price, number.Scale(2)))

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = domain.DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return amount
	}
	if sym, ok := symbols[unit.String()]; ok {
		return sym + amount
	}
	return unit.String() + " " + amount
}

// Book formats b's price.
func Book(b domain.Book) string { return Format(b.EffectivePrice(), b.Currency, b.IsPaid) }

// Course formats c's price.
func Course(c domain.Course) string { return Format(c.EffectivePrice(), c.Currency, c.IsPaid) }

// ValidCurrency reports whether code is empty or a recognized ISO 4217 code.
func ValidCurrency(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return true
	}
	_, err := currency.ParseISO(code)
	return err == nil
}
