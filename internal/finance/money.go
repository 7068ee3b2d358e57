package finance

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// RoundHalfUp rounds to the nearest whole number; halves go towards
// positive infinity, so 83.5 -> 84 and -0.5 -> 0.
func RoundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// CurrencySymbol resolves a preference currency to the symbol shown in
// messages. ISO codes are looked up in CLDR; any other value is assumed to
// already be a symbol and is returned unchanged.
func CurrencySymbol(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}
	return printer.Sprint(currency.NarrowSymbol(unit))
}

// FormatMoney renders an amount with the symbol of the given currency. The
// amount is not converted.
func FormatMoney(amount float64, code string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + CurrencySymbol(code) + printer.Sprintf("%.2f", amount)
}

// FormatWhole renders a rounded amount without decimals.
func FormatWhole(amount int64, code string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + CurrencySymbol(code) + printer.Sprintf("%d", amount)
}
