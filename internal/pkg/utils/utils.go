package utils

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatPrice formats amount with the symbol of an ISO 4217 currency code
// using the market locale, e.g. 450 USD en-US -> "$ 450.00".
// Unknown currencies or markets fall back to "<CODE> <amount>".
func FormatPrice(amount float64, currencyCode, market string) string {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return fmt.Sprintf("%s %.2f", currencyCode, amount)
	}

	tag, err := language.Parse(market)
	if err != nil {
		tag = language.AmericanEnglish
	}

	return message.NewPrinter(tag).Sprint(currency.Symbol(unit.Amount(amount)))
}
