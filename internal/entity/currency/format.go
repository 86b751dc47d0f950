package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders amount with the currency symbol and English digit grouping.
func Format(amount float64, code string) string {
	symbol := code + " "
	if c, ok := table[code]; ok {
		symbol = c.symbol
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	if Decimals(code) == 0 {
		return sign + symbol + printer.Sprintf("%.0f", amount)
	}
	return sign + symbol + printer.Sprintf("%.2f", amount)
}
