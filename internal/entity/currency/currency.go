// Package currency holds the supported currency codes and a static
// exchange-rate table.
//
// The rates are fixed approximations expressed in MKD per unit of the
// currency. They are not market data and are never refreshed at runtime.
package currency

import (
	"sort"

	"github.com/pkg/errors"
)

const (
	MKD = "MKD"
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	JPY = "JPY"
	CNY = "CNY"
	INR = "INR"
	AUD = "AUD"
	CAD = "CAD"
	CHF = "CHF"
	RUB = "RUB"
	BRL = "BRL"
)

// Base is the currency every rate is expressed against.
const Base = MKD

var ErrUnknownCurrency = errors.New("unknown currency")

type info struct {
	name     string
	symbol   string
	rate     float64
	decimals int
}

var table = map[string]info{
	MKD: {name: "Macedonian Denar", symbol: "MKD ", rate: 1, decimals: 2},
	USD: {name: "US Dollar", symbol: "$", rate: 55.50, decimals: 2},
	EUR: {name: "Euro", symbol: "€", rate: 61.50, decimals: 2},
	GBP: {name: "British Pound", symbol: "£", rate: 71.20, decimals: 2},
	JPY: {name: "Japanese Yen", symbol: "¥", rate: 0.39, decimals: 0},
	CNY: {name: "Chinese Yuan", symbol: "CN¥", rate: 7.80, decimals: 2},
	INR: {name: "Indian Rupee", symbol: "₹", rate: 0.67, decimals: 2},
	AUD: {name: "Australian Dollar", symbol: "A$", rate: 37.20, decimals: 2},
	CAD: {name: "Canadian Dollar", symbol: "CA$", rate: 41.30, decimals: 2},
	CHF: {name: "Swiss Franc", symbol: "CHF ", rate: 64.80, decimals: 2},
	RUB: {name: "Russian Ruble", symbol: "RUB ", rate: 0.62, decimals: 2},
	BRL: {name: "Brazilian Real", symbol: "R$", rate: 11.40, decimals: 2},
}

// Codes lists the supported currencies ordered by display name.
var Codes = sortedCodes()

func sortedCodes() []string {
	res := make([]string, 0, len(table))
	for code := range table {
		res = append(res, code)
	}
	sort.Slice(res, func(i, j int) bool {
		return table[res[i]].name < table[res[j]].name
	})
	return res
}

func Valid(code string) bool {
	_, ok := table[code]
	return ok
}

func Name(code string) string {
	return table[code].name
}

// Rate returns how many units of Base one unit of code is worth.
func Rate(code string) (float64, error) {
	c, ok := table[code]
	if !ok {
		return 0, errors.Wrap(ErrUnknownCurrency, code)
	}
	return c.rate, nil
}

// Decimals is the number of fractional digits shown for code.
func Decimals(code string) int {
	c, ok := table[code]
	if !ok {
		return 2
	}
	return c.decimals
}

// Convert converts amount between two supported currencies through Base.
// Equal codes return amount untouched. Unknown codes convert as if their
// rate were 1; use ConvertChecked when the codes come from user input.
func Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}

	inBase := amount
	if from != Base {
		inBase = amount * rateOrOne(from)
	}
	if to == Base {
		return inBase
	}
	return inBase / rateOrOne(to)
}

func ConvertChecked(amount float64, from, to string) (float64, error) {
	if !Valid(from) {
		return 0, errors.Wrap(ErrUnknownCurrency, from)
	}
	if !Valid(to) {
		return 0, errors.Wrap(ErrUnknownCurrency, to)
	}
	return Convert(amount, from, to), nil
}

func rateOrOne(code string) float64 {
	if c, ok := table[code]; ok {
		return c.rate
	}
	return 1
}
