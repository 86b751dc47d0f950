package messages

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	commandParts = 2
	addArgs      = 5
	todayMarker  = "-"
	allPeriods   = "all"
)

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts && strings.HasPrefix(split[0], "/") {
		return stripBotName(split[0]), strings.TrimSpace(split[1])
	}
	if strings.HasPrefix(text, "/") {
		return stripBotName(text), ""
	}
	return "", text
}

// stripBotName turns "/add@my_bot" into "/add".
func stripBotName(cmd string) string {
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		return cmd[:i]
	}
	return cmd
}

// parseExpense reads "<amount> <currency> <category> <date|-> <description...>".
// On bad input it returns the reply to send instead.
func parseExpense(arg string, now time.Time) (expense.Record, string) {
	args := strings.Fields(arg)
	if len(args) < addArgs {
		return expense.Record{}, incorrectUsageMessage
	}

	code := strings.ToUpper(args[1])
	if !currency.Valid(code) {
		return expense.Record{}, fmt.Sprintf(unknownCurrencyMessage, args[1])
	}
	amount, ok := parseAmount(args[0], code)
	if !ok {
		return expense.Record{}, incorrectAmountMessage
	}
	category, ok := expense.LookupCategory(args[2])
	if !ok {
		return expense.Record{}, fmt.Sprintf(unknownCategoryMessage, args[2])
	}
	date, ok := parseDate(args[3], now)
	if !ok {
		return expense.Record{}, incorrectDateMessage
	}

	return expense.Record{
		Description: strings.Join(args[4:], " "),
		Amount:      amount,
		Currency:    code,
		Category:    category,
		Date:        date,
	}, ""
}

// parseAmount accepts "12.5" or "12,5" and rounds to the currency's minor
// unit.
var maxAmount = decimal.NewFromFloat(expense.MaxAmount)

func parseAmount(raw, code string) (float64, bool) {
	d, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil || d.IsNegative() {
		return 0, false
	}
	d = d.Round(int32(currency.Decimals(code)))
	if d.GreaterThanOrEqual(maxAmount) {
		return 0, false
	}
	return d.InexactFloat64(), true
}

func parseDate(raw string, now time.Time) (civil.Date, bool) {
	if raw == todayMarker {
		return civil.DateOf(now), true
	}
	date, err := civil.ParseDate(raw)
	if err != nil || !date.IsValid() {
		return civil.Date{}, false
	}
	return date, true
}

// parseStatsArgs accepts a currency code and a period in any order.
func parseStatsArgs(arg, display string) (code, period, reply string) {
	code = display
	periods := reports.ReportPeriods()
	for _, field := range strings.Fields(arg) {
		lower := strings.ToLower(field)
		switch {
		case lower == allPeriods:
			period = ""
		case contains(periods, lower):
			period = lower
		case currency.Valid(strings.ToUpper(field)):
			code = strings.ToUpper(field)
		default:
			return "", "", incorrectUsageMessage
		}
	}
	return code, period, ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func formatRecord(rec expense.Record) string {
	return fmt.Sprintf("%s  %s  %s  [%s]\n    id: %s",
		rec.Date, rec.Description, currency.Format(rec.Amount, rec.Currency), rec.Category, rec.ID)
}

func formatList(records []expense.Record, limit int) string {
	shown := records
	if len(shown) > limit {
		shown = shown[:limit]
	}
	lines := make([]string, 0, len(shown)+1)
	for _, rec := range shown {
		lines = append(lines, formatRecord(rec))
	}
	if rest := len(records) - len(shown); rest > 0 {
		lines = append(lines, fmt.Sprintf("...and %d more", rest))
	}
	return strings.Join(lines, "\n")
}

func formatProfile(ident user.Identity) string {
	lines := []string{"Signed in as " + ident.Label()}
	if ident.DisplayName != "" && ident.Email != "" {
		lines = append(lines, "Email: "+ident.Email)
	}
	if ident.PhotoURL != "" {
		lines = append(lines, "Photo: "+ident.PhotoURL)
	}
	return strings.Join(lines, "\n")
}

func formatCurrencies() string {
	lines := make([]string, 0, len(currency.Codes))
	for _, code := range currency.Codes {
		lines = append(lines, fmt.Sprintf("%s  %s", code, currency.Name(code)))
	}
	return strings.Join(lines, "\n")
}
