package reports

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const (
	latestLayout = "Jan 2, 2006"

	NoExpensesYet = "No expenses yet"
)

var ErrUnsupportedPeriod = errors.New("report period is not supported")

var reportFilters = map[string]func(n *now.Now) time.Time{
	"":      nil,
	"week":  (*now.Now).BeginningOfWeek,
	"month": (*now.Now).BeginningOfMonth,
	"year":  (*now.Now).BeginningOfYear,
}

type CategoryTotal struct {
	Category string
	Amount   float64
}

type Summary struct {
	Currency   string
	Count      int
	Total      float64
	Max        float64
	Latest     string
	ByCategory []CategoryTotal
}

// Summarize aggregates records into the display currency. records must
// already be ordered by date descending.
func Summarize(records []expense.Record, display string) Summary {
	res := Summary{
		Currency: display,
		Count:    len(records),
		Latest:   NoExpensesYet,
	}
	if len(records) == 0 {
		return res
	}
	res.Latest = records[0].Date.In(time.UTC).Format(latestLayout)

	m := make(map[string]float64)
	for _, rec := range records {
		amount := currency.Convert(rec.Amount, rec.Currency, display)
		res.Total += amount
		if amount > res.Max {
			res.Max = amount
		}
		m[rec.Category] += amount
	}

	res.ByCategory = make([]CategoryTotal, 0, len(m))
	for cat, am := range m {
		res.ByCategory = append(res.ByCategory, CategoryTotal{Category: cat, Amount: am})
	}
	sort.Slice(res.ByCategory, func(i, j int) bool {
		a, b := res.ByCategory[i], res.ByCategory[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Category < b.Category
	})
	return res
}

// FilterPeriod keeps records dated on or after the start of the current
// week, month or year. An empty period keeps everything.
func FilterPeriod(records []expense.Record, period string, at time.Time) ([]expense.Record, error) {
	start, ok := reportFilters[period]
	if !ok {
		return nil, errors.Wrap(ErrUnsupportedPeriod, period)
	}
	if start == nil {
		return records, nil
	}

	from := start(now.With(at.In(time.UTC)))
	res := make([]expense.Record, 0, len(records))
	for _, rec := range records {
		if !rec.Date.In(time.UTC).Before(from) {
			res = append(res, rec)
		}
	}
	return res, nil
}

func ReportPeriods() []string {
	res := make([]string, 0, len(reportFilters))
	for k := range reportFilters {
		if k != "" {
			res = append(res, k)
		}
	}
	sort.Strings(res)
	return res
}

// Render formats a summary as the text block shown to the user.
func Render(s Summary) string {
	lines := []string{
		"Total Expenses: " + currency.Format(s.Total, s.Currency),
		"Number of Expenses: " + strconv.Itoa(s.Count),
		"Highest Expense: " + currency.Format(s.Max, s.Currency),
		"Latest Expense: " + s.Latest,
	}
	if len(s.ByCategory) > 0 {
		lines = append(lines, "", "Expenses by Category:")
		for _, rec := range s.ByCategory {
			lines = append(lines, fmt.Sprintf("%s: %s", rec.Category, currency.Format(rec.Amount, s.Currency)))
		}
	}
	return strings.Join(lines, "\n")
}
