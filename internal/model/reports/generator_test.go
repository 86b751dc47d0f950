package reports

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func Test_OnSummarize_ShouldConvertIntoDisplayCurrency(t *testing.T) {
	records := []expense.Record{
		{ID: "2", Amount: 2, Currency: currency.USD, Category: expense.Shopping, Date: date(2024, 5, 2)},
		{ID: "1", Amount: 100, Currency: currency.MKD, Category: expense.Food, Date: date(2024, 5, 1)},
	}

	s := Summarize(records, currency.MKD)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 211.0, s.Total, 1e-9)
	assert.InDelta(t, 111.0, s.Max, 1e-9)
	assert.Equal(t, "May 2, 2024", s.Latest)
	require.Len(t, s.ByCategory, 2)
	assert.Equal(t, expense.Shopping, s.ByCategory[0].Category)
	assert.InDelta(t, 111.0, s.ByCategory[0].Amount, 1e-9)
	assert.Equal(t, expense.Food, s.ByCategory[1].Category)
	assert.InDelta(t, 100.0, s.ByCategory[1].Amount, 1e-9)
}

func Test_OnSummarize_ShouldGroupCategories(t *testing.T) {
	records := []expense.Record{
		{Amount: 1000, Currency: currency.MKD, Category: expense.Utilities, Date: date(2024, 1, 3)},
		{Amount: 1500, Currency: currency.MKD, Category: expense.Shopping, Date: date(2024, 1, 2)},
		{Amount: 100, Currency: currency.MKD, Category: expense.Shopping, Date: date(2024, 1, 1)},
	}

	s := Summarize(records, currency.USD)
	assert.InDelta(t, 2600/55.5, s.Total, 1e-9)
	assert.Equal(t, expense.Shopping, s.ByCategory[0].Category)
	assert.InDelta(t, 1600/55.5, s.ByCategory[0].Amount, 1e-9)
	assert.Equal(t, expense.Utilities, s.ByCategory[1].Category)
}

func Test_OnSummarize_EmptyList(t *testing.T) {
	s := Summarize(nil, currency.EUR)
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, 0.0, s.Max)
	assert.Equal(t, NoExpensesYet, s.Latest)
	assert.Empty(t, s.ByCategory)
	assert.Equal(t, "Total Expenses: €0.00\nNumber of Expenses: 0\nHighest Expense: €0.00\nLatest Expense: No expenses yet", Render(s))
}

func Test_Render(t *testing.T) {
	s := Summary{
		Currency:   currency.USD,
		Count:      2,
		Total:      1500,
		Max:        1000,
		Latest:     "Jan 2, 2024",
		ByCategory: []CategoryTotal{{Category: expense.Food, Amount: 1000}, {Category: expense.Gifts, Amount: 500}},
	}
	want := "Total Expenses: $1,500.00\n" +
		"Number of Expenses: 2\n" +
		"Highest Expense: $1,000.00\n" +
		"Latest Expense: Jan 2, 2024\n" +
		"\n" +
		"Expenses by Category:\n" +
		"Food: $1,000.00\n" +
		"Gifts: $500.00"
	assert.Equal(t, want, Render(s))
}

func Test_FilterPeriod(t *testing.T) {
	at := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	records := []expense.Record{
		{ID: "a", Date: date(2024, 5, 15)},
		{ID: "b", Date: date(2024, 5, 1)},
		{ID: "c", Date: date(2024, 1, 1)},
		{ID: "d", Date: date(2023, 12, 31)},
	}

	got, err := FilterPeriod(records, "month", at)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(got))

	got, err = FilterPeriod(records, "year", at)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))

	got, err = FilterPeriod(records, "", at)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	_, err = FilterPeriod(records, "decade", at)
	assert.True(t, errors.Is(err, ErrUnsupportedPeriod))
}

func Test_ReportPeriods(t *testing.T) {
	assert.Equal(t, []string{"month", "week", "year"}, ReportPeriods())
}

func ids(records []expense.Record) []string {
	res := make([]string, 0, len(records))
	for _, r := range records {
		res = append(res, r.ID)
	}
	return res
}
