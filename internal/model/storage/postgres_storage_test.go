package storage

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pgConfig struct {
	host string
}

func (c pgConfig) Host() string     { return c.host }
func (c pgConfig) Username() string { return "postgres" }
func (c pgConfig) Password() string { return "secret" }
func (c pgConfig) Database() string { return "expenses" }
func (c pgConfig) SSLMode() string  { return "disable" }

func Test_DSN(t *testing.T) {
	assert.Equal(t,
		"user=postgres password=secret host=db dbname=expenses sslmode=disable",
		DSN(pgConfig{host: "db"}))
	assert.Equal(t,
		"user=postgres password=secret host=localhost dbname=expenses sslmode=disable port=5433",
		DSN(pgConfig{host: "localhost:5433"}))
}

type rowStub []interface{}

func (r rowStub) Scan(dest ...interface{}) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r[i].(string)
		case *float64:
			*p = r[i].(float64)
		case *civil.Date:
			if err := p.Scan(r[i]); err != nil {
				return err
			}
		case *time.Time:
			*p = r[i].(time.Time)
		}
	}
	return nil
}

func Test_ScanExpense_ReadsColumnsInOrder(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	row := rowStub{"id-1", "Lunch", 12.5, "EUR", "Food", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "alice", created}

	rec, err := scanExpense(row)

	require.NoError(t, err)
	assert.Equal(t, "id-1", rec.ID)
	assert.Equal(t, 12.5, rec.Amount)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.March, Day: 1}, rec.Date)
	assert.Equal(t, "alice", rec.Owner)
	assert.Equal(t, created, rec.CreatedAt)
	assert.Len(t, expenseColumns, len(row))
}
