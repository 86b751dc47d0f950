package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=%s"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var expenseColumns = []string{"id", "description", "amount", "currency", "category", "date", "user_id", "created_at"}

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

// DSN builds a lib/pq connection string. Host may carry a port.
func DSN(config config) string {
	host, port := config.Host(), ""
	if h, p, err := net.SplitHostPort(host); err == nil {
		host, port = h, p
	}
	dsn := fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		host,
		config.Database(),
		config.SSLMode())
	if port != "" {
		dsn += " port=" + port
	}
	return dsn
}

type PostgresStorage struct {
	db        *sql.DB
	publisher changePublisher
}

func NewPostgresStorage(config config, publisher changePublisher) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", DSN(config))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db: db, publisher: publisher}, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStorage) FetchAll(ctx context.Context, owner string) ([]expense.Record, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	query := psql.Select(expenseColumns...).
		From("expenses").
		Where(sq.Eq{"user_id": owner}).
		OrderBy("date DESC", "created_at DESC")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	exps := make([]expense.Record, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, errors.Wrap(err, "get expenses")
		}
		exps = append(exps, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	return exps, nil
}

// Insert stores rec for owner and assigns its id. A submission identical to
// one made by the same owner within the last minute returns that record.
func (s *PostgresStorage) Insert(ctx context.Context, rec expense.Record, owner string) (expense.Record, error) {
	if owner == "" {
		return expense.Record{}, ErrOwnerRequired
	}
	if err := rec.Validate(); err != nil {
		return expense.Record{}, errors.Wrap(err, "save expense")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "save expense")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	now := time.Now().UTC()
	existing, found, err := s.recentDuplicate(ctx, tx, rec, owner, now)
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "save expense")
	}
	if found {
		logger.Warn("similar expense within the last minute, returning existing", zap.String("id", existing.ID))
		return existing, nil
	}

	rec.ID = uuid.NewString()
	rec.Owner = owner
	rec.CreatedAt = now
	query := psql.Insert("expenses").
		Columns(expenseColumns...).
		Values(rec.ID, rec.Description, rec.Amount, rec.Currency, rec.Category, rec.Date, rec.Owner, rec.CreatedAt)
	if _, err = query.RunWith(tx).ExecContext(ctx); err != nil {
		return expense.Record{}, errors.Wrap(err, "save expense")
	}
	if err = tx.Commit(); err != nil {
		return expense.Record{}, errors.Wrap(err, "save expense")
	}

	s.publish(ctx, expense.ChangeEvent{Kind: expense.Insert, Record: rec})
	return rec, nil
}

func (s *PostgresStorage) recentDuplicate(ctx context.Context, tx *sql.Tx, rec expense.Record, owner string, now time.Time) (expense.Record, bool, error) {
	query := psql.Select(expenseColumns...).
		From("expenses").
		Where(sq.Eq{
			"user_id":     owner,
			"description": rec.Description,
			"amount":      rec.Amount,
			"currency":    rec.Currency,
			"category":    rec.Category,
		}).
		Where(sq.GtOrEq{"created_at": now.Add(-duplicateWindow)}).
		OrderBy("created_at DESC").
		Limit(1)

	found, err := scanExpense(query.RunWith(tx).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return expense.Record{}, false, nil
	}
	if err != nil {
		return expense.Record{}, false, errors.Wrap(err, "find duplicate")
	}
	return found, true, nil
}

// Delete removes the expense id of owner. Deleting a missing record is not
// an error.
func (s *PostgresStorage) Delete(ctx context.Context, id, owner string) error {
	if owner == "" {
		return ErrOwnerRequired
	}
	query := psql.Delete("expenses").
		Where(sq.Eq{"id": id, "user_id": owner})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete expense")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete expense")
	}
	if affected > 0 {
		s.publish(ctx, expense.ChangeEvent{Kind: expense.Delete, Record: expense.Record{ID: id, Owner: owner}})
	}
	return nil
}

func (s *PostgresStorage) publish(ctx context.Context, ev expense.ChangeEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishChange(ctx, ev); err != nil {
		logger.Error("cannot publish change", zap.String("id", ev.Record.ID), zap.Error(err))
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanExpense(row scanner) (expense.Record, error) {
	var e expense.Record
	err := row.Scan(&e.ID, &e.Description, &e.Amount, &e.Currency, &e.Category, &e.Date, &e.Owner, &e.CreatedAt)
	return e, err
}
