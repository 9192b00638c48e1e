package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-company-portal/internal/logger"
)

var (
	// ErrNotFound is returned by updates that matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique constraint rejects a write.
	ErrConflict = errors.New("record conflicts with an existing one")
	// ErrForeignKey is returned when a row references a missing parent.
	ErrForeignKey = errors.New("referenced record does not exist")
)

// secret is a query argument that must not show up in logs.
type secret string

func (s secret) Value() (driver.Value, error) { return string(s), nil }

func (secret) String() string { return "[REDACTED]" }

func (secret) MarshalJSON() ([]byte, error) { return []byte(`"[REDACTED]"`), nil }

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the request transaction when there is one, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// mapError translates driver errors into repository errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return errors.Join(ErrConflict, err)
		case "23503":
			return errors.Join(ErrForeignKey, err)
		}
	}
	return err
}

// logQuery logs a statement in a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// getOne runs a single-row query; no row is (false, nil).
func getOne(ctx context.Context, q sqlx.QueryerContext, dest any, query string, args ...any) (bool, error) {
	err := sqlx.GetContext(ctx, q, dest, query, args...)
	logQuery(query, args, dest, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// exec runs a statement and returns the number of affected rows.
func exec(ctx context.Context, e sqlx.ExecerContext, query string, args ...any) (int64, error) {
	res, err := e.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return rowsAffected, mapError(err)
}
