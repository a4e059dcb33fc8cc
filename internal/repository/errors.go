package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrDuplicate reports a unique constraint violation.
var ErrDuplicate = errors.New("duplicate key")

// ErrReferenced reports a row that cannot be removed while referenced.
var ErrReferenced = errors.New("row is referenced")

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translate maps driver errors onto repository sentinels, keeping the
// constraint name for logs.
func translate(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, ErrDuplicate, pqErr.Constraint)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, ErrReferenced, pqErr.Constraint)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// execOne runs a statement that must touch at least one row; otherwise it
// returns sql.ErrNoRows.
func execOne(ctx context.Context, q sqlx.ExtContext, op, query string, args ...interface{}) error {
	n, err := execCount(ctx, q, op, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func execCount(ctx context.Context, q sqlx.ExtContext, op, query string, args ...interface{}) (int64, error) {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translate(op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s rows affected: %w", op, err)
	}
	return n, nil
}
