package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories use. pgxmock's pool
// interface satisfies it too, which is what the repository tests rely on.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ErrNotFound reports that no row matched the given id.
var ErrNotFound = errors.New("row not found")

// ConstraintError is an integrity-constraint rejection (unique, not-null or
// foreign key). Callers get the driver's message, not the category.
type ConstraintError struct {
	Code    string
	Message string
	cause   error
}

func (e *ConstraintError) Error() string { return e.Message }
func (e *ConstraintError) Unwrap() error { return e.cause }

// translateError maps driver errors onto the repository error kinds.
// SQLSTATE class 23 covers every integrity-constraint violation.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return &ConstraintError{Code: pgErr.Code, Message: pgErr.Message, cause: err}
	}
	return err
}
