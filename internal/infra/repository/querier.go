package repository

import (
	"context"
	"errors"

	"cinema-tickets/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx, so the same repository
// code serves both implicit single-statement calls and unit-of-work
// transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

func classifyPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.NewRepoErr(infra.KindDuplicateKey, msg, err)
		case pgErrCodeForeignKeyViolation:
			return infra.NewRepoErr(infra.KindForeignKeyViolated, msg, err)
		case pgErrCodeCheckViolation:
			return infra.NewRepoErr(infra.KindCheckViolated, msg, err)
		}
	}
	return infra.NewRepoErr(infra.KindDBFailure, msg, err)
}
