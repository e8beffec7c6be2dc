package repository

import (
	"errors"

	"venuebook/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeForeignKeyViolated = "23503"
	pgErrCodeExclusionViolated  = "23P01"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// wrapPgErr maps well-known PostgreSQL error codes to repository kinds so the
// usecase layer never inspects driver errors directly.
func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolated:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		case pgErrCodeExclusionViolated:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
