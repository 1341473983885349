//go:build unit

package usecase_test

import (
	"errors"

	"shiftboard/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

func notFoundRepoErr() error {
	return infra.WrapRepoErr("row not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func duplicateKeyRepoErr() error {
	return infra.WrapRepoErr("unique violation", errors.New("duplicate key value violates unique constraint"), infra.KindDuplicateKey)
}

// uniqueViolationRepoErr mimics what the repository returns when Postgres
// rejects an insert on the named unique constraint.
func uniqueViolationRepoErr(constraint string) error {
	return infra.WrapRepoErr("unique violation", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: constraint,
	})
}
