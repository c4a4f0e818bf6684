//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"bookcase-rental/internal/infra"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		expected infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, expected: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, expected: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, expected: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, expected: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, expected: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), expected: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("zero rows"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, expected: infra.KindNotFound},
		{name: "nil cause", err: nil, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, expected: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("operation failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(wrapped, tc.expected), "expected kind [%v] but got (%v)", tc.expected, wrapped)
			if tc.err != nil {
				assert.ErrorIs(t, wrapped, tc.err)
			}
		})
	}
}
