package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes treated as bad caller input.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNumericValueOutOfRange    = "22003"
)

// Classify maps err to the status and message written to the client.
// Domain errors win over store errors, which win over the 500 fallback.
func Classify(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status(), appErr.Message
	}

	if IsInvalidStoreInput(err) {
		return http.StatusBadRequest, MsgInvalidEndpoint
	}

	return http.StatusInternalServerError, MsgServerError
}

// IsInvalidStoreInput reports whether the store rejected a parameter
// because of its type or range.
func IsInvalidStoreInput(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgInvalidTextRepresentation, pgNumericValueOutOfRange:
		return true
	}
	return false
}
