package service

import (
	"database/sql"
	"errors"

	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

// storeError maps repository failures onto the HTTP error taxonomy:
// missing rows to 404, unique violations to 409, FK violations to the
// given fkError (400 for inserts referencing absent rows, 409 for blocked
// deletes), everything else to 500 with the fallback message.
func storeError(err error, notFound string, fkError *appErrors.Error, fkMessage, fallback string) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	case appErrors.IsUniqueViolation(err):
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "duplicate/unique constraint")
	case appErrors.IsForeignKeyViolation(err) && fkError != nil:
		return appErrors.Wrap(err, fkError.Code, fkError.Status, fkMessage)
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fallback)
	}
}

// readError maps lookup failures: missing rows to 404, the rest to 500.
func readError(err error, notFound, fallback string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fallback)
}

// readErrorAs is readError with a caller-supplied error for the missing
// row case, used where absence must not leak as a plain 404.
func readErrorAs(err error, missing *appErrors.Error, fallback string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return missing
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fallback)
}
