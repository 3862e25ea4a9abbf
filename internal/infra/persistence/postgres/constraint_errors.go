package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/errors"
	"bookshelf/internal/infra/persistence/model"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgNotNullViolation     = "23502"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

func pgErrorCode(err error) (string, *pgconn.PgError) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr
	}

	return "", nil
}

// Helper functions for constraint error checking.
// The message checks cover the SQLite driver used by the repository tests.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if code, _ := pgErrorCode(err); code != "" {
		return code == pgUniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if code, _ := pgErrorCode(err); code != "" {
		return code == pgForeignKeyViolation
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if code, _ := pgErrorCode(err); code != "" {
		return code == pgNotNullViolation
	}

	return strings.Contains(err.Error(), "NOT NULL constraint failed")
}

func isSerializationFailure(err error) bool {
	code, _ := pgErrorCode(err)

	return code == pgSerializationFailure || code == pgDeadlockDetected
}

// isConflict covers every storage error that the domain reports as a persistence conflict.
func isConflict(err error) bool {
	return isUniqueConstraintViolation(err) || isSerializationFailure(err)
}

// translateWriteError maps a failed write onto the domain error taxonomy, keeping err as cause.
func translateWriteError(err error, details string) error {
	switch {
	case isConflict(err):
		return domainerrors.NewPersistenceConflictError(err, details)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NewPersistenceConflictError(err, details+": referenced record does not exist")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(details + ": missing required field")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// userUniqueViolationField names the users column behind a unique violation, or "" when unknown.
func userUniqueViolationField(err error) string {
	if _, pgErr := pgErrorCode(err); pgErr != nil {
		switch {
		case pgErr.ConstraintName == model.UsersUsernameIndex, strings.Contains(pgErr.Detail, "(username)"):
			return domainerrors.FieldUsername
		case pgErr.ConstraintName == model.UsersEmailIndex, strings.Contains(pgErr.Detail, "(email)"):
			return domainerrors.FieldEmail
		}

		return ""
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "users.username"), strings.Contains(msg, model.UsersUsernameIndex):
		return domainerrors.FieldUsername
	case strings.Contains(msg, "users.email"), strings.Contains(msg, model.UsersEmailIndex):
		return domainerrors.FieldEmail
	}

	return ""
}
