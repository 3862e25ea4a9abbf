package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/errors"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert")))
	assert.True(t, isUniqueConstraintViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.False(t, isUniqueConstraintViolation(nil))
}

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, got error)
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: pgUniqueViolation},
			check: func(t *testing.T, got error) {
				assert.True(t, domainerrors.IsPersistenceConflict(got))
			},
		},
		{
			name: "serialization failure",
			err:  &pgconn.PgError{Code: pgSerializationFailure},
			check: func(t *testing.T, got error) {
				assert.True(t, domainerrors.IsPersistenceConflict(got))
			},
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: pgForeignKeyViolation},
			check: func(t *testing.T, got error) {
				assert.True(t, domainerrors.IsPersistenceConflict(got))
				assert.Contains(t, got.Error(), "referenced record does not exist")
			},
		},
		{
			name: "not null violation",
			err:  &pgconn.PgError{Code: pgNotNullViolation},
			check: func(t *testing.T, got error) {
				assert.True(t, errors.Is(got, domainerrors.ErrValidationFailed))
			},
		},
		{
			name: "anything else",
			err:  errors.New("connection reset"),
			check: func(t *testing.T, got error) {
				appErr, ok := domainerrors.AsAppError(got)
				assert.True(t, ok)
				assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateWriteError(tt.err, "failed to save")
			tt.check(t, got)
		})
	}
}

func TestTranslateWriteError_KeepsCause(t *testing.T) {
	cause := &pgconn.PgError{Code: pgUniqueViolation}

	got := translateWriteError(cause, "failed to save book")

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(got, &pgErr))
	assert.Same(t, cause, pgErr)
}

func TestUserUniqueViolationField(t *testing.T) {
	assert.Equal(t, domainerrors.FieldUsername, userUniqueViolationField(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uni_users_username"}))
	assert.Equal(t, domainerrors.FieldEmail, userUniqueViolationField(&pgconn.PgError{Code: pgUniqueViolation, Detail: "Key (email)=(a@b.c) already exists."}))
	assert.Equal(t, domainerrors.FieldUsername, userUniqueViolationField(errors.New("UNIQUE constraint failed: users.username")))
	assert.Equal(t, domainerrors.FieldEmail, userUniqueViolationField(errors.New("UNIQUE constraint failed: users.email")))
	assert.Empty(t, userUniqueViolationField(errors.New("UNIQUE constraint failed: users.id")))
}
