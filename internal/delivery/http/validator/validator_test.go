package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "bookshelf/internal/domain/errors"
)

type sample struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Goal     int    `json:"reading_goal" validate:"gte=0"`
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Username: "alice", Email: "alice@example.com"}))
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&sample{Username: "al", Email: "nope", Goal: -1})
	require.Error(t, err)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t,
		"email must be a valid email address; reading_goal must be greater than or equal to 0; username must be at least 3",
		appErr.Details(),
	)
}
