package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "bookshelf/internal/domain/errors"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		errCode string
		message string
	}{
		{
			name:    "wrapped app error",
			err:     errors.Wrap(domainerrors.ErrBookNotFound, "book 123"),
			code:    http.StatusNotFound,
			errCode: "BOOK_NOT_FOUND",
			message: "book not found",
		},
		{
			name:    "persistence conflict",
			err:     domainerrors.NewPersistenceConflictError(errors.New("duplicate key"), "save user"),
			code:    http.StatusConflict,
			errCode: "PERSISTENCE_CONFLICT",
			message: "the resource was modified concurrently",
		},
		{
			name:    "echo error",
			err:     echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			code:    http.StatusMethodNotAllowed,
			errCode: "HTTP_ERROR",
			message: "nope",
		},
		{
			name:    "unknown error hides cause",
			err:     errors.New("connection refused"),
			code:    http.StatusInternalServerError,
			errCode: "INTERNAL_ERROR",
			message: "Internal server error, please try again later",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.code, rec.Code)
			var body domainerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.errCode, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
