package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "bookshelf/internal/delivery/context"
)

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	var ctxRequestID string
	err := mw.Process(func(c echo.Context) error {
		ctxRequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)

	require.NoError(t, err)
	assert.NotEmpty(t, ctxRequestID)
	assert.Equal(t, ctxRequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, uuid.Nil, deliverycontext.GetViewerID(c))
}

func TestRequestIDMiddleware_KeepsClientValues(t *testing.T) {
	viewer := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	req.Header.Set(deliverycontext.HeaderXUserID, viewer.String())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, "client-id", deliverycontext.GetRequestID(c))
	assert.Equal(t, viewer, deliverycontext.GetViewerID(c))
}

func TestRequestIDMiddleware_IgnoresMalformedUserID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXUserID, "not-a-uuid")
	c := e.NewContext(req, httptest.NewRecorder())

	err := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, deliverycontext.GetViewerID(c))
}
