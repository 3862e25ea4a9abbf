package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	mockUsecase "bookshelf/internal/mocks/usecase"
)

const testCoversURL = "https://covers.example.org"

func newBookTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockCatalogUsecase) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	h := NewBookHandler(catalog, testCoversURL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.GET("/books", h.ListBooks)
	e.GET("/books/lookup", h.LookupBook)
	e.POST("/books/import", h.ImportBook)
	e.POST("/books/import/search", h.ImportSearch)
	e.GET("/books/:id", h.GetBook)

	return e, catalog
}

func hobbit() *entity.Book {
	return &entity.Book{
		ID:          uuid.New(),
		ExternalKey: "/works/OL27482W",
		Title:       "The Hobbit",
		Author:      "J.R.R. Tolkien",
		CoverID:     14627509,
		EbookAccess: "borrowable",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestBookHandler_ListBooks(t *testing.T) {
	e, catalog := newBookTestEcho(t)
	book := hobbit()
	catalog.EXPECT().ListBooks(mock.Anything).Return([]*entity.Book{book}, nil).Once()

	rec, env := serve(t, e, http.MethodGet, "/books", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	books := decodeData[[]BookResponse](t, env)
	require.Len(t, books, 1)
	assert.Equal(t, book.ID, books[0].ID)
	assert.Equal(t, "https://covers.example.org/b/id/14627509-M.jpg", books[0].CoverURL)
	assert.True(t, books[0].HasEbook)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestBookHandler_ListBooks_WithQuerySearches(t *testing.T) {
	e, catalog := newBookTestEcho(t)
	catalog.EXPECT().Search(mock.Anything, "tolkien").Return([]*entity.Book{}, nil).Once()

	rec, env := serve(t, e, http.MethodGet, "/books?q=tolkien", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[[]BookResponse](t, env))
}

func TestBookHandler_GetBook(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		e, _ := newBookTestEcho(t)

		rec, env := serve(t, e, http.MethodGet, "/books/not-a-uuid", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		e, catalog := newBookTestEcho(t)
		id := uuid.New()
		catalog.EXPECT().GetBook(mock.Anything, id).
			Return(nil, errors.Wrapf(domainerrors.ErrBookNotFound, "book %s", id)).Once()

		rec, env := serve(t, e, http.MethodGet, "/books/"+id.String(), "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "BOOK_NOT_FOUND", env.Error.Code)
	})

	t.Run("no cover", func(t *testing.T) {
		e, catalog := newBookTestEcho(t)
		book := hobbit()
		book.CoverID = 0
		catalog.EXPECT().GetBook(mock.Anything, book.ID).Return(book, nil).Once()

		rec, env := serve(t, e, http.MethodGet, "/books/"+book.ID.String(), "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeData[BookResponse](t, env).CoverURL)
	})
}

func TestBookHandler_LookupBook(t *testing.T) {
	e, catalog := newBookTestEcho(t)
	book := hobbit()
	catalog.EXPECT().GetOrImportByKey(mock.Anything, "OL27482W").Return(book, nil).Once()

	rec, env := serve(t, e, http.MethodGet, "/books/lookup?key=OL27482W", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, book.ExternalKey, decodeData[BookResponse](t, env).ExternalKey)

	rec, env = serve(t, e, http.MethodGet, "/books/lookup", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
}

func TestBookHandler_ImportBook(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		e, _ := newBookTestEcho(t)

		rec, env := serve(t, e, http.MethodPost, "/books/import", `{}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("source failure", func(t *testing.T) {
		e, catalog := newBookTestEcho(t)
		catalog.EXPECT().ImportBook(mock.Anything, "/works/OL1W").
			Return(nil, domainerrors.NewProcessingError(errors.New("timeout"), "fetch work")).Once()

		rec, env := serve(t, e, http.MethodPost, "/books/import", `{"key":"/works/OL1W"}`, "")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "BOOK_PROCESSING_FAILED", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})

	t.Run("imported", func(t *testing.T) {
		e, catalog := newBookTestEcho(t)
		book := hobbit()
		catalog.EXPECT().ImportBook(mock.Anything, book.ExternalKey).Return(book, nil).Once()

		rec, env := serve(t, e, http.MethodPost, "/books/import", `{"key":"/works/OL27482W"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, book.ID, decodeData[BookResponse](t, env).ID)
	})
}

func TestBookHandler_ImportSearch(t *testing.T) {
	e, catalog := newBookTestEcho(t)
	catalog.EXPECT().ImportSearch(mock.Anything, "hobbit", 5).Return([]*entity.Book{hobbit(), hobbit()}, nil).Once()

	rec, env := serve(t, e, http.MethodPost, "/books/import/search", `{"query":"hobbit","limit":5}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]BookResponse](t, env), 2)

	rec, env = serve(t, e, http.MethodPost, "/books/import/search", `{"query":"hobbit","limit":500}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
