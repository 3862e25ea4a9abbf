package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bookshelf/internal/delivery/http/response"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/usecase"
)

// BookHandler serves the catalog.
type BookHandler struct {
	catalog   usecase.CatalogUsecase
	coversURL string
	logger    *slog.Logger
}

// NewBookHandler creates a BookHandler. coversURL is the base of cover image links.
func NewBookHandler(catalog usecase.CatalogUsecase, coversURL string, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		catalog:   catalog,
		coversURL: coversURL,
		logger:    logger,
	}
}

// ListBooks lists the catalog, or searches it when q is present.
func (h *BookHandler) ListBooks(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		books []*entity.Book
		err   error
	)
	if q, ok := c.QueryParams()["q"]; ok {
		books, err = h.catalog.Search(ctx, strings.Join(q, " "))
	} else {
		books, err = h.catalog.ListBooks(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books, h.coversURL))
}

// GetBook returns one catalog book.
func (h *BookHandler) GetBook(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	book, err := h.catalog.GetBook(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book, h.coversURL))
}

// LookupBook resolves an external key, importing the work when it is not cataloged yet.
func (h *BookHandler) LookupBook(c echo.Context) error {
	key := strings.TrimSpace(c.QueryParam("key"))
	if key == "" {
		return domainerrors.ErrInvalidArgument.WrapMessage("key is required")
	}

	book, err := h.catalog.GetOrImportByKey(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book, h.coversURL))
}

// ImportBook imports or refreshes a single work.
func (h *BookHandler) ImportBook(c echo.Context) error {
	var req ImportBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid import request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.catalog.ImportBook(c.Request().Context(), req.Key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book, h.coversURL))
}

// ImportSearch imports every result of a remote search.
func (h *BookHandler) ImportSearch(c echo.Context) error {
	var req ImportSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid import request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	books, err := h.catalog.ImportSearch(c.Request().Context(), req.Query, req.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Imported search results",
		slog.String("query", req.Query),
		slog.Int("count", len(books)),
	)

	return response.Success(c, http.StatusOK, toBookResponses(books, h.coversURL))
}
