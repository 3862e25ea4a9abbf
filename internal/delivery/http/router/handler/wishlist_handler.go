package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bookshelf/internal/delivery/http/response"
	"bookshelf/internal/usecase"
)

// WishlistHandler serves a user's wishlist.
type WishlistHandler struct {
	uc        usecase.WishlistUsecase
	coversURL string
}

// NewWishlistHandler creates a WishlistHandler.
func NewWishlistHandler(uc usecase.WishlistUsecase, coversURL string) *WishlistHandler {
	return &WishlistHandler{uc: uc, coversURL: coversURL}
}

// GetWishlist lists the items. Other callers only see public items.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	items, err := h.uc.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	owner := isOwnerView(c, userID)
	out := make([]*WishlistItemResponse, 0, len(items))
	for _, item := range items {
		if !item.IsPublic && !owner {
			continue
		}
		out = append(out, toWishlistItemResponse(item, h.coversURL))
	}

	return response.Success(c, http.StatusOK, out)
}

// AddToWishlist adds a book by id or external key.
func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	userID, err := ownerParam(c)
	if err != nil {
		return err
	}

	var req AddWishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.AddToWishlist(c.Request().Context(), userID, &usecase.AddWishlistItemInput{
		BookID:      optionalUUID(req.BookID),
		ExternalKey: req.ExternalKey,
		Description: req.Description,
		Priority:    req.Priority,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWishlistItemResponse(item, h.coversURL))
}

// UpdateWishlistItem changes the given fields of an item.
func (h *WishlistHandler) UpdateWishlistItem(c echo.Context) error {
	userID, err := ownerParam(c)
	if err != nil {
		return err
	}
	bookID, err := parseUUIDParam(c, "bookId")
	if err != nil {
		return err
	}

	var req UpdateWishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.UpdateWishlistItem(c.Request().Context(), userID, bookID, &usecase.UpdateWishlistItemInput{
		Description: req.Description,
		Priority:    req.Priority,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistItemResponse(item, h.coversURL))
}

// RemoveFromWishlist deletes an item.
func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	userID, err := ownerParam(c)
	if err != nil {
		return err
	}
	bookID, err := parseUUIDParam(c, "bookId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFromWishlist(c.Request().Context(), userID, bookID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
