package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/delivery/http/response"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/usecase"
)

// ReviewHandler serves reviews.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// WriteReview records the caller's review of a book.
func (h *ReviewHandler) WriteReview(c echo.Context) error {
	userID, err := ownerParam(c)
	if err != nil {
		return err
	}

	var req WriteReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.WriteReview(c.Request().Context(), userID, &usecase.WriteReviewInput{
		BookID:      optionalUUID(req.BookID),
		ExternalKey: req.ExternalKey,
		Content:     req.Content,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review))
}

// ListUserReviews lists a user's reviews as seen by the caller.
func (h *ReviewHandler) ListUserReviews(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListUserReviews(c.Request().Context(), userID, deliverycontext.GetViewerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetBookReview returns the user's review of one book.
func (h *ReviewHandler) GetBookReview(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}
	bookID, err := parseUUIDParam(c, "bookId")
	if err != nil {
		return err
	}

	review, err := h.uc.GetBookReview(c.Request().Context(), userID, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.visible(c, review)
}

// GetReview returns a review by id.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	review, err := h.uc.GetReview(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.visible(c, review)
}

// visible renders review, or NotFound when it is private and the caller is not its author.
func (h *ReviewHandler) visible(c echo.Context, review *entity.Review) error {
	if !review.IsPublic && !isOwnerView(c, review.UserID) {
		return errors.WithStack(domainerrors.ErrReviewNotFound)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review))
}
