package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
)

// ReviewUsecase manages reviews, one per user and book.
type ReviewUsecase interface {
	WriteReview(ctx context.Context, userID uuid.UUID, input *WriteReviewInput) (*entity.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	// ListUserReviews hides private reviews unless viewerID is the author.
	ListUserReviews(ctx context.Context, userID, viewerID uuid.UUID) ([]*entity.Review, error)
	GetBookReview(ctx context.Context, userID, bookID uuid.UUID) (*entity.Review, error)
}

// WriteReviewInput names the book by catalog id or by external key.
type WriteReviewInput struct {
	BookID      uuid.UUID
	ExternalKey string
	Content     string
	IsPublic    bool
}
