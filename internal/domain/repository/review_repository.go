package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
)

// ReviewRepository stores reviews. Like wishlists, one review per (user, book) is
// checked by the caller and backed by a storage constraint.
type ReviewRepository interface {
	Save(ctx context.Context, review *entity.Review) (*entity.Review, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByUserID returns the user's reviews, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// FindByUserIDAndBookID returns zero or one review.
	FindByUserIDAndBookID(ctx context.Context, userID, bookID uuid.UUID) (*entity.Review, error)

	Delete(ctx context.Context, review *entity.Review) error
}
