package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
)

// WishlistUsecase manages the books a user wants to read.
type WishlistUsecase interface {
	AddToWishlist(ctx context.Context, userID uuid.UUID, input *AddWishlistItemInput) (*entity.WishlistItem, error)
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)
	UpdateWishlistItem(ctx context.Context, userID, bookID uuid.UUID, input *UpdateWishlistItemInput) (*entity.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, userID, bookID uuid.UUID) error
}

// AddWishlistItemInput names the book by catalog id or by external key.
// When both are set the id wins.
type AddWishlistItemInput struct {
	BookID      uuid.UUID
	ExternalKey string
	Description string
	Priority    int
	IsPublic    bool
}

// UpdateWishlistItemInput holds the fields to change; nil leaves a field as is.
type UpdateWishlistItemInput struct {
	Description *string
	Priority    *int
	IsPublic    *bool
}
