package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
)

// WishlistRepository stores wishlist items.
//
// Save does not upsert on (user, book): callers check ExistsByUserAndBook first.
// The store keeps a unique (user, book) constraint as backstop, and a violation
// comes back from Save as a PersistenceConflictError.
type WishlistRepository interface {
	// Save inserts a new item or updates the item with the same ID.
	Save(ctx context.Context, item *entity.WishlistItem) (*entity.WishlistItem, error)

	ExistsByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (bool, error)

	// FindAllByUser returns the user's items, most urgent first.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	FindByUserAndBook(ctx context.Context, user *entity.User, book *entity.Book) (*entity.WishlistItem, error)

	FindByUserIDAndBookID(ctx context.Context, userID, bookID uuid.UUID) (*entity.WishlistItem, error)

	// Delete removes the item. Deleting an item that is already gone is not an error.
	Delete(ctx context.Context, item *entity.WishlistItem) error
}
