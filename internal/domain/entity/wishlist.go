package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is a book a user wants to read. There is at most one item per (user, book).
type WishlistItem struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	BookID      uuid.UUID
	Book        *Book // Loaded on reads when the book is still in the catalog.
	Description string
	Priority    int  // Higher is more urgent.
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
