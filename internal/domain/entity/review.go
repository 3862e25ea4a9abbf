package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's write-up of a book. There is at most one review per (user, book).
type Review struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BookID    uuid.UUID
	Content   string
	IsPublic  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
