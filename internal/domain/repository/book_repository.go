// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
//
// Lookups report absence as a nil result with a nil error. Storage failures are
// translated into the domain error taxonomy with the original error kept as cause.
package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
)

// BookRepository stores the catalog. Records are keyed by the id derived from their external key.
type BookRepository interface {
	// Save upserts by ID. When the book already exists its metadata is overwritten in place;
	// its ID and creation time are preserved. The stored record is returned.
	// A racing insert on the same ID surfaces as a PersistenceConflictError.
	Save(ctx context.Context, book *entity.Book) (*entity.Book, error)

	// FindByID retrieves a single book by its internal ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindByExternalKey normalizes key first, so "OL123W" and "/works/OL123W" find the same book.
	FindByExternalKey(ctx context.Context, key string) (*entity.Book, error)

	// FindAll returns the whole catalog in no particular order.
	FindAll(ctx context.Context) ([]*entity.Book, error)

	// Search is a case-insensitive substring match over title, subtitle, alternative title and author.
	// An empty query matches nothing.
	Search(ctx context.Context, query string) ([]*entity.Book, error)

	// SearchByTitleOrAuthor narrows Search to the title and author fields.
	SearchByTitleOrAuthor(ctx context.Context, query string) ([]*entity.Book, error)
}
