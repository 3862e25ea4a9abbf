// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
)

// CatalogUsecase ingests books from the external source and serves the local catalog.
type CatalogUsecase interface {
	// ImportBook fetches the work and upserts it. Importing the same work again refreshes it in place.
	ImportBook(ctx context.Context, externalKey string) (*entity.Book, error)
	// ImportSearch runs a remote search and upserts every result.
	ImportSearch(ctx context.Context, query string, limit int) ([]*entity.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	// GetOrImportByKey checks the catalog first and falls back to an import.
	GetOrImportByKey(ctx context.Context, externalKey string) (*entity.Book, error)
	Search(ctx context.Context, query string) ([]*entity.Book, error)
	ListBooks(ctx context.Context) ([]*entity.Book, error)
}
