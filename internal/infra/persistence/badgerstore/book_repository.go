package badgerstore

import (
	"context"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/identity"
)

type bookRepository struct {
	s session
}

// Save writes the record under its derived id. An existing record keeps its creation time.
func (repo *bookRepository) Save(_ context.Context, book *entity.Book) (*entity.Book, error) {
	if book == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("book is nil")
	}
	if err := book.AssignIdentity(); err != nil {
		return nil, err
	}

	var saved *bookRecord
	err := repo.s.update(func(txn *badger.Txn) error {
		key := bookKey(book.ID)
		record := fromBook(book)
		now := time.Now().UTC()

		var existing bookRecord
		found, err := getJSON(txn, key, &existing)
		if err != nil {
			return err
		}
		if found {
			record.CreatedAt = existing.CreatedAt
			record.ExternalKey = existing.ExternalKey
		} else {
			record.CreatedAt = now
		}
		record.UpdatedAt = now

		if err := setJSON(txn, key, record); err != nil {
			return err
		}
		saved = record

		return nil
	})
	if err != nil {
		return nil, storageError(err, "failed to save book")
	}

	return saved.toDomain(), nil
}

func (repo *bookRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Book, error) {
	var book *entity.Book
	err := repo.s.view(func(txn *badger.Txn) error {
		var record bookRecord
		found, err := getJSON(txn, bookKey(id), &record)
		if err != nil || !found {
			return err
		}
		book = record.toDomain()

		return nil
	})
	if err != nil {
		return nil, storageError(err, "failed to find book by id")
	}

	return book, nil
}

// FindByExternalKey needs no index: the key derives the record id.
func (repo *bookRepository) FindByExternalKey(ctx context.Context, key string) (*entity.Book, error) {
	if key == "" {
		return nil, nil
	}

	book, err := repo.FindByID(ctx, identity.MustDeriveBookID(key))
	if err != nil || book == nil {
		return nil, err
	}
	if book.ExternalKey != identity.NormalizeExternalKey(key) {
		return nil, nil
	}

	return book, nil
}

func (repo *bookRepository) FindAll(_ context.Context) ([]*entity.Book, error) {
	return repo.scan(func(*bookRecord) bool { return true })
}

func (repo *bookRepository) Search(_ context.Context, query string) ([]*entity.Book, error) {
	if query == "" {
		return []*entity.Book{}, nil
	}
	needle := strings.ToLower(query)

	return repo.scan(func(r *bookRecord) bool {
		return containsFold(needle, r.Title, r.Subtitle, r.AlternativeTitle, r.Author)
	})
}

func (repo *bookRepository) SearchByTitleOrAuthor(_ context.Context, query string) ([]*entity.Book, error) {
	if query == "" {
		return []*entity.Book{}, nil
	}
	needle := strings.ToLower(query)

	return repo.scan(func(r *bookRecord) bool {
		return containsFold(needle, r.Title, r.Author)
	})
}

func (repo *bookRepository) scan(match func(*bookRecord) bool) ([]*entity.Book, error) {
	books := []*entity.Book{}
	err := repo.s.view(func(txn *badger.Txn) error {
		return scanValues(txn, []byte(bookPrefix), func(val []byte) error {
			var record bookRecord
			if err := decode(val, &record); err != nil {
				return err
			}
			if match(&record) {
				books = append(books, record.toDomain())
			}

			return nil
		})
	})
	if err != nil {
		return nil, storageError(err, "failed to scan books")
	}

	return books, nil
}

// containsFold reports whether any field contains the lower-cased needle, ignoring case.
func containsFold(needle string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}
