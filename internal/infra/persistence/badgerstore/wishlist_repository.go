package badgerstore

import (
	"context"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
)

type wishlistRepository struct {
	s session
}

// Save writes the item and its (user, book) index entry. Another item already
// holding the pair is a PersistenceConflictError.
func (repo *wishlistRepository) Save(_ context.Context, item *entity.WishlistItem) (*entity.WishlistItem, error) {
	if item == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("wishlist item is nil")
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	var saved *wishlistRecord
	err := repo.s.update(func(txn *badger.Txn) error {
		record := fromWishlistItem(item)
		now := time.Now().UTC()

		var existing wishlistRecord
		found, err := getJSON(txn, wishlistKey(record.ID), &existing)
		if err != nil {
			return err
		}
		if found {
			record.CreatedAt = existing.CreatedAt
		} else {
			record.CreatedAt = now
		}
		record.UpdatedAt = now

		pairKey := pairIndexKey(idxWishlistPair, record.UserID, record.BookID)
		owner, taken, err := lookupID(txn, pairKey)
		if err != nil {
			return err
		}
		if taken && owner != record.ID {
			return uniqueIndexConflict(pairKey, "book is already on the user's wishlist")
		}

		if found && (existing.UserID != record.UserID || existing.BookID != record.BookID) {
			if err := deleteKeys(txn,
				pairIndexKey(idxWishlistPair, existing.UserID, existing.BookID),
				byUserIndexKey(idxWishlistByUser, existing.UserID, existing.ID),
			); err != nil {
				return err
			}
		}

		if err := txn.Set(pairKey, []byte(record.ID.String())); err != nil {
			return err
		}
		if err := txn.Set(byUserIndexKey(idxWishlistByUser, record.UserID, record.ID), nil); err != nil {
			return err
		}
		if err := setJSON(txn, wishlistKey(record.ID), record); err != nil {
			return err
		}
		saved = record

		return nil
	})
	if err != nil {
		return nil, storageError(err, "failed to save wishlist item")
	}

	result := saved.toDomain()
	result.Book = item.Book

	return result, nil
}

func (repo *wishlistRepository) ExistsByUserAndBook(_ context.Context, userID, bookID uuid.UUID) (bool, error) {
	var found bool
	err := repo.s.view(func(txn *badger.Txn) error {
		var err error
		found, err = exists(txn, pairIndexKey(idxWishlistPair, userID, bookID))

		return err
	})
	if err != nil {
		return false, storageError(err, "failed to check wishlist item existence")
	}

	return found, nil
}

// FindAllByUser orders by priority (highest first), then by age.
func (repo *wishlistRepository) FindAllByUser(_ context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	items := []*entity.WishlistItem{}
	err := repo.s.view(func(txn *badger.Txn) error {
		for _, rawID := range scanKeySuffixes(txn, byUserIndexPrefix(idxWishlistByUser, userID)) {
			id, err := uuid.Parse(rawID)
			if err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "corrupt wishlist index entry")
			}
			item, err := loadWishlistItem(txn, wishlistKey(id))
			if err != nil {
				return err
			}
			if item != nil {
				items = append(items, item)
			}
		}

		return nil
	})
	if err != nil {
		return nil, storageError(err, "failed to list wishlist")
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority > items[j].Priority
		}

		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items, nil
}

func (repo *wishlistRepository) FindByUserAndBook(ctx context.Context, user *entity.User, book *entity.Book) (*entity.WishlistItem, error) {
	if user == nil || book == nil {
		return nil, nil
	}

	return repo.FindByUserIDAndBookID(ctx, user.ID, book.ID)
}

func (repo *wishlistRepository) FindByUserIDAndBookID(_ context.Context, userID, bookID uuid.UUID) (*entity.WishlistItem, error) {
	var item *entity.WishlistItem
	err := repo.s.view(func(txn *badger.Txn) error {
		id, found, err := lookupID(txn, pairIndexKey(idxWishlistPair, userID, bookID))
		if err != nil || !found {
			return err
		}
		item, err = loadWishlistItem(txn, wishlistKey(id))

		return err
	})
	if err != nil {
		return nil, storageError(err, "failed to find wishlist item")
	}

	return item, nil
}

func (repo *wishlistRepository) Delete(_ context.Context, item *entity.WishlistItem) error {
	if item == nil {
		return nil
	}

	err := repo.s.update(func(txn *badger.Txn) error {
		var record wishlistRecord
		found, err := getJSON(txn, wishlistKey(item.ID), &record)
		if err != nil || !found {
			return err
		}

		return deleteKeys(txn,
			wishlistKey(record.ID),
			pairIndexKey(idxWishlistPair, record.UserID, record.BookID),
			byUserIndexKey(idxWishlistByUser, record.UserID, record.ID),
		)
	})

	return storageError(err, "failed to delete wishlist item")
}

// loadWishlistItem reads the item and attaches its book when it is still in the catalog.
func loadWishlistItem(txn *badger.Txn, key []byte) (*entity.WishlistItem, error) {
	var record wishlistRecord
	found, err := getJSON(txn, key, &record)
	if err != nil || !found {
		return nil, err
	}

	item := record.toDomain()
	var book bookRecord
	if found, err := getJSON(txn, bookKey(record.BookID), &book); err != nil {
		return nil, err
	} else if found {
		item.Book = book.toDomain()
	}

	return item, nil
}
