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

type reviewRepository struct {
	s session
}

// Save enforces one review per (user, book) through the pair index entry.
func (repo *reviewRepository) Save(_ context.Context, review *entity.Review) (*entity.Review, error) {
	if review == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("review is nil")
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}

	var saved *reviewRecord
	err := repo.s.update(func(txn *badger.Txn) error {
		record := fromReview(review)
		now := time.Now().UTC()

		var existing reviewRecord
		found, err := getJSON(txn, reviewKey(record.ID), &existing)
		if err != nil {
			return err
		}
		if found {
			record.CreatedAt = existing.CreatedAt
		} else {
			record.CreatedAt = now
		}
		record.UpdatedAt = now

		pairKey := pairIndexKey(idxReviewPair, record.UserID, record.BookID)
		owner, taken, err := lookupID(txn, pairKey)
		if err != nil {
			return err
		}
		if taken && owner != record.ID {
			return uniqueIndexConflict(pairKey, "user has already reviewed this book")
		}

		if found && (existing.UserID != record.UserID || existing.BookID != record.BookID) {
			if err := deleteKeys(txn,
				pairIndexKey(idxReviewPair, existing.UserID, existing.BookID),
				byUserIndexKey(idxReviewByUser, existing.UserID, existing.ID),
			); err != nil {
				return err
			}
		}

		if err := txn.Set(pairKey, []byte(record.ID.String())); err != nil {
			return err
		}
		if err := txn.Set(byUserIndexKey(idxReviewByUser, record.UserID, record.ID), nil); err != nil {
			return err
		}
		if err := setJSON(txn, reviewKey(record.ID), record); err != nil {
			return err
		}
		saved = record

		return nil
	})
	if err != nil {
		return nil, storageError(err, "failed to save review")
	}

	return saved.toDomain(), nil
}

func (repo *reviewRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	var review *entity.Review
	err := repo.s.view(func(txn *badger.Txn) error {
		var err error
		review, err = loadReview(txn, id)

		return err
	})
	if err != nil {
		return nil, storageError(err, "failed to find review")
	}

	return review, nil
}

// FindByUserID returns newest first.
func (repo *reviewRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	reviews := []*entity.Review{}
	err := repo.s.view(func(txn *badger.Txn) error {
		for _, rawID := range scanKeySuffixes(txn, byUserIndexPrefix(idxReviewByUser, userID)) {
			id, err := uuid.Parse(rawID)
			if err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "corrupt review index entry")
			}
			review, err := loadReview(txn, id)
			if err != nil {
				return err
			}
			if review != nil {
				reviews = append(reviews, review)
			}
		}

		return nil
	})
	if err != nil {
		return nil, storageError(err, "failed to list reviews")
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})

	return reviews, nil
}

func (repo *reviewRepository) FindByUserIDAndBookID(_ context.Context, userID, bookID uuid.UUID) (*entity.Review, error) {
	var review *entity.Review
	err := repo.s.view(func(txn *badger.Txn) error {
		id, found, err := lookupID(txn, pairIndexKey(idxReviewPair, userID, bookID))
		if err != nil || !found {
			return err
		}
		review, err = loadReview(txn, id)

		return err
	})
	if err != nil {
		return nil, storageError(err, "failed to find review")
	}

	return review, nil
}

func (repo *reviewRepository) Delete(_ context.Context, review *entity.Review) error {
	if review == nil {
		return nil
	}

	err := repo.s.update(func(txn *badger.Txn) error {
		var record reviewRecord
		found, err := getJSON(txn, reviewKey(review.ID), &record)
		if err != nil || !found {
			return err
		}

		return deleteKeys(txn,
			reviewKey(record.ID),
			pairIndexKey(idxReviewPair, record.UserID, record.BookID),
			byUserIndexKey(idxReviewByUser, record.UserID, record.ID),
		)
	})

	return storageError(err, "failed to delete review")
}

func loadReview(txn *badger.Txn, id uuid.UUID) (*entity.Review, error) {
	var record reviewRecord
	found, err := getJSON(txn, reviewKey(id), &record)
	if err != nil || !found {
		return nil, err
	}

	return record.toDomain(), nil
}
