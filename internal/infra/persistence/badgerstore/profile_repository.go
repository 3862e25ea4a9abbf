package badgerstore

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
)

type userProfileRepository struct {
	s session
}

func (repo *userProfileRepository) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profile *entity.UserProfile
	err := repo.s.view(func(txn *badger.Txn) error {
		var err error
		profile, err = loadProfileByUser(txn, userID)

		return err
	})
	if err != nil {
		return nil, storageError(err, "failed to find profile by user id")
	}

	return profile, nil
}

func (repo *userProfileRepository) FindByUserUsername(_ context.Context, username string) (*entity.UserProfile, error) {
	var profile *entity.UserProfile
	err := repo.s.view(func(txn *badger.Txn) error {
		userID, found, err := lookupID(txn, usernameIndexKey(username))
		if err != nil || !found {
			return err
		}
		profile, err = loadProfileByUser(txn, userID)

		return err
	})
	if err != nil {
		return nil, storageError(err, "failed to find profile by username")
	}

	return profile, nil
}

func (repo *userProfileRepository) ExistsByUserID(_ context.Context, userID uuid.UUID) (bool, error) {
	var found bool
	err := repo.s.view(func(txn *badger.Txn) error {
		var err error
		found, err = exists(txn, profileUserIndexKey(userID))

		return err
	})
	if err != nil {
		return false, storageError(err, "failed to check profile existence")
	}

	return found, nil
}

// Save rejects a second profile for the same user with a PersistenceConflictError.
func (repo *userProfileRepository) Save(_ context.Context, profile *entity.UserProfile) (*entity.UserProfile, error) {
	if profile == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("profile is nil")
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	var saved *entity.UserProfile
	err := repo.s.update(func(txn *badger.Txn) error {
		record := fromProfile(profile)
		now := time.Now().UTC()

		var existing profileRecord
		found, err := getJSON(txn, profileKey(record.ID), &existing)
		if err != nil {
			return err
		}
		if found {
			record.CreatedAt = existing.CreatedAt
			record.UserID = existing.UserID
		} else {
			record.CreatedAt = now
		}
		record.UpdatedAt = now

		owner, taken, err := lookupID(txn, profileUserIndexKey(record.UserID))
		if err != nil {
			return err
		}
		if taken && owner != record.ID {
			return uniqueIndexConflict(profileUserIndexKey(record.UserID), "user already has a profile")
		}

		if err := txn.Set(profileUserIndexKey(record.UserID), []byte(record.ID.String())); err != nil {
			return err
		}
		if err := setJSON(txn, profileKey(record.ID), record); err != nil {
			return err
		}

		saved = record.toDomain()
		if user, err := loadUser(txn, record.UserID); err == nil && user != nil {
			saved.Username = user.Username
		}

		return nil
	})
	if err != nil {
		return nil, storageError(err, "failed to save profile")
	}

	return saved, nil
}

func (repo *userProfileRepository) DeleteByID(_ context.Context, id uuid.UUID) error {
	err := repo.s.update(func(txn *badger.Txn) error {
		var record profileRecord
		found, err := getJSON(txn, profileKey(id), &record)
		if err != nil || !found {
			return err
		}

		return deleteKeys(txn, profileKey(id), profileUserIndexKey(record.UserID))
	})

	return storageError(err, "failed to delete profile")
}

func loadProfileByUser(txn *badger.Txn, userID uuid.UUID) (*entity.UserProfile, error) {
	profileID, found, err := lookupID(txn, profileUserIndexKey(userID))
	if err != nil || !found {
		return nil, err
	}

	var record profileRecord
	found, err = getJSON(txn, profileKey(profileID), &record)
	if err != nil || !found {
		return nil, err
	}

	profile := record.toDomain()
	user, err := loadUser(txn, userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		profile.Username = user.Username
	}

	return profile, nil
}
