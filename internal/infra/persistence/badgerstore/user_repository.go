package badgerstore

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
)

type userRepository struct {
	s session
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := repo.s.view(func(txn *badger.Txn) error {
		var err error
		user, err = loadUser(txn, id)

		return err
	})
	if err != nil {
		return nil, storageError(err, "failed to find user")
	}

	return user, nil
}

func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return repo.findByIndex(usernameIndexKey(username))
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return repo.findByIndex(emailIndexKey(email))
}

func (repo *userRepository) findByIndex(indexKey []byte) (*entity.User, error) {
	var user *entity.User
	err := repo.s.view(func(txn *badger.Txn) error {
		id, found, err := lookupID(txn, indexKey)
		if err != nil || !found {
			return err
		}
		user, err = loadUser(txn, id)

		return err
	})
	if err != nil {
		return nil, storageError(err, "failed to find user")
	}

	return user, nil
}

// Save checks the username and email index keys inside the write transaction.
func (repo *userRepository) Save(_ context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("user is nil")
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	var saved *userRecord
	err := repo.s.update(func(txn *badger.Txn) error {
		record := fromUser(user)
		now := time.Now().UTC()

		var existing userRecord
		found, err := getJSON(txn, userKey(user.ID), &existing)
		if err != nil {
			return err
		}
		if found {
			record.CreatedAt = existing.CreatedAt
		} else {
			record.CreatedAt = now
		}
		record.UpdatedAt = now

		if owner, taken, err := lookupID(txn, usernameIndexKey(record.Username)); err != nil {
			return err
		} else if taken && owner != record.ID {
			return domainerrors.NewUsernameTakenError()
		}
		if owner, taken, err := lookupID(txn, emailIndexKey(record.Email)); err != nil {
			return err
		} else if taken && owner != record.ID {
			return domainerrors.NewEmailTakenError()
		}

		if found {
			if existing.Username != record.Username {
				if err := deleteKeys(txn, usernameIndexKey(existing.Username)); err != nil {
					return err
				}
			}
			if existing.Email != record.Email {
				if err := deleteKeys(txn, emailIndexKey(existing.Email)); err != nil {
					return err
				}
			}
		}

		id := []byte(record.ID.String())
		if err := txn.Set(usernameIndexKey(record.Username), id); err != nil {
			return err
		}
		if err := txn.Set(emailIndexKey(record.Email), id); err != nil {
			return err
		}
		if err := setJSON(txn, userKey(record.ID), record); err != nil {
			return err
		}
		saved = record

		return nil
	})
	if err != nil {
		return nil, storageError(err, "failed to save user")
	}

	return saved.toDomain(), nil
}

func (repo *userRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	return repo.indexExists(usernameIndexKey(username))
}

func (repo *userRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return repo.indexExists(emailIndexKey(email))
}

func (repo *userRepository) indexExists(key []byte) (bool, error) {
	var found bool
	err := repo.s.view(func(txn *badger.Txn) error {
		var err error
		found, err = exists(txn, key)

		return err
	})
	if err != nil {
		return false, storageError(err, "failed to check user existence")
	}

	return found, nil
}

func loadUser(txn *badger.Txn, id uuid.UUID) (*entity.User, error) {
	var record userRecord
	found, err := getJSON(txn, userKey(id), &record)
	if err != nil || !found {
		return nil, err
	}

	return record.toDomain(), nil
}

// lookupID resolves an index entry to the id it points at.
func lookupID(txn *badger.Txn, indexKey []byte) (uuid.UUID, bool, error) {
	raw, found, err := getString(txn, indexKey)
	if err != nil || !found {
		return uuid.Nil, false, err
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, domainerrors.NewDatabaseExecuteError(err, "corrupt index entry "+string(indexKey))
	}

	return id, true, nil
}
