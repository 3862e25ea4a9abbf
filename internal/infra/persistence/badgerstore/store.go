// Package badgerstore implements the repositories on an embedded Badger database.
//
// Records are JSON values under "<kind>:<id>". Uniqueness rules are kept as index
// keys ("idx:...") that are read and written in the same transaction as the record,
// so Badger's conflict detection turns a racing check-then-act into ErrConflict.
package badgerstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"bookshelf/config"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/errors"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (or creates) the database described by cfg.
func Open(cfg *config.BadgerConfig, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil // Disable Badger's internal logging
	opts.SyncWrites = cfg.SyncWrites
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open badger db")
	}

	if logger != nil {
		logger.Info("Badger database opened", slog.String("path", cfg.Path), slog.Bool("in_memory", cfg.InMemory))
	}

	return &Store{db: db, logger: logger}, nil
}

// Close gracefully closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing Badger database")
	}

	return s.db.Close()
}

// session runs repository work either in its own transaction or in a bound one.
type session struct {
	db  *badger.DB
	txn *badger.Txn
}

func (s session) view(fn func(txn *badger.Txn) error) error {
	if s.txn != nil {
		return fn(s.txn)
	}

	return s.db.View(fn)
}

func (s session) update(fn func(txn *badger.Txn) error) error {
	if s.txn != nil {
		return fn(s.txn)
	}

	return translateCommitError(s.db.Update(fn))
}

// errUniqueIndexTaken is the cause of conflicts detected on an index key.
var errUniqueIndexTaken = errors.New("unique index key already taken")

func uniqueIndexConflict(key []byte, details string) error {
	return domainerrors.NewPersistenceConflictError(errors.Wrapf(errUniqueIndexTaken, "key %q", key), details)
}

func translateCommitError(err error) error {
	if errors.Is(err, badger.ErrConflict) {
		return domainerrors.NewPersistenceConflictError(err, "concurrent write to the same record")
	}

	return err
}

// NewBookRepository returns a BookRepository with its own transactions.
func (s *Store) NewBookRepository() repository.BookRepository {
	return &bookRepository{session{db: s.db}}
}

// NewUserRepository returns a UserRepository with its own transactions.
func (s *Store) NewUserRepository() repository.UserRepository {
	return &userRepository{session{db: s.db}}
}

// NewUserProfileRepository returns a UserProfileRepository with its own transactions.
func (s *Store) NewUserProfileRepository() repository.UserProfileRepository {
	return &userProfileRepository{session{db: s.db}}
}

// NewWishlistRepository returns a WishlistRepository with its own transactions.
func (s *Store) NewWishlistRepository() repository.WishlistRepository {
	return &wishlistRepository{session{db: s.db}}
}

// NewReviewRepository returns a ReviewRepository with its own transactions.
func (s *Store) NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{session{db: s.db}}
}

// txRepositoryFactory binds every repository to one read-write transaction.
type txRepositoryFactory struct {
	s session
}

func (f *txRepositoryFactory) NewBookRepository() repository.BookRepository {
	return &bookRepository{f.s}
}

func (f *txRepositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{f.s}
}

func (f *txRepositoryFactory) NewUserProfileRepository() repository.UserProfileRepository {
	return &userProfileRepository{f.s}
}

func (f *txRepositoryFactory) NewWishlistRepository() repository.WishlistRepository {
	return &wishlistRepository{f.s}
}

func (f *txRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{f.s}
}

type transactionManager struct {
	db *badger.DB
}

// NewTransactionManager returns a TransactionManager over Badger read-write transactions.
func (s *Store) NewTransactionManager() repository.TransactionManager {
	return &transactionManager{db: s.db}
}

// Execute commits when fn succeeds and discards otherwise. A commit that lost
// against a concurrent writer returns a PersistenceConflictError.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	return translateCommitError(tm.db.Update(func(txn *badger.Txn) error {
		return fn(&txRepositoryFactory{s: session{db: tm.db, txn: txn}})
	}))
}

// --- key/value helpers ---

// getJSON decodes the value at key into dest. It reports false when the key is absent.
func getJSON(txn *badger.Txn, key []byte, dest any) (bool, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "get %s", key)
	}

	if err := item.Value(func(val []byte) error {
		return decode(val, dest)
	}); err != nil {
		return false, errors.Wrapf(err, "decode %s", key)
	}

	return true, nil
}

func decode(val []byte, dest any) error {
	return errors.Wrap(json.Unmarshal(val, dest), "failed to unmarshal value")
}

func setJSON(txn *badger.Txn, key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal value")
	}

	return txn.Set(key, data)
}

// getString reads a plain string value such as an index entry.
func getString(txn *badger.Txn, key []byte) (string, bool, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get %s", key)
	}

	val, err := item.ValueCopy(nil)
	if err != nil {
		return "", false, errors.Wrapf(err, "read %s", key)
	}

	return string(val), true, nil
}

func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "get %s", key)
	}

	return true, nil
}

// deleteKeys removes keys, ignoring ones that are already gone.
func deleteKeys(txn *badger.Txn, keys ...[]byte) error {
	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return errors.Wrapf(err, "delete %s", key)
		}
	}

	return nil
}

// scanValues calls fn with every value under prefix. The iterator is closed before returning.
func scanValues(txn *badger.Txn, prefix []byte, fn func(val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		if err := it.Item().Value(fn); err != nil {
			return err
		}
	}

	return nil
}

// scanKeySuffixes returns the part of every key under prefix that follows the prefix.
func scanKeySuffixes(txn *badger.Txn, prefix []byte) []string {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	var suffixes []string
	for it.Rewind(); it.Valid(); it.Next() {
		key := it.Item().Key()
		suffixes = append(suffixes, string(key[len(prefix):]))
	}

	return suffixes
}

// storageError wraps a non-domain failure as a database execution error.
func storageError(err error, details string) error {
	if err == nil {
		return nil
	}
	if _, ok := domainerrors.AsAppError(err); ok {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
