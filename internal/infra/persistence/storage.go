// Package persistence selects and opens the configured storage backend.
package persistence

import (
	"context"
	"log/slog"

	"bookshelf/config"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/errors"
	"bookshelf/internal/infra/persistence/badgerstore"
	"bookshelf/internal/infra/persistence/postgres"
)

// Storage exposes the ports every use case is built on. Both backends honor the same contract.
type Storage struct {
	TxManager repository.TransactionManager
	Books     repository.BookRepository

	driver string
	close  func() error
}

// Driver names the backend in use.
func (s *Storage) Driver() string {
	return s.driver
}

// Close releases the backend.
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}

	return s.close()
}

// Open opens the backend named by cfg.Storage.Driver. The caller must Close it.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}

		return &Storage{
			TxManager: postgres.NewTransactionManager(db.DB),
			Books:     postgres.NewBookRepository(db.DB),
			driver:    config.StorageDriverPostgres,
			close:     db.Close,
		}, nil

	case config.StorageDriverBadger:
		store, err := badgerstore.Open(cfg.Badger, logger)
		if err != nil {
			return nil, err
		}

		return &Storage{
			TxManager: store.NewTransactionManager(),
			Books:     store.NewBookRepository(),
			driver:    config.StorageDriverBadger,
			close:     store.Close,
		}, nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}
