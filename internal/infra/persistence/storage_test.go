package persistence

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/config"
	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
)

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "mongo"

	_, err := Open(context.Background(), cfg, slog.New(slog.DiscardHandler))
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestOpen_Badger(t *testing.T) {
	cfg := &config.Config{Badger: &config.BadgerConfig{InMemory: true}}
	cfg.Storage.Driver = config.StorageDriverBadger

	storage, err := Open(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer func() { assert.NoError(t, storage.Close()) }()
	assert.Equal(t, config.StorageDriverBadger, storage.Driver())

	book := &entity.Book{ExternalKey: "/works/OL27448W", Title: "The Lord of the Rings"}
	require.NoError(t, book.AssignIdentity())

	err = storage.TxManager.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		_, err := f.NewBookRepository().Save(context.Background(), book)

		return err
	})
	require.NoError(t, err)

	found, err := storage.Books.FindByExternalKey(context.Background(), "OL27448W")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, book.ID, found.ID)
}
