package badgerstore

import (
	"context"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/config"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/identity"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(&config.BadgerConfig{InMemory: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func seedUser(t *testing.T, store *Store, username string) *entity.User {
	t.Helper()

	user, err := store.NewUserRepository().Save(context.Background(), &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	return user
}

func seedBook(t *testing.T, store *Store, key, title, author string) *entity.Book {
	t.Helper()

	book, err := store.NewBookRepository().Save(context.Background(), &entity.Book{ExternalKey: key, Title: title, Author: author})
	require.NoError(t, err)

	return book
}

func TestBookRepository_ReimportUpdatesSameRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.NewBookRepository()

	first, err := repo.Save(ctx, &entity.Book{ExternalKey: "OL123456W", Title: "Dune"})
	require.NoError(t, err)
	second, err := repo.Save(ctx, &entity.Book{ExternalKey: "/works/OL123456W", Title: "Dune: Deluxe Edition"})
	require.NoError(t, err)

	assert.Equal(t, identity.MustDeriveBookID("/works/OL123456W"), first.ID)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	found, err := repo.FindByExternalKey(ctx, "OL123456W")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Dune: Deluxe Edition", found.Title)
}

func TestBookRepository_ConcurrentImportsCollapse(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.NewBookRepository()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, &entity.Book{ExternalKey: "OL42W", Title: "Hitchhiker"})
			if err != nil {
				// losers of a write race report a conflict, never a duplicate
				assert.True(t, domainerrors.IsPersistenceConflict(err), "got %v", err)
			}
		}()
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBookRepository_SearchAndLookups(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.NewBookRepository()
	seedBook(t, store, "OL1W", "Dune", "Frank Herbert")
	seedBook(t, store, "OL2W", "Neuromancer", "William Gibson")
	_, err := repo.Save(ctx, &entity.Book{ExternalKey: "OL3W", Title: "Count Zero", Subtitle: "Sprawl trilogy", Author: "William Gibson"})
	require.NoError(t, err)

	none, err := repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, none)

	dune, err := repo.Search(ctx, "dune")
	require.NoError(t, err)
	require.Len(t, dune, 1)
	assert.Equal(t, "Dune", dune[0].Title)

	gibson, err := repo.SearchByTitleOrAuthor(ctx, "gibson")
	require.NoError(t, err)
	assert.Len(t, gibson, 2)

	sprawl, err := repo.Search(ctx, "SPRAWL")
	require.NoError(t, err)
	assert.Len(t, sprawl, 1)
	sprawl, err = repo.SearchByTitleOrAuthor(ctx, "sprawl")
	require.NoError(t, err)
	assert.Empty(t, sprawl)

	missing, err := repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
	missing, err = repo.FindByExternalKey(ctx, "OL404W")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_Uniqueness(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.NewUserRepository()
	alice := seedUser(t, store, "alice")

	_, err := repo.Save(ctx, &entity.User{Username: "alice", Email: "new@example.com"})
	var exists *domainerrors.UserAlreadyExistsError
	require.True(t, errors.As(err, &exists), "got %v", err)
	assert.Equal(t, domainerrors.FieldUsername, exists.Field)

	_, err = repo.Save(ctx, &entity.User{Username: "bob", Email: "alice@example.com"})
	require.True(t, errors.As(err, &exists), "got %v", err)
	assert.Equal(t, domainerrors.FieldEmail, exists.Field)

	// renaming releases the old username
	alice.Username = "alicia"
	_, err = repo.Save(ctx, alice)
	require.NoError(t, err)

	taken, err := repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, taken)
	taken, err = repo.ExistsByUsername(ctx, "alicia")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	byName, err := repo.FindByUsername(ctx, "alicia")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, alice.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
}

func TestUserProfileRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.NewUserProfileRepository()
	alice := seedUser(t, store, "alice")

	saved, err := repo.Save(ctx, &entity.UserProfile{UserID: alice.ID, DisplayName: "Alice", FavoriteGenres: []string{"sci-fi"}, IsPublic: true})
	require.NoError(t, err)
	assert.Equal(t, "alice", saved.Username)

	_, err = repo.Save(ctx, &entity.UserProfile{UserID: alice.ID})
	assert.True(t, domainerrors.IsPersistenceConflict(err), "got %v", err)

	byName, err := repo.FindByUserUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, []string{"sci-fi"}, byName.FavoriteGenres)

	ok, err := repo.ExistsByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	gone, err := repo.FindByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestWishlistRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.NewWishlistRepository()
	alice := seedUser(t, store, "alice")
	dune := seedBook(t, store, "OL1W", "Dune", "Frank Herbert")
	neuro := seedBook(t, store, "OL2W", "Neuromancer", "William Gibson")

	ok, err := repo.ExistsByUserAndBook(ctx, alice.ID, dune.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Save(ctx, &entity.WishlistItem{UserID: alice.ID, BookID: dune.ID, Priority: 1})
	require.NoError(t, err)

	ok, err = repo.ExistsByUserAndBook(ctx, alice.ID, dune.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.Save(ctx, &entity.WishlistItem{UserID: alice.ID, BookID: dune.ID})
	assert.True(t, domainerrors.IsPersistenceConflict(err), "got %v", err)

	_, err = repo.Save(ctx, &entity.WishlistItem{UserID: alice.ID, BookID: neuro.ID, Priority: 3})
	require.NoError(t, err)

	items, err := repo.FindAllByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, neuro.ID, items[0].BookID)
	require.NotNil(t, items[1].Book)
	assert.Equal(t, "Dune", items[1].Book.Title)

	item, err := repo.FindByUserAndBook(ctx, alice, dune)
	require.NoError(t, err)
	require.NotNil(t, item)
	require.NoError(t, repo.Delete(ctx, item))

	ok, err = repo.ExistsByUserAndBook(ctx, alice.ID, dune.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	items, err = repo.FindAllByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// Two transactions that both pass the existence check cannot both commit.
func TestWishlistRepository_RacingCheckThenActConflicts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	alice := seedUser(t, store, "alice")
	dune := seedBook(t, store, "OL1W", "Dune", "Frank Herbert")

	txn1 := store.db.NewTransaction(true)
	defer txn1.Discard()
	txn2 := store.db.NewTransaction(true)
	defer txn2.Discard()

	for _, txn := range []*badger.Txn{txn1, txn2} {
		repo := &wishlistRepository{session{db: store.db, txn: txn}}
		ok, err := repo.ExistsByUserAndBook(ctx, alice.ID, dune.ID)
		require.NoError(t, err)
		require.False(t, ok)
		_, err = repo.Save(ctx, &entity.WishlistItem{UserID: alice.ID, BookID: dune.ID})
		require.NoError(t, err)
	}

	require.NoError(t, txn1.Commit())
	err := translateCommitError(txn2.Commit())
	assert.True(t, domainerrors.IsPersistenceConflict(err), "got %v", err)

	items, err := store.NewWishlistRepository().FindAllByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUniqueIndexConflictsKeepCause(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	alice := seedUser(t, store, "alice")
	dune := seedBook(t, store, "OL1W", "Dune", "Frank Herbert")

	tests := []struct {
		name string
		save func() error
	}{
		{"wishlist", func() error {
			_, err := store.NewWishlistRepository().Save(ctx, &entity.WishlistItem{UserID: alice.ID, BookID: dune.ID})
			return err
		}},
		{"review", func() error {
			_, err := store.NewReviewRepository().Save(ctx, &entity.Review{UserID: alice.ID, BookID: dune.ID, Content: "Great"})
			return err
		}},
		{"profile", func() error {
			_, err := store.NewUserProfileRepository().Save(ctx, &entity.UserProfile{UserID: alice.ID})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.save())

			err := tt.save()
			var conflict *domainerrors.PersistenceConflictError
			require.True(t, errors.As(err, &conflict), "got %v", err)
			require.NotNil(t, conflict.Unwrap())
			assert.True(t, errors.Is(err, errUniqueIndexTaken))
		})
	}
}

func TestReviewRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.NewReviewRepository()
	alice := seedUser(t, store, "alice")
	dune := seedBook(t, store, "OL1W", "Dune", "Frank Herbert")

	review, err := repo.Save(ctx, &entity.Review{UserID: alice.ID, BookID: dune.ID, Content: "Great"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		review.Content = "Edited"
		_, err = repo.Save(ctx, review)
		require.NoError(t, err)
	}
	_, err = repo.Save(ctx, &entity.Review{UserID: alice.ID, BookID: dune.ID, Content: "Duplicate"})
	assert.True(t, domainerrors.IsPersistenceConflict(err), "got %v", err)

	found, err := repo.FindByUserIDAndBookID(ctx, alice.ID, dune.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, review.ID, found.ID)
	assert.Equal(t, "Edited", found.Content)

	list, err := repo.FindByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, review))
	found, err = repo.FindByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTransactionManager(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tm := store.NewTransactionManager()
	errBoom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewUserRepository().Save(ctx, &entity.User{Username: "ghost", Email: "ghost@example.com"}); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	ghost, err := store.NewUserRepository().FindByUsername(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, ghost)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		user, err := f.NewUserRepository().Save(ctx, &entity.User{Username: "bob", Email: "bob@example.com"})
		if err != nil {
			return err
		}
		// reads inside the transaction see its own writes
		again, err := f.NewUserRepository().FindByUsername(ctx, "bob")
		if err != nil {
			return err
		}
		require.NotNil(t, again)
		_, err = f.NewUserProfileRepository().Save(ctx, &entity.UserProfile{UserID: user.ID})

		return err
	})
	require.NoError(t, err)

	profile, err := store.NewUserProfileRepository().FindByUserUsername(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "bob", profile.Username)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, tm.Execute(cancelled, func(repository.RepositoryFactory) error { return nil }))
}
