package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/identity"
	"bookshelf/internal/errors"
	"bookshelf/internal/usecase"
)

// stubCatalog resolves books from a fixed set.
type stubCatalog struct {
	usecase.CatalogUsecase
	books map[uuid.UUID]*entity.Book
}

func newStubCatalog(books ...*entity.Book) *stubCatalog {
	c := &stubCatalog{books: make(map[uuid.UUID]*entity.Book, len(books))}
	for _, b := range books {
		c.books[b.ID] = b
	}

	return c
}

func (c *stubCatalog) GetBook(_ context.Context, id uuid.UUID) (*entity.Book, error) {
	if b, ok := c.books[id]; ok {
		return b, nil
	}

	return nil, errors.WithStack(domainerrors.ErrBookNotFound)
}

func (c *stubCatalog) GetOrImportByKey(_ context.Context, key string) (*entity.Book, error) {
	id, err := identity.DeriveBookID(key)
	if err != nil {
		return nil, err
	}

	return c.GetBook(context.Background(), id)
}

func sampleBook() *entity.Book {
	key := "/works/OL27448W"

	return &entity.Book{ID: identity.MustDeriveBookID(key), ExternalKey: key, Title: "The Lord of the Rings"}
}

func TestWishlistService_AddToWishlist_Success(t *testing.T) {
	fx := newTxFixture(t)
	book := sampleBook()
	svc := NewWishlistService(fx.txManager, newStubCatalog(book), newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.wishlist.EXPECT().ExistsByUserAndBook(ctx, userID, book.ID).Return(false, nil)
	fx.wishlist.EXPECT().
		Save(ctx, mock.MatchedBy(func(item *entity.WishlistItem) bool {
			return item.UserID == userID && item.BookID == book.ID && item.Priority == 3 && item.ID != uuid.Nil
		})).
		RunAndReturn(func(_ context.Context, item *entity.WishlistItem) (*entity.WishlistItem, error) {
			return item, nil
		})

	item, err := svc.AddToWishlist(ctx, userID, &usecase.AddWishlistItemInput{
		ExternalKey: "OL27448W",
		Description: "re-read",
		Priority:    3,
	})

	require.NoError(t, err)
	assert.Equal(t, book, item.Book)
	assert.Equal(t, "re-read", item.Description)
}

func TestWishlistService_AddToWishlist_Duplicate(t *testing.T) {
	fx := newTxFixture(t)
	book := sampleBook()
	svc := NewWishlistService(fx.txManager, newStubCatalog(book), newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.wishlist.EXPECT().ExistsByUserAndBook(ctx, userID, book.ID).Return(true, nil)

	_, err := svc.AddToWishlist(ctx, userID, &usecase.AddWishlistItemInput{BookID: book.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWishlistItemExists))

	var opErr *domainerrors.WishlistOperationError
	assert.False(t, errors.As(err, &opErr))
}

func TestWishlistService_AddToWishlist_StorageConflictIsDuplicate(t *testing.T) {
	fx := newTxFixture(t)
	book := sampleBook()
	svc := NewWishlistService(fx.txManager, newStubCatalog(book), newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	// The racing writer commits between the check and the insert.
	fx.wishlist.EXPECT().ExistsByUserAndBook(ctx, userID, book.ID).Return(false, nil).Once()
	fx.wishlist.EXPECT().Save(ctx, mock.Anything).
		Return(nil, domainerrors.NewPersistenceConflictError(errors.New("unique violation"), "wishlist"))
	fx.wishlist.EXPECT().ExistsByUserAndBook(ctx, userID, book.ID).Return(true, nil).Once()

	_, err := svc.AddToWishlist(ctx, userID, &usecase.AddWishlistItemInput{BookID: book.ID})

	assert.True(t, errors.Is(err, domainerrors.ErrWishlistItemExists))
}

func TestWishlistService_AddToWishlist_FailuresAreWrapped(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unknown book", func(t *testing.T) {
		fx := newTxFixture(t)
		svc := NewWishlistService(fx.txManager, newStubCatalog(), newDiscardLogger())

		_, err := svc.AddToWishlist(ctx, userID, &usecase.AddWishlistItemInput{BookID: uuid.New()})

		var opErr *domainerrors.WishlistOperationError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, "add", opErr.Op)
		assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
		assert.Equal(t, 404, opErr.HTTPCode())
	})

	t.Run("no book reference", func(t *testing.T) {
		fx := newTxFixture(t)
		svc := NewWishlistService(fx.txManager, newStubCatalog(), newDiscardLogger())

		_, err := svc.AddToWishlist(ctx, userID, &usecase.AddWishlistItemInput{})

		var opErr *domainerrors.WishlistOperationError
		require.True(t, errors.As(err, &opErr))
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := newTxFixture(t)
		book := sampleBook()
		svc := NewWishlistService(fx.txManager, newStubCatalog(book), newDiscardLogger())
		fx.users.EXPECT().FindByID(ctx, userID).Return(nil, nil)

		_, err := svc.AddToWishlist(ctx, userID, &usecase.AddWishlistItemInput{BookID: book.ID})

		var opErr *domainerrors.WishlistOperationError
		require.True(t, errors.As(err, &opErr))
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := newTxFixture(t)
		book := sampleBook()
		svc := NewWishlistService(fx.txManager, newStubCatalog(book), newDiscardLogger())
		cause := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "wishlist")
		fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		fx.wishlist.EXPECT().ExistsByUserAndBook(ctx, userID, book.ID).Return(false, cause)

		_, err := svc.AddToWishlist(ctx, userID, &usecase.AddWishlistItemInput{BookID: book.ID})

		var opErr *domainerrors.WishlistOperationError
		require.True(t, errors.As(err, &opErr))
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", opErr.ErrorCode())
	})
}

func TestWishlistService_GetWishlist(t *testing.T) {
	fx := newTxFixture(t)
	svc := NewWishlistService(fx.txManager, newStubCatalog(), newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.WishlistItem{{ID: uuid.New(), UserID: userID}}

	fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.wishlist.EXPECT().FindAllByUser(ctx, userID).Return(items, nil)

	got, err := svc.GetWishlist(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestWishlistService_UpdateWishlistItem(t *testing.T) {
	fx := newTxFixture(t)
	svc := NewWishlistService(fx.txManager, newStubCatalog(), newDiscardLogger())
	ctx := context.Background()
	userID, bookID := uuid.New(), uuid.New()
	existing := &entity.WishlistItem{ID: uuid.New(), UserID: userID, BookID: bookID, Description: "old", Priority: 1}

	fx.wishlist.EXPECT().FindByUserIDAndBookID(ctx, userID, bookID).Return(existing, nil)
	fx.wishlist.EXPECT().Save(ctx, existing).Return(existing, nil)

	priority, public := 5, true
	item, err := svc.UpdateWishlistItem(ctx, userID, bookID, &usecase.UpdateWishlistItemInput{
		Priority: &priority,
		IsPublic: &public,
	})

	require.NoError(t, err)
	assert.Equal(t, "old", item.Description)
	assert.Equal(t, 5, item.Priority)
	assert.True(t, item.IsPublic)
}

func TestWishlistService_RemoveFromWishlist(t *testing.T) {
	ctx := context.Background()
	userID, bookID := uuid.New(), uuid.New()

	t.Run("removes", func(t *testing.T) {
		fx := newTxFixture(t)
		svc := NewWishlistService(fx.txManager, newStubCatalog(), newDiscardLogger())
		item := &entity.WishlistItem{ID: uuid.New(), UserID: userID, BookID: bookID}
		fx.wishlist.EXPECT().FindByUserIDAndBookID(ctx, userID, bookID).Return(item, nil)
		fx.wishlist.EXPECT().Delete(ctx, item).Return(nil)

		require.NoError(t, svc.RemoveFromWishlist(ctx, userID, bookID))
	})

	t.Run("missing item", func(t *testing.T) {
		fx := newTxFixture(t)
		svc := NewWishlistService(fx.txManager, newStubCatalog(), newDiscardLogger())
		fx.wishlist.EXPECT().FindByUserIDAndBookID(ctx, userID, bookID).Return(nil, nil)

		err := svc.RemoveFromWishlist(ctx, userID, bookID)

		assert.True(t, errors.Is(err, domainerrors.ErrWishlistItemNotFound))
		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.HTTPCode())
	})
}
