package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"bookshelf/internal/domain/repository"
	mockRepo "bookshelf/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixture is a transaction manager mock that runs every callback against one mocked factory.
type txFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	books     *mockRepo.MockBookRepository
	users     *mockRepo.MockUserRepository
	profiles  *mockRepo.MockUserProfileRepository
	wishlist  *mockRepo.MockWishlistRepository
	reviews   *mockRepo.MockReviewRepository
}

func newTxFixture(t *testing.T) *txFixture {
	fx := &txFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		books:     mockRepo.NewMockBookRepository(t),
		users:     mockRepo.NewMockUserRepository(t),
		profiles:  mockRepo.NewMockUserProfileRepository(t),
		wishlist:  mockRepo.NewMockWishlistRepository(t),
		reviews:   mockRepo.NewMockReviewRepository(t),
	}

	fx.factory.EXPECT().NewBookRepository().Return(fx.books).Maybe()
	fx.factory.EXPECT().NewUserRepository().Return(fx.users).Maybe()
	fx.factory.EXPECT().NewUserProfileRepository().Return(fx.profiles).Maybe()
	fx.factory.EXPECT().NewWishlistRepository().Return(fx.wishlist).Maybe()
	fx.factory.EXPECT().NewReviewRepository().Return(fx.reviews).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Maybe()

	return fx
}
