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
	"bookshelf/internal/errors"
	"bookshelf/internal/usecase"
)

func TestReviewService_WriteReview_Success(t *testing.T) {
	fx := newTxFixture(t)
	book := sampleBook()
	svc := NewReviewService(fx.txManager, newStubCatalog(book), newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.reviews.EXPECT().FindByUserIDAndBookID(ctx, userID, book.ID).Return(nil, nil)
	fx.reviews.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(_ context.Context, r *entity.Review) (*entity.Review, error) { return r, nil })

	review, err := svc.WriteReview(ctx, userID, &usecase.WriteReviewInput{
		BookID:   book.ID,
		Content:  "  A classic.  ",
		IsPublic: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "A classic.", review.Content)
	assert.Equal(t, book.ID, review.BookID)
	assert.NotEqual(t, uuid.Nil, review.ID)
}

func TestReviewService_WriteReview_SecondReviewRejected(t *testing.T) {
	fx := newTxFixture(t)
	book := sampleBook()
	svc := NewReviewService(fx.txManager, newStubCatalog(book), newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.reviews.EXPECT().FindByUserIDAndBookID(ctx, userID, book.ID).
		Return(&entity.Review{ID: uuid.New(), UserID: userID, BookID: book.ID}, nil)

	_, err := svc.WriteReview(ctx, userID, &usecase.WriteReviewInput{ExternalKey: "OL27448W", Content: "again"})

	assert.True(t, errors.Is(err, domainerrors.ErrReviewExists))
}

func TestReviewService_WriteReview_StorageConflictIsDuplicate(t *testing.T) {
	fx := newTxFixture(t)
	book := sampleBook()
	svc := NewReviewService(fx.txManager, newStubCatalog(book), newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.reviews.EXPECT().FindByUserIDAndBookID(ctx, userID, book.ID).Return(nil, nil).Once()
	fx.reviews.EXPECT().Save(ctx, mock.Anything).
		Return(nil, domainerrors.NewPersistenceConflictError(errors.New("unique violation"), "reviews"))
	fx.reviews.EXPECT().FindByUserIDAndBookID(ctx, userID, book.ID).Return(&entity.Review{ID: uuid.New()}, nil).Once()

	_, err := svc.WriteReview(ctx, userID, &usecase.WriteReviewInput{BookID: book.ID, Content: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrReviewExists))
}

func TestReviewService_WriteReview_EmptyContent(t *testing.T) {
	fx := newTxFixture(t)
	svc := NewReviewService(fx.txManager, newStubCatalog(), newDiscardLogger())

	_, err := svc.WriteReview(context.Background(), uuid.New(), &usecase.WriteReviewInput{BookID: uuid.New(), Content: " "})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestReviewService_ListUserReviews_Visibility(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), UserID: userID, IsPublic: true},
		{ID: uuid.New(), UserID: userID, IsPublic: false},
	}

	tests := []struct {
		name     string
		viewerID uuid.UUID
		want     int
	}{
		{"owner sees all", userID, 2},
		{"other user sees public", uuid.New(), 1},
		{"anonymous sees public", uuid.Nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newTxFixture(t)
			svc := NewReviewService(fx.txManager, newStubCatalog(), newDiscardLogger())
			fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			fx.reviews.EXPECT().FindByUserID(ctx, userID).Return(reviews, nil)

			got, err := svc.ListUserReviews(ctx, userID, tt.viewerID)

			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestReviewService_GetReview_NotFound(t *testing.T) {
	fx := newTxFixture(t)
	svc := NewReviewService(fx.txManager, newStubCatalog(), newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()
	fx.reviews.EXPECT().FindByID(ctx, id).Return(nil, nil)

	_, err := svc.GetReview(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestReviewService_GetBookReview(t *testing.T) {
	fx := newTxFixture(t)
	svc := NewReviewService(fx.txManager, newStubCatalog(), newDiscardLogger())
	ctx := context.Background()
	userID, bookID := uuid.New(), uuid.New()
	want := &entity.Review{ID: uuid.New(), UserID: userID, BookID: bookID}
	fx.reviews.EXPECT().FindByUserIDAndBookID(ctx, userID, bookID).Return(want, nil)

	got, err := svc.GetBookReview(ctx, userID, bookID)

	require.NoError(t, err)
	assert.Same(t, want, got)
}
