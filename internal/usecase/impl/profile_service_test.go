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

func ptr[T any](v T) *T { return &v }

func TestProfileService_UpsertProfile_CreatesLazily(t *testing.T) {
	fx := newTxFixture(t)
	svc := NewProfileService(fx.txManager, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Username: "alice"}, nil)
	fx.profiles.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)
	fx.profiles.EXPECT().Save(ctx, mock.AnythingOfType("*entity.UserProfile")).
		RunAndReturn(func(_ context.Context, p *entity.UserProfile) (*entity.UserProfile, error) { return p, nil })

	profile, err := svc.UpsertProfile(ctx, userID, &usecase.UpsertProfileInput{
		DisplayName:    ptr(" Alice "),
		FavoriteGenres: []string{"fantasy", "history"},
		SocialLinks:    map[string]string{"mastodon": "https://example.social/@alice"},
		IsPublic:       ptr(true),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, profile.ID)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice", profile.DisplayName)
	assert.Equal(t, []string{"fantasy", "history"}, profile.FavoriteGenres)
	assert.True(t, profile.IsPublic)
}

func TestProfileService_UpsertProfile_UpdatesExisting(t *testing.T) {
	fx := newTxFixture(t)
	svc := NewProfileService(fx.txManager, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserProfile{ID: uuid.New(), UserID: userID, Bio: "keep", ReadingGoal: 10}

	fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Username: "alice"}, nil)
	fx.profiles.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	fx.profiles.EXPECT().Save(ctx, existing).Return(existing, nil)

	profile, err := svc.UpsertProfile(ctx, userID, &usecase.UpsertProfileInput{ReadingGoal: ptr(24)})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, profile.ID)
	assert.Equal(t, "keep", profile.Bio)
	assert.Equal(t, 24, profile.ReadingGoal)
}

func TestProfileService_UpsertProfile_Errors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("negative goal", func(t *testing.T) {
		fx := newTxFixture(t)
		svc := NewProfileService(fx.txManager, newDiscardLogger())

		_, err := svc.UpsertProfile(ctx, userID, &usecase.UpsertProfileInput{ReadingGoal: ptr(-1)})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := newTxFixture(t)
		svc := NewProfileService(fx.txManager, newDiscardLogger())
		fx.users.EXPECT().FindByID(ctx, userID).Return(nil, nil)

		_, err := svc.UpsertProfile(ctx, userID, &usecase.UpsertProfileInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := newTxFixture(t)
	svc := NewProfileService(fx.txManager, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()
	fx.profiles.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)

	_, err := svc.GetProfile(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_DeleteProfile(t *testing.T) {
	fx := newTxFixture(t)
	svc := NewProfileService(fx.txManager, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.UserProfile{ID: uuid.New(), UserID: userID}

	fx.profiles.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	fx.profiles.EXPECT().DeleteByID(ctx, profile.ID).Return(nil)

	require.NoError(t, svc.DeleteProfile(ctx, userID))
}

func TestProfileService_GetPublicProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("public", func(t *testing.T) {
		fx := newTxFixture(t)
		svc := NewProfileService(fx.txManager, newDiscardLogger())
		want := &entity.UserProfile{ID: uuid.New(), Username: "alice", IsPublic: true}
		fx.profiles.EXPECT().FindByUserUsername(ctx, "alice").Return(want, nil)

		got, err := svc.GetPublicProfile(ctx, "alice")

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("private looks missing", func(t *testing.T) {
		fx := newTxFixture(t)
		svc := NewProfileService(fx.txManager, newDiscardLogger())
		fx.profiles.EXPECT().FindByUserUsername(ctx, "bob").
			Return(&entity.UserProfile{ID: uuid.New(), Username: "bob"}, nil)

		_, err := svc.GetPublicProfile(ctx, "bob")

		assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	})
}
