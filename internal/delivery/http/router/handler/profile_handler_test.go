package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	mockUsecase "bookshelf/internal/mocks/usecase"
	"bookshelf/internal/usecase"
)

func newProfileTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockProfileUsecase) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc)

	e := newTestEcho()
	e.GET("/users/:userId/profile", h.GetProfile)
	e.PUT("/users/:userId/profile", h.UpsertProfile)
	e.DELETE("/users/:userId/profile", h.DeleteProfile)
	e.GET("/profiles/:username", h.GetPublicProfile)

	return e, uc
}

func TestProfileHandler_GetProfile_PrivateVisibility(t *testing.T) {
	userID := uuid.New()
	profile := &entity.UserProfile{ID: uuid.New(), UserID: userID, DisplayName: "Bilbo", IsPublic: false}

	t.Run("hidden from others", func(t *testing.T) {
		e, uc := newProfileTestEcho(t)
		uc.EXPECT().GetProfile(mock.Anything, userID).Return(profile, nil).Once()

		rec, env := serve(t, e, http.MethodGet, "/users/"+userID.String()+"/profile", "", uuid.NewString())
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PROFILE_NOT_FOUND", env.Error.Code)
	})

	t.Run("shown to owner", func(t *testing.T) {
		e, uc := newProfileTestEcho(t)
		uc.EXPECT().GetProfile(mock.Anything, userID).Return(profile, nil).Once()

		rec, env := serve(t, e, http.MethodGet, "/users/"+userID.String()+"/profile", "", userID.String())
		require.Equal(t, http.StatusOK, rec.Code)

		got := decodeData[ProfileResponse](t, env)
		assert.Equal(t, "Bilbo", got.DisplayName)
		assert.NotNil(t, got.FavoriteGenres)
		assert.NotNil(t, got.SocialLinks)
	})
}

func TestProfileHandler_UpsertProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		e, uc := newProfileTestEcho(t)
		uc.EXPECT().UpsertProfile(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UpsertProfileInput) bool {
			return in.Bio != nil && *in.Bio == "Hobbit" && in.DisplayName == nil && in.ReadingGoal != nil && *in.ReadingGoal == 12
		})).Return(&entity.UserProfile{ID: uuid.New(), UserID: userID, Bio: "Hobbit", ReadingGoal: 12}, nil).Once()

		rec, env := serve(t, e, http.MethodPut, "/users/"+userID.String()+"/profile",
			`{"bio":"Hobbit","reading_goal":12}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 12, decodeData[ProfileResponse](t, env).ReadingGoal)
	})

	t.Run("other caller forbidden", func(t *testing.T) {
		e, _ := newProfileTestEcho(t)

		rec, env := serve(t, e, http.MethodPut, "/users/"+userID.String()+"/profile",
			`{"bio":"Hobbit"}`, uuid.NewString())
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})

	t.Run("negative goal", func(t *testing.T) {
		e, _ := newProfileTestEcho(t)

		rec, env := serve(t, e, http.MethodPut, "/users/"+userID.String()+"/profile",
			`{"reading_goal":-1}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})
}

func TestProfileHandler_DeleteProfile(t *testing.T) {
	e, uc := newProfileTestEcho(t)
	userID := uuid.New()
	uc.EXPECT().DeleteProfile(mock.Anything, userID).Return(nil).Once()

	rec, _ := serve(t, e, http.MethodDelete, "/users/"+userID.String()+"/profile", "", userID.String())
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProfileHandler_GetPublicProfile(t *testing.T) {
	e, uc := newProfileTestEcho(t)
	uc.EXPECT().GetPublicProfile(mock.Anything, "frodo").Return(nil, domainerrors.ErrProfileNotFound).Once()

	rec, env := serve(t, e, http.MethodGet, "/profiles/frodo", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", env.Error.Code)
}
