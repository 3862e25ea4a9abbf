package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

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

func newUserTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.POST("/users", h.RegisterUser)
	e.GET("/users/:userId", h.GetUser)

	return e, uc
}

func TestUserHandler_RegisterUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, uc := newUserTestEcho(t)
		user := &entity.User{
			ID:           uuid.New(),
			Username:     "bilbo",
			Email:        "bilbo@shire.example",
			PasswordHash: "$2a$12$secret",
			CreatedAt:    time.Now(),
		}
		uc.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Username: "bilbo",
			Email:    "bilbo@shire.example",
			Password: "there-and-back",
		}).Return(user, nil).Once()

		rec, env := serve(t, e, http.MethodPost, "/users",
			`{"username":"bilbo","email":"bilbo@shire.example","password":"there-and-back"}`, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, user.ID, decodeData[UserResponse](t, env).ID)
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("invalid email", func(t *testing.T) {
		e, _ := newUserTestEcho(t)

		rec, env := serve(t, e, http.MethodPost, "/users",
			`{"username":"bilbo","email":"not-an-email","password":"there-and-back"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := newUserTestEcho(t)

		rec, env := serve(t, e, http.MethodPost, "/users", `{"username":`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("username taken", func(t *testing.T) {
		e, uc := newUserTestEcho(t)
		uc.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewUsernameTakenError()).Once()

		rec, env := serve(t, e, http.MethodPost, "/users",
			`{"username":"bilbo","email":"bilbo@shire.example","password":"there-and-back"}`, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
		assert.Equal(t, domainerrors.FieldUsername, env.Error.Details)
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	e, uc := newUserTestEcho(t)
	id := uuid.New()
	uc.EXPECT().GetUser(mock.Anything, id).Return(nil, domainerrors.ErrUserNotFound).Once()

	rec, env := serve(t, e, http.MethodGet, "/users/"+id.String(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)
}
