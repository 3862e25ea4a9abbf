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
	mockService "bookshelf/internal/mocks/service"
	"bookshelf/internal/usecase"
)

type userServiceFixtures struct {
	service usecase.UserUsecase
	tx      *txFixture
	hasher  *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	tx := newTxFixture(t)
	hasher := mockService.NewMockPasswordHasher(t)

	return userServiceFixtures{
		service: NewUserService(tx.txManager, hasher, newDiscardLogger()),
		tx:      tx,
		hasher:  hasher,
	}
}

func aliceInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{Username: "alice", Email: "Alice@Example.com ", Password: "s3cret-pass"}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tx.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	fx.tx.users.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("$2a$hash", nil)
	fx.tx.users.EXPECT().
		Save(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.Email == "alice@example.com" && u.PasswordHash == "$2a$hash"
		})).
		RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, error) { return u, nil })

	user, err := fx.service.Register(ctx, aliceInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tx.users.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil)

	_, err := fx.service.Register(ctx, aliceInput())

	var exists *domainerrors.UserAlreadyExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, domainerrors.FieldUsername, exists.Field)
	assert.Equal(t, domainerrors.ReasonUsernameTaken, exists.Reason)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tx.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	fx.tx.users.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(true, nil)

	_, err := fx.service.Register(ctx, aliceInput())

	var exists *domainerrors.UserAlreadyExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, domainerrors.FieldEmail, exists.Field)
	assert.Equal(t, domainerrors.ReasonEmailTaken, exists.Reason)
}

func TestUserService_Register_StorageConstraintNamesField(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tx.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	fx.tx.users.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("$2a$hash", nil)
	fx.tx.users.EXPECT().Save(ctx, mock.Anything).
		Return(nil, domainerrors.NewEmailTakenError().WithCause(errors.New("uni_users_email")))

	_, err := fx.service.Register(ctx, aliceInput())

	var exists *domainerrors.UserAlreadyExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, domainerrors.FieldEmail, exists.Field)
}

func TestUserService_Register_LostCommitRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	conflict := domainerrors.NewPersistenceConflictError(errors.New("transaction conflict"), "commit")

	fx.tx.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil).Once()
	fx.tx.users.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil).Once()
	fx.hasher.EXPECT().Hash(mock.Anything).Return("$2a$hash", nil)
	fx.tx.users.EXPECT().Save(ctx, mock.Anything).Return(nil, conflict)
	fx.tx.users.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil).Once()

	_, err := fx.service.Register(ctx, aliceInput())

	var exists *domainerrors.UserAlreadyExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, domainerrors.FieldUsername, exists.Field)
	assert.True(t, errors.Is(err, conflict))
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterInput
		want  error
	}{
		{"nil input", nil, domainerrors.ErrInvalidArgument},
		{"missing username", &usecase.RegisterInput{Email: "a@b.c", Password: "x"}, domainerrors.ErrValidationFailed},
		{"bad email", &usecase.RegisterInput{Username: "a", Email: "nope", Password: "x"}, domainerrors.ErrValidationFailed},
		{"empty email", &usecase.RegisterInput{Username: "a", Email: "  ", Password: "x"}, domainerrors.ErrValidationFailed},
		{"email without domain", &usecase.RegisterInput{Username: "a", Email: "alice@", Password: "x"}, domainerrors.ErrValidationFailed},
		{"email with display name", &usecase.RegisterInput{Username: "a", Email: "Alice <alice@example.com>", Password: "x"}, domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			_, err := fx.service.Register(context.Background(), tt.input)

			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tx.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	fx.tx.users.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("", domainerrors.ErrWeakPassword.WrapMessage("too short"))

	_, err := fx.service.Register(ctx, aliceInput())

	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()
	fx.tx.users.EXPECT().FindByID(ctx, id).Return(nil, nil)

	_, err := fx.service.GetUser(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
