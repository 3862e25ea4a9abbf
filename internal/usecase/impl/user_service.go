package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/errors"
	"bookshelf/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		hasher:    hasher,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (srv *userService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account. A taken username is reported before a taken email.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("registration input is required")
	}
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username is required")
	}
	if err := srv.validate.Var(email, "required,email"); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is invalid")
	}

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Check uniqueness, username first
		if err := checkUserAvailable(ctx, userRepo, username, email); err != nil {
			return err
		}

		// 2. Hash the password
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		// 3. Save the user
		now := time.Now().UTC()
		user, err := userRepo.Save(ctx, &entity.User{
			ID:           uuid.New(),
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to save user")
		}
		created = user

		return nil
	})
	if err != nil {
		if domainerrors.IsPersistenceConflict(err) {
			if taken := srv.recheckAvailability(ctx, username, email); taken != nil {
				return nil, taken.WithCause(err)
			}
		}
		srv.getLogger(ctx).Debug("registration failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.getLogger(ctx).Info("user registered",
		slog.String("user_id", created.ID.String()),
		slog.String("username", created.Username),
	)

	return created, nil
}

// GetUser retrieves an account by id.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if found == nil {
			return errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", userID)
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// recheckAvailability runs after a lost commit to tell which field the other writer took.
func (srv *userService) recheckAvailability(ctx context.Context, username, email string) *domainerrors.UserAlreadyExistsError {
	var taken *domainerrors.UserAlreadyExistsError
	_ = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := checkUserAvailable(ctx, repoFactory.NewUserRepository(), username, email)
		errors.As(err, &taken)

		return nil
	})

	return taken
}

func checkUserAvailable(ctx context.Context, repo repository.UserRepository, username, email string) error {
	exists, err := repo.ExistsByUsername(ctx, username)
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if exists {
		return domainerrors.NewUsernameTakenError()
	}

	exists, err = repo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	if exists {
		return domainerrors.NewEmailTakenError()
	}

	return nil
}
