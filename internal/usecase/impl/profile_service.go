package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/errors"
	"bookshelf/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetProfile retrieves the profile owned by userID.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profile *entity.UserProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserProfileRepository().FindByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}
		if found == nil {
			return errors.Wrapf(domainerrors.ErrProfileNotFound, "user %s", userID)
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpsertProfile applies input to the user's profile, creating it when missing.
func (srv *profileService) UpsertProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpsertProfileInput) (*entity.UserProfile, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("profile input is required")
	}
	if input.ReadingGoal != nil && *input.ReadingGoal < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("reading goal cannot be negative")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var saved *entity.UserProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Find the user
		user, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if user == nil {
			return errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", userID)
		}

		profileRepo := repoFactory.NewUserProfileRepository()

		// 2. Load or start the profile
		profile, err := profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}
		now := time.Now().UTC()
		if profile == nil {
			logger.Debug("creating profile", slog.String("user_id", userID.String()))
			profile = &entity.UserProfile{
				ID:        uuid.New(),
				UserID:    userID,
				CreatedAt: now,
			}
		}

		// 3. Apply the changes
		applyProfileInput(profile, input)
		profile.UpdatedAt = now

		// 4. Save
		result, err := profileRepo.Save(ctx, profile)
		if err != nil {
			return errors.Wrap(err, "failed to save profile")
		}
		if result.Username == "" {
			result.Username = user.Username
		}
		saved = result

		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// DeleteProfile removes the user's profile; the account stays.
func (srv *profileService) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewUserProfileRepository()

		profile, err := profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}
		if profile == nil {
			return errors.Wrapf(domainerrors.ErrProfileNotFound, "user %s", userID)
		}

		return errors.Wrap(profileRepo.DeleteByID(ctx, profile.ID), "failed to delete profile")
	})
}

// GetPublicProfile looks a profile up by its owner's username.
func (srv *profileService) GetPublicProfile(ctx context.Context, username string) (*entity.UserProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("username is required")
	}

	var profile *entity.UserProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserProfileRepository().FindByUserUsername(ctx, username)
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}
		// A private profile is indistinguishable from a missing one.
		if found == nil || !found.IsPublic {
			return errors.Wrapf(domainerrors.ErrProfileNotFound, "username %s", username)
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func applyProfileInput(profile *entity.UserProfile, input *usecase.UpsertProfileInput) {
	if input.DisplayName != nil {
		profile.DisplayName = strings.TrimSpace(*input.DisplayName)
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.ImageURL != nil {
		profile.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.FavoriteGenres != nil {
		profile.FavoriteGenres = append([]string(nil), input.FavoriteGenres...)
	}
	if input.ReadingGoal != nil {
		profile.ReadingGoal = *input.ReadingGoal
	}
	if input.PreferredLanguage != nil {
		profile.PreferredLanguage = *input.PreferredLanguage
	}
	if input.IsPublic != nil {
		profile.IsPublic = *input.IsPublic
	}
	if input.SocialLinks != nil {
		links := make(map[string]string, len(input.SocialLinks))
		for network, link := range input.SocialLinks {
			links[network] = link
		}
		profile.SocialLinks = links
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
}
