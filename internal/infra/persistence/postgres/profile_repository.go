package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/errors"
	"bookshelf/internal/infra/persistence/model"
)

type userProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(db *gorm.DB) repository.UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (repo *userProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Take(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile by user id")
	}

	return toUserProfileDomain(&profileM), nil
}

// FindByUserUsername joins through users; the visibility flag is not checked here.
func (repo *userProfileRepository) FindByUserUsername(ctx context.Context, username string) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = user_profiles.user_id").
		Where("users.username = ?", username).
		Take(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile by username")
	}

	return toUserProfileDomain(&profileM), nil
}

func (repo *userProfileRepository) ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check profile existence")
	}

	return count > 0, nil
}

// Save inserts or updates the profile; the unique user_id index rejects a second profile.
func (repo *userProfileRepository) Save(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error) {
	if profile == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("profile is nil")
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	profileM := fromUserProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Omit("User").Save(profileM).Error; err != nil {
		return nil, translateWriteError(err, "failed to save profile")
	}

	saved := toUserProfileDomain(profileM)
	saved.Username = profile.Username

	return saved, nil
}

func (repo *userProfileRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_profiles.id = ?", id).Delete(&model.UserProfileModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile")
	}

	return nil
}

// --- Mapper Functions ---

func toUserProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	profile := &entity.UserProfile{
		ID:                data.ID,
		UserID:            data.UserID,
		DisplayName:       data.DisplayName,
		Bio:               data.Bio,
		ImageURL:          data.ImageURL,
		FavoriteGenres:    data.FavoriteGenres,
		ReadingGoal:       data.ReadingGoal,
		PreferredLanguage: data.PreferredLanguage,
		IsPublic:          data.IsPublic,
		SocialLinks:       data.SocialLinks,
		Location:          data.Location,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.User != nil {
		profile.Username = data.User.Username
	}

	return profile
}

func fromUserProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		ID:                data.ID,
		UserID:            data.UserID,
		DisplayName:       data.DisplayName,
		Bio:               data.Bio,
		ImageURL:          data.ImageURL,
		FavoriteGenres:    data.FavoriteGenres,
		ReadingGoal:       data.ReadingGoal,
		PreferredLanguage: data.PreferredLanguage,
		IsPublic:          data.IsPublic,
		SocialLinks:       data.SocialLinks,
		Location:          data.Location,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
