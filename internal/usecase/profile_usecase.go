package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	// UpsertProfile creates the profile on first use.
	UpsertProfile(ctx context.Context, userID uuid.UUID, input *UpsertProfileInput) (*entity.UserProfile, error)
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
	// GetPublicProfile returns NotFound for private profiles.
	GetPublicProfile(ctx context.Context, username string) (*entity.UserProfile, error)
}

// UpsertProfileInput holds the fields to set; nil leaves a field as is.
type UpsertProfileInput struct {
	DisplayName       *string
	Bio               *string
	ImageURL          *string
	FavoriteGenres    []string
	ReadingGoal       *int
	PreferredLanguage *string
	IsPublic          *bool
	SocialLinks       map[string]string
	Location          *string
}
