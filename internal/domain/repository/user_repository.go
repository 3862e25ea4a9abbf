package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save inserts or updates the user. A username or email collision is returned
	// as a UserAlreadyExistsError naming the field.
	Save(ctx context.Context, user *entity.User) (*entity.User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// UserProfileRepository stores the one-to-one user profiles.
type UserProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// FindByUserUsername fetches by the owner's username regardless of visibility.
	// Hiding private profiles is up to the caller.
	FindByUserUsername(ctx context.Context, username string) (*entity.UserProfile, error)

	ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error)

	// Save inserts or updates the profile. A second profile for the same user is a PersistenceConflictError.
	Save(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error)

	DeleteByID(ctx context.Context, id uuid.UUID) error
}
