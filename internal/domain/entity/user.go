package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account. Its identity (ID, Username, Email) does not change after registration.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique handle, also used for public profile lookup.
	Email        string    // Unique contact email.
	PasswordHash string    // bcrypt hash; never leaves the service layer.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// UserProfile is owned by a User, at most one per user. It may be created lazily, long after registration.
type UserProfile struct {
	ID                uuid.UUID
	UserID            uuid.UUID         // Foreign Key that links this profile to a core User entity.
	Username          string            // Owner's username; filled on reads, ignored on writes.
	DisplayName       string
	Bio               string
	ImageURL          string
	FavoriteGenres    []string          // Ordered; the first genre is the favourite.
	ReadingGoal       int               // Books per year; zero means no goal.
	PreferredLanguage string
	IsPublic          bool
	SocialLinks       map[string]string // Network name to profile URL.
	Location          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
