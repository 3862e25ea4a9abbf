package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique index names; constraint translation reads them back to tell which field collided.
const (
	UsersUsernameIndex = "uni_users_username"
	UsersEmailIndex    = "uni_users_email"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex:uni_users_username"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uni_users_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserProfileModel mirrors the 'user_profiles' table. UserID references users.id (UUID), one profile per user.
type UserProfileModel struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uni_user_profiles_user_id"`
	DisplayName       string            `gorm:"type:varchar(100)"`
	Bio               string            `gorm:"type:text"`
	ImageURL          string            `gorm:"type:varchar(1024)"`
	FavoriteGenres    []string          `gorm:"type:text;serializer:json"`
	ReadingGoal       int
	PreferredLanguage string            `gorm:"type:varchar(20)"`
	IsPublic          bool              `gorm:"not null;default:false"`
	SocialLinks       map[string]string `gorm:"type:text;serializer:json"`
	Location          string            `gorm:"type:varchar(255)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
