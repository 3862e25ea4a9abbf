package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItemModel mirrors the 'wishlist_items' table. (user_id, book_id) is unique.
type WishlistItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uni_wishlist_items_user_book,priority:1"`
	BookID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uni_wishlist_items_user_book,priority:2"`
	Description string    `gorm:"type:text"`
	Priority    int       `gorm:"not null;default:0"`
	IsPublic    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Book *BookModel `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// ReviewModel mirrors the 'reviews' table. (user_id, book_id) is unique.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uni_reviews_user_book,priority:1"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uni_reviews_user_book,priority:2"`
	Content   string    `gorm:"type:text;not null"`
	IsPublic  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Book *BookModel `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&BookModel{},
		&UserModel{},
		&UserProfileModel{},
		&WishlistItemModel{},
		&ReviewModel{},
	}
}
