// Package model holds the GORM row types. They are separate from the domain entities;
// adapters map between the two.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. ID is derived from ExternalKey, never generated by the database.
type BookModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalKey         *string   `gorm:"type:varchar(255);uniqueIndex:uni_books_external_key"` // NULL for manual entries.
	Title               string    `gorm:"type:varchar(512);not null"`
	Subtitle            string    `gorm:"type:varchar(512)"`
	AlternativeTitle    string    `gorm:"type:varchar(512)"`
	AlternativeSubtitle string    `gorm:"type:varchar(512)"`
	Author              string    `gorm:"type:varchar(512);index"`
	FirstPublishYear    int
	Platform            string `gorm:"type:varchar(50)"`
	CoverID             int64
	EbookAccess         string `gorm:"type:varchar(30)"`
	EditionCount        int
	Format              string `gorm:"type:varchar(100)"`
	FirstSentence       string `gorm:"type:text"`
	NumberOfPages       int
	RatingsAverage      float64
	RatingsCount        int
	WantToReadCount     int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// BookMutableColumns are overwritten when an existing book is imported again.
// id, external_key and created_at are left alone.
var BookMutableColumns = []string{
	"title", "subtitle", "alternative_title", "alternative_subtitle", "author",
	"first_publish_year", "platform", "cover_id", "ebook_access", "edition_count",
	"format", "first_sentence", "number_of_pages", "ratings_average", "ratings_count",
	"want_to_read_count", "updated_at",
}
