// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"

	"bookshelf/internal/domain/identity"
)

// Book is catalog reference data. It is shared by wishlists and reviews and owned by none of them.
// Its ID is derived from ExternalKey, so re-importing a work always lands on the same record.
type Book struct {
	ID                  uuid.UUID // Derived from the normalized external key.
	Title               string
	Subtitle            string
	AlternativeTitle    string
	AlternativeSubtitle string
	Author              string  // Author names joined with ", ".
	FirstPublishYear    int     // Zero when unknown.
	Platform            string  // Source the record was imported from, e.g. "openlibrary".
	CoverID             int64   // Cover image reference on the source; zero when absent.
	ExternalKey         string  // Normalized catalog key, e.g. "/works/OL27448W".
	EbookAccess         string  // "no_ebook", "borrowable", "printdisabled" or "public".
	EditionCount        int
	Format              string
	FirstSentence       string
	NumberOfPages       int
	RatingsAverage      float64
	RatingsCount        int
	WantToReadCount     int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AssignIdentity normalizes the external key and sets the derived ID.
// A book entered manually without a key keeps its ID, or gets a random one.
func (b *Book) AssignIdentity() error {
	if b.ExternalKey == "" {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}

		return nil
	}

	id, err := identity.DeriveBookID(b.ExternalKey)
	if err != nil {
		return err
	}
	b.ExternalKey = identity.NormalizeExternalKey(b.ExternalKey)
	b.ID = id

	return nil
}

// HasEbook reports whether any digital edition can be read or borrowed.
func (b *Book) HasEbook() bool {
	return b.EbookAccess != "" && b.EbookAccess != "no_ebook"
}

// RefreshFrom copies the mutable metadata of src onto b, keeping b's identity and creation time.
func (b *Book) RefreshFrom(src *Book) {
	b.Title = src.Title
	b.Subtitle = src.Subtitle
	b.AlternativeTitle = src.AlternativeTitle
	b.AlternativeSubtitle = src.AlternativeSubtitle
	b.Author = src.Author
	b.FirstPublishYear = src.FirstPublishYear
	b.Platform = src.Platform
	b.CoverID = src.CoverID
	b.EbookAccess = src.EbookAccess
	b.EditionCount = src.EditionCount
	b.Format = src.Format
	b.FirstSentence = src.FirstSentence
	b.NumberOfPages = src.NumberOfPages
	b.RatingsAverage = src.RatingsAverage
	b.RatingsCount = src.RatingsCount
	b.WantToReadCount = src.WantToReadCount
	b.UpdatedAt = src.UpdatedAt
}
