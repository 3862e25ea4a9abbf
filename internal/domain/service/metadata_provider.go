package service

import (
	"context"
	"errors"
)

// ErrMetadataNotFound is returned when the external source has no work for the key.
var ErrMetadataNotFound = errors.New("book metadata not found")

// BookMetadata is the raw record supplied by the external bibliographic source.
type BookMetadata struct {
	Key                 string
	Title               string
	Subtitle            string
	AlternativeTitle    string
	AlternativeSubtitle string
	Authors             []string
	FirstPublishYear    int
	CoverID             int64
	EbookAccess         string
	EditionCount        int
	Format              string
	FirstSentence       string
	NumberOfPages       int
	RatingsAverage      float64
	RatingsCount        int
	WantToReadCount     int
	Source              string
}

// BookMetadataProvider fetches book metadata from an external catalog.
type BookMetadataProvider interface {
	// FetchWork returns the metadata of a single work, or ErrMetadataNotFound.
	FetchWork(ctx context.Context, externalKey string) (*BookMetadata, error)

	// SearchWorks runs a free-text search. At most limit results are returned.
	SearchWorks(ctx context.Context, query string, limit int) ([]*BookMetadata, error)
}
