package service

import (
	"context"
	"time"
)

// BookImportedEvent is emitted after a book has been written to the catalog from the external source.
type BookImportedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	BookID      string    `json:"book_id"`
	ExternalKey string    `json:"external_key"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Refreshed   bool      `json:"refreshed"` // The book was already in the catalog.
	ImportedAt  time.Time `json:"imported_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookImported announces a catalog import
	PublishBookImported(ctx context.Context, event *BookImportedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
