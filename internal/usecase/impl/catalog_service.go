// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookshelf/config"
	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/identity"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/errors"
	"bookshelf/internal/usecase"
)

const defaultSearchLimit = 20

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	books     repository.BookRepository
	provider  service.BookMetadataProvider
	publisher service.EventPublisher
	cfg       config.CatalogConfig
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	books repository.BookRepository,
	provider service.BookMetadataProvider,
	publisher service.EventPublisher,
	cfg config.CatalogConfig,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}

	return &catalogService{
		books:     books,
		provider:  provider,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

func (srv *catalogService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ImportBook fetches a single work and writes it to the catalog.
func (srv *catalogService) ImportBook(ctx context.Context, externalKey string) (*entity.Book, error) {
	key := strings.TrimSpace(externalKey)
	if key == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("external key is required")
	}

	meta, err := srv.provider.FetchWork(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrMetadataNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrBookNotFound, "work %s", key)
		}

		return nil, domainerrors.NewProcessingError(err, "fetch work "+key)
	}

	book, _, err := srv.upsert(ctx, meta)
	if err != nil {
		return nil, err
	}

	return book, nil
}

// ImportSearch imports every work returned by a remote search.
// Results that derive to the same id are imported once.
func (srv *catalogService) ImportSearch(ctx context.Context, query string, limit int) ([]*entity.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("search query is required")
	}
	if limit <= 0 || limit > srv.cfg.SearchLimit {
		limit = srv.cfg.SearchLimit
	}

	results, err := srv.provider.SearchWorks(ctx, query, limit)
	if err != nil {
		return nil, domainerrors.NewProcessingError(err, "search works")
	}

	books := make([]*entity.Book, 0, len(results))
	seen := make(map[uuid.UUID]struct{}, len(results))
	for _, meta := range results {
		if meta != nil {
			if id, err := identity.DeriveBookID(meta.Key); err == nil {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
			}
		}

		book, skipped, err := srv.upsert(ctx, meta)
		if err != nil {
			return nil, err
		}
		if !skipped {
			books = append(books, book)
		}
	}

	srv.getLogger(ctx).Info("imported search results",
		slog.String("query", query),
		slog.Int("fetched", len(results)),
		slog.Int("imported", len(books)),
	)

	return books, nil
}

// GetBook retrieves a catalog book by id.
func (srv *catalogService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := srv.books.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find book")
	}
	if book == nil {
		return nil, errors.Wrapf(domainerrors.ErrBookNotFound, "book %s", id)
	}

	return book, nil
}

// GetOrImportByKey resolves a key locally before asking the external source.
func (srv *catalogService) GetOrImportByKey(ctx context.Context, externalKey string) (*entity.Book, error) {
	key := strings.TrimSpace(externalKey)
	if key == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("external key is required")
	}

	book, err := srv.books.FindByExternalKey(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find book by external key")
	}
	if book != nil {
		return book, nil
	}

	srv.getLogger(ctx).Debug("book not in catalog, importing", slog.String("external_key", key))

	return srv.ImportBook(ctx, key)
}

// Search matches the query against the local catalog.
func (srv *catalogService) Search(ctx context.Context, query string) ([]*entity.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" && srv.cfg.EmptySearchMatchesAll {
		return srv.ListBooks(ctx)
	}

	books, err := srv.books.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search books")
	}

	return books, nil
}

// ListBooks returns the whole catalog.
func (srv *catalogService) ListBooks(ctx context.Context) ([]*entity.Book, error) {
	books, err := srv.books.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// upsert maps external metadata onto the catalog. Records without a work key are skipped.
func (srv *catalogService) upsert(ctx context.Context, meta *service.BookMetadata) (book *entity.Book, skipped bool, err error) {
	if meta == nil || strings.TrimSpace(meta.Key) == "" {
		srv.getLogger(ctx).Warn("skipping metadata without work key")

		return nil, true, nil
	}

	candidate := bookFromMetadata(meta)
	if candidate.Title == "" {
		return nil, false, domainerrors.NewProcessingError(nil, "work "+meta.Key+" has no title")
	}
	if err := candidate.AssignIdentity(); err != nil {
		return nil, false, domainerrors.NewProcessingError(err, "derive id for "+meta.Key)
	}

	existing, err := srv.books.FindByID(ctx, candidate.ID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to look up book")
	}

	saved, err := srv.books.Save(ctx, candidate)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to save book %s", candidate.ExternalKey)
	}

	srv.publishImported(ctx, saved, existing != nil)

	return saved, false, nil
}

// publishImported never fails the import; a lost event is only logged.
func (srv *catalogService) publishImported(ctx context.Context, book *entity.Book, refreshed bool) {
	event := &service.BookImportedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		BookID:      book.ID.String(),
		ExternalKey: book.ExternalKey,
		Title:       book.Title,
		Author:      book.Author,
		Refreshed:   refreshed,
		ImportedAt:  time.Now().UTC(),
	}

	if err := srv.publisher.PublishBookImported(ctx, event); err != nil {
		srv.getLogger(ctx).Warn("failed to publish book imported event",
			slog.String("book_id", event.BookID),
			slog.Any("error", err),
		)
	}
}

func bookFromMetadata(meta *service.BookMetadata) *entity.Book {
	return &entity.Book{
		Title:               strings.TrimSpace(meta.Title),
		Subtitle:            meta.Subtitle,
		AlternativeTitle:    meta.AlternativeTitle,
		AlternativeSubtitle: meta.AlternativeSubtitle,
		Author:              strings.Join(meta.Authors, ", "),
		FirstPublishYear:    meta.FirstPublishYear,
		Platform:            meta.Source,
		CoverID:             meta.CoverID,
		ExternalKey:         strings.TrimSpace(meta.Key),
		EbookAccess:         meta.EbookAccess,
		EditionCount:        meta.EditionCount,
		Format:              meta.Format,
		FirstSentence:       meta.FirstSentence,
		NumberOfPages:       meta.NumberOfPages,
		RatingsAverage:      meta.RatingsAverage,
		RatingsCount:        meta.RatingsCount,
		WantToReadCount:     meta.WantToReadCount,
	}
}

// resolveBook finds the book an input refers to, by id or by external key.
func resolveBook(ctx context.Context, catalog usecase.CatalogUsecase, bookID uuid.UUID, externalKey string) (*entity.Book, error) {
	if bookID != uuid.Nil {
		return catalog.GetBook(ctx, bookID)
	}
	if strings.TrimSpace(externalKey) != "" {
		return catalog.GetOrImportByKey(ctx, externalKey)
	}

	return nil, domainerrors.ErrInvalidArgument.WrapMessage("book id or external key is required")
}
