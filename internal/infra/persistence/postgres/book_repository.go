// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/identity"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/errors"
	"bookshelf/internal/infra/persistence/model"
)

// bookRepository implements the repository.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// Save upserts the book on its derived id. Concurrent imports of the same key
// compute the same id, so ON CONFLICT turns the race into an update.
func (repo *bookRepository) Save(ctx context.Context, book *entity.Book) (*entity.Book, error) {
	if book == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("book is nil")
	}
	if err := book.AssignIdentity(); err != nil {
		return nil, err
	}

	bookM := fromBookDomain(book)
	bookM.UpdatedAt = time.Now()
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(model.BookMutableColumns),
		}).
		Create(bookM).Error
	if err != nil {
		return nil, translateWriteError(err, "failed to save book")
	}

	saved, err := repo.FindByID(ctx, bookM.ID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, domainerrors.NewDatabaseExecuteError(errors.Errorf("book %s not found after upsert", bookM.ID), "failed to reload saved book")
	}

	return saved, nil
}

// FindByID retrieves a single book by its internal ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&bookM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindByExternalKey accepts both the bare and the path form of a work key.
func (repo *bookRepository) FindByExternalKey(ctx context.Context, key string) (*entity.Book, error) {
	if key == "" {
		return nil, nil
	}

	var bookM model.BookModel
	err := repo.db.WithContext(ctx).
		Where("external_key = ?", identity.NormalizeExternalKey(key)).
		Take(&bookM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find book by external key")
	}

	return toBookDomain(&bookM), nil
}

func (repo *bookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	var bookMs []*model.BookModel
	if err := repo.db.WithContext(ctx).Find(&bookMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list books")
	}

	return toBookDomainList(bookMs), nil
}

func (repo *bookRepository) Search(ctx context.Context, query string) ([]*entity.Book, error) {
	return repo.searchColumns(ctx, query, "title", "subtitle", "alternative_title", "author")
}

func (repo *bookRepository) SearchByTitleOrAuthor(ctx context.Context, query string) ([]*entity.Book, error) {
	return repo.searchColumns(ctx, query, "title", "author")
}

// searchColumns ORs a case-insensitive LIKE over the given columns.
func (repo *bookRepository) searchColumns(ctx context.Context, query string, columns ...string) ([]*entity.Book, error) {
	if query == "" {
		return []*entity.Book{}, nil
	}

	dialect := repo.db.Dialector.Name()
	pattern := "%" + escapeLike(foldSearchQuery(dialect, query)) + "%"
	conditions := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, likeCondition(dialect, column))
		args = append(args, pattern)
	}

	var bookMs []*model.BookModel
	err := repo.db.WithContext(ctx).
		Where(strings.Join(conditions, " OR "), args...).
		Find(&bookMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search books")
	}

	return toBookDomainList(bookMs), nil
}

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}

// --- Mapper Functions ---

func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	book := &entity.Book{
		ID:                  data.ID,
		Title:               data.Title,
		Subtitle:            data.Subtitle,
		AlternativeTitle:    data.AlternativeTitle,
		AlternativeSubtitle: data.AlternativeSubtitle,
		Author:              data.Author,
		FirstPublishYear:    data.FirstPublishYear,
		Platform:            data.Platform,
		CoverID:             data.CoverID,
		EbookAccess:         data.EbookAccess,
		EditionCount:        data.EditionCount,
		Format:              data.Format,
		FirstSentence:       data.FirstSentence,
		NumberOfPages:       data.NumberOfPages,
		RatingsAverage:      data.RatingsAverage,
		RatingsCount:        data.RatingsCount,
		WantToReadCount:     data.WantToReadCount,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
	if data.ExternalKey != nil {
		book.ExternalKey = *data.ExternalKey
	}

	return book
}

func toBookDomainList(data []*model.BookModel) []*entity.Book {
	books := make([]*entity.Book, 0, len(data))
	for _, bookM := range data {
		books = append(books, toBookDomain(bookM))
	}

	return books
}

func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	bookM := &model.BookModel{
		ID:                  data.ID,
		Title:               data.Title,
		Subtitle:            data.Subtitle,
		AlternativeTitle:    data.AlternativeTitle,
		AlternativeSubtitle: data.AlternativeSubtitle,
		Author:              data.Author,
		FirstPublishYear:    data.FirstPublishYear,
		Platform:            data.Platform,
		CoverID:             data.CoverID,
		EbookAccess:         data.EbookAccess,
		EditionCount:        data.EditionCount,
		Format:              data.Format,
		FirstSentence:       data.FirstSentence,
		NumberOfPages:       data.NumberOfPages,
		RatingsAverage:      data.RatingsAverage,
		RatingsCount:        data.RatingsCount,
		WantToReadCount:     data.WantToReadCount,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
	if data.ExternalKey != "" {
		key := data.ExternalKey
		bookM.ExternalKey = &key
	}

	return bookM
}

// likeCondition uses ILIKE on PostgreSQL, which folds case per the database
// collation. Other dialects compare LOWER(column); SQLite's LOWER folds ASCII only,
// so non-ASCII case-insensitive matches are PostgreSQL-only.
func likeCondition(dialect, column string) string {
	if dialect == "postgres" {
		return column + ` ILIKE ? ESCAPE '\'`
	}

	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

func foldSearchQuery(dialect, query string) string {
	if dialect == "postgres" {
		return query
	}

	return strings.ToLower(query)
}
