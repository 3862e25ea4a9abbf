package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/errors"
	"bookshelf/internal/usecase"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	catalog   usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	catalog usecase.CatalogUsecase,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		catalog:   catalog,
		logger:    logger,
	}
}

func (srv *reviewService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// WriteReview stores the user's review of a book. A second review of the same book yields ErrReviewExists.
func (srv *reviewService) WriteReview(ctx context.Context, userID uuid.UUID, input *usecase.WriteReviewInput) (*entity.Review, error) {
	if input == nil || strings.TrimSpace(input.Content) == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("review content is required")
	}

	book, err := resolveBook(ctx, srv.catalog, input.BookID, input.ExternalKey)
	if err != nil {
		return nil, err
	}

	var saved *entity.Review
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureUserExists(ctx, repoFactory.NewUserRepository(), userID); err != nil {
			return err
		}

		reviewRepo := repoFactory.NewReviewRepository()

		existing, err := reviewRepo.FindByUserIDAndBookID(ctx, userID, book.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing review")
		}
		if existing != nil {
			return errors.WithStack(domainerrors.ErrReviewExists)
		}

		now := time.Now().UTC()
		review, err := reviewRepo.Save(ctx, &entity.Review{
			ID:        uuid.New(),
			UserID:    userID,
			BookID:    book.ID,
			Content:   strings.TrimSpace(input.Content),
			IsPublic:  input.IsPublic,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to save review")
		}
		saved = review

		return nil
	})
	if err != nil {
		if domainerrors.IsPersistenceConflict(err) && srv.reviewExists(ctx, userID, book.ID) {
			return nil, errors.Wrap(domainerrors.ErrReviewExists, err.Error())
		}

		return nil, errors.Wrap(err, "failed to write review")
	}

	srv.getLogger(ctx).Info("review written",
		slog.String("review_id", saved.ID.String()),
		slog.String("book_id", book.ID.String()),
	)

	return saved, nil
}

// GetReview retrieves a review by id.
func (srv *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReviewRepository().FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find review")
		}
		if found == nil {
			return errors.Wrapf(domainerrors.ErrReviewNotFound, "review %s", id)
		}
		review = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// ListUserReviews returns the user's reviews as seen by viewerID.
func (srv *reviewService) ListUserReviews(ctx context.Context, userID, viewerID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureUserExists(ctx, repoFactory.NewUserRepository(), userID); err != nil {
			return err
		}

		found, err := repoFactory.NewReviewRepository().FindByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if viewerID == userID {
		return reviews, nil
	}

	visible := make([]*entity.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.IsPublic {
			visible = append(visible, review)
		}
	}

	return visible, nil
}

// GetBookReview returns the user's review of a book.
func (srv *reviewService) GetBookReview(ctx context.Context, userID, bookID uuid.UUID) (*entity.Review, error) {
	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReviewRepository().FindByUserIDAndBookID(ctx, userID, bookID)
		if err != nil {
			return errors.Wrap(err, "failed to find review")
		}
		if found == nil {
			return errors.WithStack(domainerrors.ErrReviewNotFound)
		}
		review = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

func (srv *reviewService) reviewExists(ctx context.Context, userID, bookID uuid.UUID) bool {
	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		review, err = repoFactory.NewReviewRepository().FindByUserIDAndBookID(ctx, userID, bookID)

		return err
	})

	return err == nil && review != nil
}
