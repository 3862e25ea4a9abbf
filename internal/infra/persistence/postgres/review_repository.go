package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/errors"
	"bookshelf/internal/infra/persistence/model"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Save writes the review by ID; uni_reviews_user_book backs the one-review-per-book rule.
func (repo *reviewRepository) Save(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if review == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("review is nil")
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	now := time.Now()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now

	reviewM := fromReviewDomain(review)
	if err := repo.db.WithContext(ctx).Omit("User", "Book").Save(reviewM).Error; err != nil {
		return nil, translateWriteError(err, "failed to save review")
	}

	return toReviewDomain(reviewM), nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, reviewM := range reviewMs {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

func (repo *reviewRepository) FindByUserIDAndBookID(ctx context.Context, userID, bookID uuid.UUID) (*entity.Review, error) {
	return repo.findOne(ctx, "user_id = ? AND book_id = ?", userID, bookID)
}

func (repo *reviewRepository) Delete(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return nil
	}
	if err := repo.db.WithContext(ctx).Where("id = ?", review.ID).Delete(&model.ReviewModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete review")
	}

	return nil
}

func (repo *reviewRepository) findOne(ctx context.Context, cond string, args ...any) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).Where(cond, args...).Take(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		UserID:    data.UserID,
		BookID:    data.BookID,
		Content:   data.Content,
		IsPublic:  data.IsPublic,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		UserID:    data.UserID,
		BookID:    data.BookID,
		Content:   data.Content,
		IsPublic:  data.IsPublic,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
