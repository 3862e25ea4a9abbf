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

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// Save writes the item by ID. A second item for the same (user, book) hits
// uni_wishlist_items_user_book and comes back as a PersistenceConflictError.
func (repo *wishlistRepository) Save(ctx context.Context, item *entity.WishlistItem) (*entity.WishlistItem, error) {
	if item == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("wishlist item is nil")
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	itemM := fromWishlistItemDomain(item)
	if err := repo.db.WithContext(ctx).Omit("User", "Book").Save(itemM).Error; err != nil {
		return nil, translateWriteError(err, "failed to save wishlist item")
	}

	saved := toWishlistItemDomain(itemM)
	saved.Book = item.Book

	return saved, nil
}

func (repo *wishlistRepository) ExistsByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistItemModel{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check wishlist item existence")
	}

	return count > 0, nil
}

func (repo *wishlistRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var itemMs []*model.WishlistItemModel
	err := repo.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("priority DESC").
		Order("created_at ASC").
		Find(&itemMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list wishlist")
	}

	items := make([]*entity.WishlistItem, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toWishlistItemDomain(itemM))
	}

	return items, nil
}

func (repo *wishlistRepository) FindByUserAndBook(ctx context.Context, user *entity.User, book *entity.Book) (*entity.WishlistItem, error) {
	if user == nil || book == nil {
		return nil, nil
	}

	return repo.FindByUserIDAndBookID(ctx, user.ID, book.ID)
}

func (repo *wishlistRepository) FindByUserIDAndBookID(ctx context.Context, userID, bookID uuid.UUID) (*entity.WishlistItem, error) {
	var itemM model.WishlistItemModel
	err := repo.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Take(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find wishlist item")
	}

	return toWishlistItemDomain(&itemM), nil
}

func (repo *wishlistRepository) Delete(ctx context.Context, item *entity.WishlistItem) error {
	if item == nil {
		return nil
	}
	if err := repo.db.WithContext(ctx).Where("id = ?", item.ID).Delete(&model.WishlistItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete wishlist item")
	}

	return nil
}

// --- Mapper Functions ---

func toWishlistItemDomain(data *model.WishlistItemModel) *entity.WishlistItem {
	if data == nil {
		return nil
	}

	return &entity.WishlistItem{
		ID:          data.ID,
		UserID:      data.UserID,
		BookID:      data.BookID,
		Book:        toBookDomain(data.Book),
		Description: data.Description,
		Priority:    data.Priority,
		IsPublic:    data.IsPublic,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromWishlistItemDomain(data *entity.WishlistItem) *model.WishlistItemModel {
	if data == nil {
		return nil
	}

	return &model.WishlistItemModel{
		ID:          data.ID,
		UserID:      data.UserID,
		BookID:      data.BookID,
		Description: data.Description,
		Priority:    data.Priority,
		IsPublic:    data.IsPublic,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
