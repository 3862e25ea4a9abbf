package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/errors"
	"bookshelf/internal/usecase"
)

// Wishlist operation names carried by WishlistOperationError.
const (
	wishlistOpAdd    = "add"
	wishlistOpGet    = "get"
	wishlistOpUpdate = "update"
	wishlistOpRemove = "remove"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	txManager repository.TransactionManager
	catalog   usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	txManager repository.TransactionManager,
	catalog usecase.CatalogUsecase,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		txManager: txManager,
		catalog:   catalog,
		logger:    logger,
	}
}

func (srv *wishlistService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToWishlist puts a book on the user's wishlist. A book that is already there yields ErrWishlistItemExists.
func (srv *wishlistService) AddToWishlist(ctx context.Context, userID uuid.UUID, input *usecase.AddWishlistItemInput) (*entity.WishlistItem, error) {
	if input == nil {
		return nil, domainerrors.NewWishlistOperationError(wishlistOpAdd,
			domainerrors.ErrInvalidArgument.WrapMessage("wishlist input is required"))
	}

	book, err := resolveBook(ctx, srv.catalog, input.BookID, input.ExternalKey)
	if err != nil {
		return nil, domainerrors.NewWishlistOperationError(wishlistOpAdd, err)
	}

	var saved *entity.WishlistItem
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureUserExists(ctx, repoFactory.NewUserRepository(), userID); err != nil {
			return err
		}

		wishlistRepo := repoFactory.NewWishlistRepository()

		// 1. Reject duplicates up front
		exists, err := wishlistRepo.ExistsByUserAndBook(ctx, userID, book.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check wishlist")
		}
		if exists {
			return errors.WithStack(domainerrors.ErrWishlistItemExists)
		}

		// 2. Insert; the (user, book) constraint catches a concurrent add
		now := time.Now().UTC()
		item, err := wishlistRepo.Save(ctx, &entity.WishlistItem{
			ID:          uuid.New(),
			UserID:      userID,
			BookID:      book.ID,
			Description: input.Description,
			Priority:    input.Priority,
			IsPublic:    input.IsPublic,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to save wishlist item")
		}
		saved = item

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrWishlistItemExists) {
			return nil, err
		}
		if domainerrors.IsPersistenceConflict(err) && srv.itemExists(ctx, userID, book.ID) {
			srv.getLogger(ctx).Debug("concurrent wishlist add lost the race",
				slog.String("user_id", userID.String()),
				slog.String("book_id", book.ID.String()),
			)

			return nil, errors.Wrap(domainerrors.ErrWishlistItemExists, err.Error())
		}

		return nil, domainerrors.NewWishlistOperationError(wishlistOpAdd, err)
	}

	if saved.Book == nil {
		saved.Book = book
	}

	return saved, nil
}

// GetWishlist lists the user's wishlist, most urgent first.
func (srv *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var items []*entity.WishlistItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureUserExists(ctx, repoFactory.NewUserRepository(), userID); err != nil {
			return err
		}

		found, err := repoFactory.NewWishlistRepository().FindAllByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list wishlist")
		}
		items = found

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewWishlistOperationError(wishlistOpGet, err)
	}

	return items, nil
}

// UpdateWishlistItem changes the notes, priority or visibility of an item.
func (srv *wishlistService) UpdateWishlistItem(
	ctx context.Context,
	userID, bookID uuid.UUID,
	input *usecase.UpdateWishlistItemInput,
) (*entity.WishlistItem, error) {
	if input == nil {
		return nil, domainerrors.NewWishlistOperationError(wishlistOpUpdate,
			domainerrors.ErrInvalidArgument.WrapMessage("wishlist input is required"))
	}

	var updated *entity.WishlistItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishlistRepo := repoFactory.NewWishlistRepository()

		item, err := findWishlistItem(ctx, wishlistRepo, userID, bookID)
		if err != nil {
			return err
		}

		if input.Description != nil {
			item.Description = *input.Description
		}
		if input.Priority != nil {
			item.Priority = *input.Priority
		}
		if input.IsPublic != nil {
			item.IsPublic = *input.IsPublic
		}
		item.UpdatedAt = time.Now().UTC()

		saved, err := wishlistRepo.Save(ctx, item)
		if err != nil {
			return errors.Wrap(err, "failed to update wishlist item")
		}
		if saved.Book == nil {
			saved.Book = item.Book
		}
		updated = saved

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewWishlistOperationError(wishlistOpUpdate, err)
	}

	return updated, nil
}

// RemoveFromWishlist deletes the user's item for the book.
func (srv *wishlistService) RemoveFromWishlist(ctx context.Context, userID, bookID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishlistRepo := repoFactory.NewWishlistRepository()

		item, err := findWishlistItem(ctx, wishlistRepo, userID, bookID)
		if err != nil {
			return err
		}

		return errors.Wrap(wishlistRepo.Delete(ctx, item), "failed to delete wishlist item")
	})
	if err != nil {
		return domainerrors.NewWishlistOperationError(wishlistOpRemove, err)
	}

	srv.getLogger(ctx).Debug("removed wishlist item",
		slog.String("user_id", userID.String()),
		slog.String("book_id", bookID.String()),
	)

	return nil
}

// itemExists re-checks after a lost commit whether the other writer added the same pair.
func (srv *wishlistService) itemExists(ctx context.Context, userID, bookID uuid.UUID) bool {
	var exists bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		exists, err = repoFactory.NewWishlistRepository().ExistsByUserAndBook(ctx, userID, bookID)

		return err
	})

	return err == nil && exists
}

func findWishlistItem(ctx context.Context, repo repository.WishlistRepository, userID, bookID uuid.UUID) (*entity.WishlistItem, error) {
	item, err := repo.FindByUserIDAndBookID(ctx, userID, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find wishlist item")
	}
	if item == nil {
		return nil, errors.WithStack(domainerrors.ErrWishlistItemNotFound)
	}

	return item, nil
}

func ensureUserExists(ctx context.Context, repo repository.UserRepository, userID uuid.UUID) error {
	user, err := repo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if user == nil {
		return errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", userID)
	}

	return nil
}
