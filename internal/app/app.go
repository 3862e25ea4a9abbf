// Package app builds the object graph shared by the commands.
package app

import (
	"context"
	"log/slog"

	"bookshelf/config"
	"bookshelf/internal/delivery/http/router"
	"bookshelf/internal/delivery/http/router/handler"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/infra/auth"
	"bookshelf/internal/infra/openlibrary"
	"bookshelf/internal/infra/persistence"
	"bookshelf/internal/infra/pubsub"
	"bookshelf/internal/usecase"
	"bookshelf/internal/usecase/impl"
)

// Usecases are the application services, wired to one storage backend.
type Usecases struct {
	Catalog  usecase.CatalogUsecase
	Users    usecase.UserUsecase
	Profiles usecase.ProfileUsecase
	Wishlist usecase.WishlistUsecase
	Reviews  usecase.ReviewUsecase
}

// Container owns the resources that must be released on shutdown.
type Container struct {
	Usecases

	Storage   *persistence.Storage
	Publisher service.EventPublisher

	cfg    *config.Config
	logger *slog.Logger
}

// New opens the storage and the event publisher and constructs every use case on top.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	storage, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	publisher, err := pubsub.NewEventPublisher(ctx, cfg.PubSub, logger)
	if err != nil {
		_ = storage.Close()

		return nil, err
	}

	hasher := auth.NewBcryptHasher()
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		hasher = auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	catalog := impl.NewCatalogService(
		storage.Books,
		openlibrary.NewClient(cfg.OpenLibrary, logger),
		publisher,
		cfg.Catalog,
		logger,
	)

	return &Container{
		Usecases: Usecases{
			Catalog:  catalog,
			Users:    impl.NewUserService(storage.TxManager, hasher, logger),
			Profiles: impl.NewProfileService(storage.TxManager, logger),
			Wishlist: impl.NewWishlistService(storage.TxManager, catalog, logger),
			Reviews:  impl.NewReviewService(storage.TxManager, catalog, logger),
		},
		Storage:   storage,
		Publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Handlers builds the HTTP handlers over the use cases.
func (c *Container) Handlers() router.Handlers {
	coversURL := c.cfg.OpenLibrary.CoversURL

	return router.Handlers{
		Book:     handler.NewBookHandler(c.Catalog, coversURL, c.logger),
		User:     handler.NewUserHandler(c.Users, c.logger),
		Profile:  handler.NewProfileHandler(c.Profiles),
		Wishlist: handler.NewWishlistHandler(c.Wishlist, coversURL),
		Review:   handler.NewReviewHandler(c.Reviews),
	}
}

// Close releases the publisher, then the storage.
func (c *Container) Close() error {
	if err := c.Publisher.Close(); err != nil {
		c.logger.Error("Failed to close event publisher", slog.Any("error", err))
	}

	c.logger.Info("Closing storage", slog.String("driver", c.Storage.Driver()))

	return c.Storage.Close()
}
