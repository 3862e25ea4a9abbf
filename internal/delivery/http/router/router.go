// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"

	"bookshelf/internal/delivery/http/router/handler"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Book     *handler.BookHandler
	User     *handler.UserHandler
	Profile  *handler.ProfileHandler
	Wishlist *handler.WishlistHandler
	Review   *handler.ReviewHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	handlers Handlers
}

// NewRouter is the constructor for the Router.
func NewRouter(handlers Handlers) *router {
	return &router{handlers: handlers}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	books := e.Group("/books")
	{
		books.GET("", r.handlers.Book.ListBooks)
		// Static segments before :id
		books.GET("/lookup", r.handlers.Book.LookupBook)
		books.POST("/import", r.handlers.Book.ImportBook)
		books.POST("/import/search", r.handlers.Book.ImportSearch)
		books.GET("/:id", r.handlers.Book.GetBook)
	}

	users := e.Group("/users")
	{
		users.POST("", r.handlers.User.RegisterUser)
		users.GET("/:userId", r.handlers.User.GetUser)

		users.GET("/:userId/profile", r.handlers.Profile.GetProfile)
		users.PUT("/:userId/profile", r.handlers.Profile.UpsertProfile)
		users.DELETE("/:userId/profile", r.handlers.Profile.DeleteProfile)

		users.GET("/:userId/wishlist", r.handlers.Wishlist.GetWishlist)
		users.POST("/:userId/wishlist", r.handlers.Wishlist.AddToWishlist)
		users.PATCH("/:userId/wishlist/:bookId", r.handlers.Wishlist.UpdateWishlistItem)
		users.DELETE("/:userId/wishlist/:bookId", r.handlers.Wishlist.RemoveFromWishlist)

		users.GET("/:userId/reviews", r.handlers.Review.ListUserReviews)
		users.POST("/:userId/reviews", r.handlers.Review.WriteReview)
		users.GET("/:userId/reviews/:bookId", r.handlers.Review.GetBookReview)
	}

	e.GET("/profiles/:username", r.handlers.Profile.GetPublicProfile)
	e.GET("/reviews/:id", r.handlers.Review.GetReview)
}
