package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific store like GORM or Badger.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	// A commit that loses a concurrent write race returns a PersistenceConflictError.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	NewBookRepository() BookRepository
	NewUserRepository() UserRepository
	NewUserProfileRepository() UserProfileRepository
	NewWishlistRepository() WishlistRepository
	NewReviewRepository() ReviewRepository
}
