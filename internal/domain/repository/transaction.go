package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
//
// Only the registration approval flow runs transactionally (staging read,
// user insert, staging stamp). Order and return item writes deliberately do
// not use it; see OrderRepository.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back, otherwise committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository

	// NewPendingUserRepository returns a PendingUserRepository bound to the
	// current transaction.
	NewPendingUserRepository() PendingUserRepository
}
