// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations obtained from the
	// factory share the same transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside one Execute call sees the same
// database snapshot.
type RepositoryFactory interface {
	CategoryRepo() CategoryRepository
	FarmRepo() FarmRepository
	ProductRepo() ProductRepository
	StockLinkRepo() StockLinkRepository
	OrderRepo() OrderRepository
	LineItemRepo() LineItemRepository
	ReviewRepo() ReviewRepository
	UserRepo() UserRepository
	RoleRepo() RoleRepository
	DeliveryRepo() DeliveryRepository
}
