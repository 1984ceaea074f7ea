// Package repository provides hand-written test doubles for the persistence
// interfaces, built on testify/mock.
package repository

import (
	"context"

	"freshmarket/internal/domain/repository"
)

// MockTransactionManager is a pass-through TransactionManager for tests. It
// runs the callback against the configured factory without any transactional
// behavior, or fails immediately when Err is set.
type MockTransactionManager struct {
	Factory repository.RepositoryFactory
	Err     error
}

func (m *MockTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}

// MockRepositoryFactory hands out whatever mocks the test wires into it.
type MockRepositoryFactory struct {
	Categories repository.CategoryRepository
	Farms      repository.FarmRepository
	Products   repository.ProductRepository
	StockLinks repository.StockLinkRepository
	Orders     repository.OrderRepository
	LineItems  repository.LineItemRepository
	Reviews    repository.ReviewRepository
	Users      repository.UserRepository
	Roles      repository.RoleRepository
	Deliveries repository.DeliveryRepository
}

func (f *MockRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	return f.Categories
}

func (f *MockRepositoryFactory) FarmRepo() repository.FarmRepository {
	return f.Farms
}

func (f *MockRepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.Products
}

func (f *MockRepositoryFactory) StockLinkRepo() repository.StockLinkRepository {
	return f.StockLinks
}

func (f *MockRepositoryFactory) OrderRepo() repository.OrderRepository {
	return f.Orders
}

func (f *MockRepositoryFactory) LineItemRepo() repository.LineItemRepository {
	return f.LineItems
}

func (f *MockRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return f.Reviews
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *MockRepositoryFactory) RoleRepo() repository.RoleRepository {
	return f.Roles
}

func (f *MockRepositoryFactory) DeliveryRepo() repository.DeliveryRepository {
	return f.Deliveries
}
