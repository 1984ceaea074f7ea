package repository

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// testingT is the subset of *testing.T the mock constructors need.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func setup(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// --- CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func NewMockCategoryRepository(t testingT) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	setup(t, &m.Mock)

	return m
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- FarmRepository ---

type MockFarmRepository struct {
	mock.Mock
}

func NewMockFarmRepository(t testingT) *MockFarmRepository {
	m := &MockFarmRepository{}
	setup(t, &m.Mock)

	return m
}

func (m *MockFarmRepository) Create(ctx context.Context, farm *entity.Farm) error {
	return m.Called(ctx, farm).Error(0)
}

func (m *MockFarmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Farm), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFarmRepository) FindAll(ctx context.Context) ([]*entity.Farm, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Farm), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFarmRepository) Update(ctx context.Context, farm *entity.Farm) error {
	return m.Called(ctx, farm).Error(0)
}

func (m *MockFarmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t testingT) *MockProductRepository {
	m := &MockProductRepository{}
	setup(t, &m.Mock)

	return m
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) FindAllByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, categoryID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) FindAllByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, farmID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- StockLinkRepository ---

type MockStockLinkRepository struct {
	mock.Mock
}

func NewMockStockLinkRepository(t testingT) *MockStockLinkRepository {
	m := &MockStockLinkRepository{}
	setup(t, &m.Mock)

	return m
}

func (m *MockStockLinkRepository) Create(ctx context.Context, link *entity.StockLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockStockLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StockLink, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.StockLink), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStockLinkRepository) FindAll(ctx context.Context) ([]*entity.StockLink, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.StockLink), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStockLinkRepository) Update(ctx context.Context, link *entity.StockLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockStockLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStockLinkRepository) FindAllByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.StockLink, error) {
	args := m.Called(ctx, farmID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.StockLink), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStockLinkRepository) FindAllByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.StockLink, error) {
	args := m.Called(ctx, productID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.StockLink), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- OrderRepository ---

type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository(t testingT) *MockOrderRepository {
	m := &MockOrderRepository{}
	setup(t, &m.Mock)

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) FindAllByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, farmID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) FindAllByStatus(ctx context.Context, status string) ([]*entity.Order, error) {
	args := m.Called(ctx, status)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- LineItemRepository ---

type MockLineItemRepository struct {
	mock.Mock
}

func NewMockLineItemRepository(t testingT) *MockLineItemRepository {
	m := &MockLineItemRepository{}
	setup(t, &m.Mock)

	return m
}

func (m *MockLineItemRepository) Create(ctx context.Context, item *entity.LineItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockLineItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LineItem, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.LineItem), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLineItemRepository) FindAll(ctx context.Context) ([]*entity.LineItem, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.LineItem), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLineItemRepository) Update(ctx context.Context, item *entity.LineItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockLineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLineItemRepository) FindAllByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.LineItem, error) {
	args := m.Called(ctx, orderID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.LineItem), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- ReviewRepository ---

type MockReviewRepository struct {
	mock.Mock
}

func NewMockReviewRepository(t testingT) *MockReviewRepository {
	m := &MockReviewRepository{}
	setup(t, &m.Mock)

	return m
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Review), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Review), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReviewRepository) FindAllByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, farmID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Review), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	setup(t, &m.Mock)

	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- RoleRepository ---

type MockRoleRepository struct {
	mock.Mock
}

func NewMockRoleRepository(t testingT) *MockRoleRepository {
	m := &MockRoleRepository{}
	setup(t, &m.Mock)

	return m
}

func (m *MockRoleRepository) Create(ctx context.Context, role *entity.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Role), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*entity.Role), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRoleRepository) FindAll(ctx context.Context) ([]*entity.Role, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Role), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *entity.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- DeliveryRepository ---

type MockDeliveryRepository struct {
	mock.Mock
}

func NewMockDeliveryRepository(t testingT) *MockDeliveryRepository {
	m := &MockDeliveryRepository{}
	setup(t, &m.Mock)

	return m
}

func (m *MockDeliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	return m.Called(ctx, delivery).Error(0)
}

func (m *MockDeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Delivery), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) FindAll(ctx context.Context) ([]*entity.Delivery, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Delivery), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, delivery *entity.Delivery) error {
	return m.Called(ctx, delivery).Error(0)
}

func (m *MockDeliveryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDeliveryRepository) FindAllByStatus(ctx context.Context, status string) ([]*entity.Delivery, error) {
	args := m.Called(ctx, status)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Delivery), args.Error(1)
	}

	return nil, args.Error(1)
}
