package usecase_test

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// テスト全体で使う固定のアカウントID（uuid形式チェックを通す）
const testUserID = "a81bc81b-dead-4e5d-abff-90865d1e13b1"

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// =====================
// Mock: CartRepository
// =====================

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *MockCartRepository) FindByUserAndProduct(ctx context.Context, userID string, productID string) (model.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, item *model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, itemID int64, qty int64) error {
	args := m.Called(ctx, itemID, qty)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteByUserAndProduct(ctx context.Context, userID string, productID string) (int64, error) {
	args := m.Called(ctx, userID, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// =====================
// Mock: WishlistRepository
// =====================

type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) ListByUserID(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.WishlistItem)
	return items, args.Error(1)
}

func (m *MockWishlistRepository) ExistsByUserAndProduct(ctx context.Context, userID string, productID string) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepository) Create(ctx context.Context, item *model.WishlistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWishlistRepository) DeleteByUserAndProduct(ctx context.Context, userID string, productID string) (int64, error) {
	args := m.Called(ctx, userID, productID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: OrderRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindFirstByOrderID(ctx context.Context, userID string, orderID string) (model.Order, error) {
	args := m.Called(ctx, userID, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// =====================
// Stub: TransactionManager
// =====================

// fnをそのまま実行するだけの疑似Tx。rollbackの再現はerr伝播で足りる。
type stubTxRepos struct {
	users     repo.UserRepository
	carts     repo.CartRepository
	wishlists repo.WishlistRepository
	orders    repo.OrderRepository
}

func (r stubTxRepos) Users() repo.UserRepository         { return r.users }
func (r stubTxRepos) Carts() repo.CartRepository         { return r.carts }
func (r stubTxRepos) Wishlists() repo.WishlistRepository { return r.wishlists }
func (r stubTxRepos) Orders() repo.OrderRepository       { return r.orders }

type stubTxManager struct {
	repos stubTxRepos
}

func (m *stubTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

// =====================
// Stub: Clock / IDGenerator
// =====================

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

type stubIDGenerator struct {
	id string
}

func (g *stubIDGenerator) NewID() string {
	return g.id
}

type stubOrderIDGenerator struct {
	id string
}

func (g *stubOrderIDGenerator) NewOrderID() string {
	return g.id
}

type nopLogger struct{}

func (nopLogger) Infof(format string, args ...interface{}) {}
