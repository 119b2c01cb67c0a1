package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testUserID = "a81bc81b-dead-4e5d-abff-90865d1e13b1"

// =====================
// Fakes（handler層はmockの期待値より振る舞いが見たいのでインメモリで持つ）
// =====================

type fakeUserRepo struct{}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	return &model.User{ID: userID}, nil
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, repo.ErrNotFound
}
func (f *fakeUserRepo) Exists(ctx context.Context, userID string) (bool, error) {
	return userID == testUserID, nil
}

type fakeCartRepo struct {
	cleared bool
}

func (f *fakeCartRepo) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	return nil, nil
}
func (f *fakeCartRepo) FindByUserAndProduct(ctx context.Context, userID string, productID string) (model.CartItem, error) {
	return model.CartItem{}, repo.ErrNotFound
}
func (f *fakeCartRepo) Create(ctx context.Context, item *model.CartItem) error { return nil }
func (f *fakeCartRepo) UpdateQuantity(ctx context.Context, itemID int64, qty int64) error {
	return nil
}
func (f *fakeCartRepo) DeleteByUserAndProduct(ctx context.Context, userID string, productID string) (int64, error) {
	return 0, nil
}
func (f *fakeCartRepo) Clear(ctx context.Context, userID string) error {
	f.cleared = true
	return nil
}

type fakeOrderRepo struct {
	created []model.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *model.Order) error {
	f.created = append(f.created, *order)
	return nil
}
func (f *fakeOrderRepo) FindFirstByOrderID(ctx context.Context, userID string, orderID string) (model.Order, error) {
	for _, o := range f.created {
		if o.UserID == userID && o.OrderID == orderID {
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}
func (f *fakeOrderRepo) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	out := []model.Order{}
	for _, o := range f.created {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) Save(ctx context.Context, order *model.Order) error { return nil }

type fakeTxRepos struct {
	users  *fakeUserRepo
	carts  *fakeCartRepo
	orders *fakeOrderRepo
}

func (r fakeTxRepos) Users() repo.UserRepository         { return r.users }
func (r fakeTxRepos) Carts() repo.CartRepository         { return r.carts }
func (r fakeTxRepos) Wishlists() repo.WishlistRepository { return nil }
func (r fakeTxRepos) Orders() repo.OrderRepository       { return r.orders }

type fakeTxManager struct {
	repos fakeTxRepos
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

type fixedOrderID struct{}

func (fixedOrderID) NewOrderID() string { return "ORD1785585600000042" }

func newOrderServer(carts *fakeCartRepo, orders *fakeOrderRepo) *echo.Echo {
	users := &fakeUserRepo{}
	tx := &fakeTxManager{repos: fakeTxRepos{users: users, carts: carts, orders: orders}}
	uc := usecase.NewOrderUsecase(users, tx, fixedClock{}, fixedOrderID{})

	e := echo.New()
	handler.NewOrderHandler(uc, config.Config{GoEnv: "test"}).RegisterRoutes(e)
	return e
}

func postJSON(e *echo.Echo, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =====================
// /placeorder（orderIdの有無で直接追加とチェックアウトに分岐）
// =====================

// orderIdあり => 持ち込みIDのまま保存、カートは触らない
func TestPlaceOrder_WithOrderID_Direct(t *testing.T) {
	carts := &fakeCartRepo{}
	orders := &fakeOrderRepo{}
	e := newOrderServer(carts, orders)

	rec := postJSON(e, "/placeorder", `{
		"userId": "`+testUserID+`",
		"orderId": "EXT-9",
		"orderItems": [{"productId": "p1", "price": "10.00", "quantity": 1}],
		"totalAmount": 10.0,
		"shippingAddress": {"fullName": "Taro Yamada", "phone": "9999999999"}
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "EXT-9", body["orderId"])

	assert.False(t, carts.cleared)
	assert.Len(t, orders.created, 1)
}

// orderIdなし => サーバー生成IDでチェックアウト、カートクリア
func TestPlaceOrder_WithoutOrderID_Checkout(t *testing.T) {
	carts := &fakeCartRepo{}
	orders := &fakeOrderRepo{}
	e := newOrderServer(carts, orders)

	rec := postJSON(e, "/placeorder", `{
		"userId": "`+testUserID+`",
		"cartItems": [{"productId": "p1", "price": "10.00", "quantity": 2}],
		"totalAmount": 20.0,
		"shippingDetails": {"fullName": "Taro Yamada", "phone": "9999999999"}
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ORD1785585600000042", body["orderId"])
	assert.NotNil(t, body["order"])

	assert.True(t, carts.cleared)
	assert.Len(t, orders.created, 1)
	assert.Equal(t, model.OrderStatusPending, orders.created[0].OrderStatus)
}

// 明細なしのチェックアウト => 400の失敗エンベロープ
func TestPlaceOrder_Checkout_EmptyItems(t *testing.T) {
	carts := &fakeCartRepo{}
	orders := &fakeOrderRepo{}
	e := newOrderServer(carts, orders)

	rec := postJSON(e, "/placeorder", `{
		"userId": "`+testUserID+`",
		"shippingDetails": {"fullName": "Taro Yamada", "phone": "9999999999"}
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User ID and order items are required", body["message"])

	assert.Empty(t, orders.created)
	assert.False(t, carts.cleared)
}

// =====================
// /getorder /getorders
// =====================

func TestGetOrders_AfterPlacing(t *testing.T) {
	carts := &fakeCartRepo{}
	orders := &fakeOrderRepo{}
	e := newOrderServer(carts, orders)

	postJSON(e, "/placeorder", `{
		"userId": "`+testUserID+`",
		"orderId": "EXT-1",
		"orderItems": [{"productId": "p1", "price": "5.00", "quantity": 1}],
		"totalAmount": 5.0,
		"shippingAddress": {"fullName": "Taro Yamada", "phone": "9999999999"}
	}`)

	req := httptest.NewRequest(http.MethodGet, "/getorders/"+testUserID, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["totalOrders"])
}

func TestGetOrder_NotFound(t *testing.T) {
	carts := &fakeCartRepo{}
	orders := &fakeOrderRepo{}
	e := newOrderServer(carts, orders)

	req := httptest.NewRequest(http.MethodGet, "/getorder/"+testUserID+"/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Order not found", body["message"])
}
