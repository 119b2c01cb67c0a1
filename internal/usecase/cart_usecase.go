package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartUsecase はカート操作の業務ロジックです。
// 1ユーザー×1商品につきカート行は1行まで（AddItemが加算で守る）。
type CartUsecase struct {
	users repo.UserRepository
	carts repo.CartRepository
	clock Clock
}

func NewCartUsecase(users repo.UserRepository, carts repo.CartRepository, clock Clock) *CartUsecase {
	return &CartUsecase{users: users, carts: carts, clock: clock}
}

type AddCartItemInput struct {
	UserID    string
	ProductID string
	Image     string
	Title     string
	Price     string
}

type SetQuantityInput struct {
	UserID    string
	ProductID string
	Quantity  int64
}

// カート一覧＋派生値（totalItems / subTotal）
type CartSummary struct {
	Items      []model.CartItem
	TotalItems int64
	SubTotal   string
}

// userIdの必須＋形式チェック。400系はここで確定する。
func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return NewHTTPError(http.StatusBadRequest, "User ID is required")
	}
	if err := uuid.Validate(userID); err != nil {
		return NewHTTPError(http.StatusBadRequest, "Invalid user ID format")
	}
	return nil
}

// AddItem は同一productIdがあれば数量+1、無ければ数量1で追加してカート全体を返す。
func (u *CartUsecase) AddItem(ctx context.Context, in AddCartItemInput) ([]model.CartItem, error) {
	if err := validateUserID(in.UserID); err != nil {
		return nil, err
	}
	if in.ProductID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "Product ID is required")
	}

	if err := u.requireUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	existing, err := u.carts.FindByUserAndProduct(ctx, in.UserID, in.ProductID)
	if err == nil {
		//既存あり→+1
		if err := u.carts.UpdateQuantity(ctx, existing.ID, existing.Quantity+1); err != nil {
			return nil, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
		}
	} else if err == repo.ErrNotFound {
		//無ければ新規行
		item := model.CartItem{
			UserID:    in.UserID,
			ProductID: in.ProductID,
			Image:     in.Image,
			Title:     in.Title,
			Price:     in.Price,
			Quantity:  1,
			AddedAt:   u.clock.Now(),
		}
		if err := u.carts.Create(ctx, &item); err != nil {
			return nil, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
		}
	} else {
		return nil, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	items, err := u.carts.ListByUserID(ctx, in.UserID)
	if err != nil {
		return nil, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	return items, nil
}

// GetCart はカートと派生値を返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartSummary, error) {
	if err := validateUserID(userID); err != nil {
		return CartSummary{}, err
	}
	if err := u.requireUser(ctx, userID); err != nil {
		return CartSummary{}, err
	}
	return u.summarize(ctx, userID)
}

// SetQuantity は数量の絶対値セット。0以下は行削除（RemoveItemと同じ扱い）。
// 戻り値のremovedは削除パスだったかどうか。
func (u *CartUsecase) SetQuantity(ctx context.Context, in SetQuantityInput) (CartSummary, bool, error) {
	if err := validateUserID(in.UserID); err != nil {
		return CartSummary{}, false, err
	}
	if in.ProductID == "" {
		return CartSummary{}, false, NewHTTPError(http.StatusBadRequest, "User ID and Product ID are required")
	}
	if err := u.requireUser(ctx, in.UserID); err != nil {
		return CartSummary{}, false, err
	}

	if in.Quantity <= 0 {
		//削除パスは冪等
		if _, err := u.carts.DeleteByUserAndProduct(ctx, in.UserID, in.ProductID); err != nil {
			return CartSummary{}, false, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
		}
		out, err := u.summarize(ctx, in.UserID)
		return out, true, err
	}

	item, err := u.carts.FindByUserAndProduct(ctx, in.UserID, in.ProductID)
	if err == repo.ErrNotFound {
		return CartSummary{}, false, NewHTTPError(http.StatusNotFound, "User or product not found in cart")
	}
	if err != nil {
		return CartSummary{}, false, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	if err := u.carts.UpdateQuantity(ctx, item.ID, in.Quantity); err != nil {
		return CartSummary{}, false, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	out, err := u.summarize(ctx, in.UserID)
	return out, false, err
}

// RemoveItem は冪等削除。無い行でも成功してカートを返す。
func (u *CartUsecase) RemoveItem(ctx context.Context, userID string, productID string) (CartSummary, error) {
	if err := validateUserID(userID); err != nil {
		return CartSummary{}, err
	}
	if productID == "" {
		return CartSummary{}, NewHTTPError(http.StatusBadRequest, "User ID and Product ID are required")
	}
	if err := u.requireUser(ctx, userID); err != nil {
		return CartSummary{}, err
	}

	if _, err := u.carts.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		return CartSummary{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	return u.summarize(ctx, userID)
}

// ClearCart は無条件で空にする。
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if err := u.requireUser(ctx, userID); err != nil {
		return err
	}
	if err := u.carts.Clear(ctx, userID); err != nil {
		return NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	return nil
}

func (u *CartUsecase) requireUser(ctx context.Context, userID string) error {
	ok, err := u.users.Exists(ctx, userID)
	if err != nil {
		return NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}
	return nil
}

func (u *CartUsecase) summarize(ctx context.Context, userID string) (CartSummary, error) {
	items, err := u.carts.ListByUserID(ctx, userID)
	if err != nil {
		return CartSummary{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	total, sub := CartTotals(items)
	return CartSummary{Items: items, TotalItems: total, SubTotal: sub}, nil
}

// CartTotals はtotalItems（数量合計）とsubTotal（Σ price×qty、小数2桁文字列）を返す。
// priceは文字列なのでdecimalでパースする。パースできない行は0円として合計する。
func CartTotals(items []model.CartItem) (int64, string) {
	var totalItems int64 = 0
	subTotal := decimal.Zero

	for _, it := range items {
		totalItems += it.Quantity

		price, err := decimal.NewFromString(strings.TrimSpace(it.Price))
		if err != nil {
			continue
		}
		subTotal = subTotal.Add(price.Mul(decimal.NewFromInt(it.Quantity)))
	}

	return totalItems, subTotal.StringFixed(2)
}
