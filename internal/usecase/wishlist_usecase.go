package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// WishlistUsecase はウィッシュリスト操作。
// カートと違い同一productIdの二重追加はConflict（加算しない）。
type WishlistUsecase struct {
	users     repo.UserRepository
	wishlists repo.WishlistRepository
	clock     Clock
}

func NewWishlistUsecase(users repo.UserRepository, wishlists repo.WishlistRepository, clock Clock) *WishlistUsecase {
	return &WishlistUsecase{users: users, wishlists: wishlists, clock: clock}
}

type AddWishlistItemInput struct {
	UserID    string
	ProductID string
	Image     string
	Title     string
	Price     string
}

func (u *WishlistUsecase) AddItem(ctx context.Context, in AddWishlistItemInput) ([]model.WishlistItem, error) {
	if err := validateUserID(in.UserID); err != nil {
		return nil, err
	}
	if in.ProductID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "Product ID is required")
	}
	if err := u.requireUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	exists, err := u.wishlists.ExistsByUserAndProduct(ctx, in.UserID, in.ProductID)
	if err != nil {
		return nil, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	if exists {
		return nil, NewHTTPError(http.StatusBadRequest, "Item already in wishlist")
	}

	item := model.WishlistItem{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Image:     in.Image,
		Title:     in.Title,
		Price:     in.Price,
		Quantity:  1,
		AddedAt:   u.clock.Now(),
	}
	if err := u.wishlists.Create(ctx, &item); err != nil {
		return nil, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	return u.list(ctx, in.UserID)
}

// 冪等削除
func (u *WishlistUsecase) RemoveItem(ctx context.Context, userID string, productID string) ([]model.WishlistItem, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "User ID and Product ID are required")
	}
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := u.wishlists.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		return nil, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	return u.list(ctx, userID)
}

func (u *WishlistUsecase) GetWishlist(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.list(ctx, userID)
}

func (u *WishlistUsecase) requireUser(ctx context.Context, userID string) error {
	ok, err := u.users.Exists(ctx, userID)
	if err != nil {
		return NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}
	return nil
}

func (u *WishlistUsecase) list(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	items, err := u.wishlists.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	return items, nil
}
