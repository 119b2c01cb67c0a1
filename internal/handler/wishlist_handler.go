package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	uc  *usecase.WishlistUsecase
	env string
}

// DI
func NewWishlistHandler(uc *usecase.WishlistUsecase, cfg config.Config) *WishlistHandler {
	return &WishlistHandler{uc: uc, env: cfg.GoEnv}
}

type AddToWishlistRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Image     string `json:"image"`
	Title     string `json:"title"`
	Price     string `json:"price"`
}

type RemoveFromWishlistRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}

type WishlistResponse struct {
	Success  bool                 `json:"success"`
	Message  string               `json:"message,omitempty"`
	Wishlist []model.WishlistItem `json:"wishlist"`
}

func (h *WishlistHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/addtowishlist", h.addToWishlist)
	e.POST("/removefromwishlist", h.removeFromWishlist)
	e.GET("/getwishlist/:userId", h.getWishlist)
}

func (h *WishlistHandler) addToWishlist(c echo.Context) error {
	var req AddToWishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	wishlist, err := h.uc.AddItem(c.Request().Context(), usecase.AddWishlistItemInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Image:     req.Image,
		Title:     req.Title,
		Price:     req.Price,
	})
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, WishlistResponse{
		Success:  true,
		Message:  "Item added to wishlist successfully",
		Wishlist: wishlist,
	})
}

func (h *WishlistHandler) removeFromWishlist(c echo.Context) error {
	var req RemoveFromWishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	wishlist, err := h.uc.RemoveItem(c.Request().Context(), req.UserID, req.ProductID)
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, WishlistResponse{
		Success:  true,
		Message:  "Item removed from wishlist successfully",
		Wishlist: wishlist,
	})
}

func (h *WishlistHandler) getWishlist(c echo.Context) error {
	wishlist, err := h.uc.GetWishlist(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, WishlistResponse{
		Success:  true,
		Wishlist: wishlist,
	})
}
