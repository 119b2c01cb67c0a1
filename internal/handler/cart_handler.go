package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カート操作のHTTP
type CartHandler struct {
	uc  *usecase.CartUsecase
	env string
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, cfg config.Config) *CartHandler {
	return &CartHandler{uc: uc, env: cfg.GoEnv}
}

type AddToCartRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Image     string `json:"image"`
	Title     string `json:"title"`
	Price     string `json:"price"`
}

type UpdateCartQuantityRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type RemoveFromCartRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}

type CartResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Cart    []model.CartItem `json:"cart"`
}

type CartSummaryResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Cart       []model.CartItem `json:"cart"`
	TotalItems int64            `json:"totalItems"`
	SubTotal   string           `json:"subTotal"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/addtocart", h.addToCart)
	e.GET("/getcart/:userId", h.getCart)
	e.POST("/updatecartquantity", h.updateQuantity)
	e.POST("/removefromcart", h.removeFromCart)
	e.POST("/clearcart/:userId", h.clearCart)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	cart, err := h.uc.AddItem(c.Request().Context(), usecase.AddCartItemInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Image:     req.Image,
		Title:     req.Title,
		Price:     req.Price,
	})
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, CartResponse{
		Success: true,
		Message: "Item added to cart successfully",
		Cart:    cart,
	})
}

func (h *CartHandler) getCart(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, CartSummaryResponse{
		Success:    true,
		Cart:       out.Items,
		TotalItems: out.TotalItems,
		SubTotal:   out.SubTotal,
	})
}

func (h *CartHandler) updateQuantity(c echo.Context) error {
	var req UpdateCartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	out, removed, err := h.uc.SetQuantity(c.Request().Context(), usecase.SetQuantityInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, h.env, err)
	}

	msg := "Quantity updated successfully"
	if removed {
		msg = "Item removed from cart"
	}

	return c.JSON(http.StatusOK, CartSummaryResponse{
		Success:    true,
		Message:    msg,
		Cart:       out.Items,
		TotalItems: out.TotalItems,
		SubTotal:   out.SubTotal,
	})
}

func (h *CartHandler) removeFromCart(c echo.Context) error {
	var req RemoveFromCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	out, err := h.uc.RemoveItem(c.Request().Context(), req.UserID, req.ProductID)
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, CartSummaryResponse{
		Success:    true,
		Message:    "Item removed from cart successfully",
		Cart:       out.Items,
		TotalItems: out.TotalItems,
		SubTotal:   out.SubTotal,
	})
}

func (h *CartHandler) clearCart(c echo.Context) error {
	if err := h.uc.ClearCart(c.Request().Context(), c.Param("userId")); err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Cart cleared successfully",
	})
}
