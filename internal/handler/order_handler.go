package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc  *usecase.OrderUsecase
	env string
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase, cfg config.Config) *OrderHandler {
	return &OrderHandler{uc: uc, env: cfg.GoEnv}
}

type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Image     string `json:"image"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type ShippingRequest struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country"`
}

// 直接placeorderとチェックアウトで項目名が違うので両対応で受ける。
// orderIdの有無で分岐する。
type PlaceOrderRequest struct {
	UserID          string             `json:"userId"`
	OrderID         string             `json:"orderId"`
	OrderItems      []OrderItemRequest `json:"orderItems"`
	CartItems       []OrderItemRequest `json:"cartItems"`
	TotalAmount     float64            `json:"totalAmount"`
	OrderStatus     string             `json:"orderStatus"`
	PaymentMethod   string             `json:"paymentMethod"`
	PaymentStatus   string             `json:"paymentStatus"`
	ShippingAddress *ShippingRequest   `json:"shippingAddress"`
	ShippingDetails *ShippingRequest   `json:"shippingDetails"`
}

type PlaceOrderResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	OrderID string       `json:"orderId"`
	Order   *model.Order `json:"order,omitempty"`
}

type GetOrderResponse struct {
	Success bool        `json:"success"`
	Order   model.Order `json:"order"`
}

type GetOrdersResponse struct {
	Success     bool          `json:"success"`
	Orders      []model.Order `json:"orders"`
	TotalOrders int           `json:"totalOrders"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/placeorder", h.placeOrder)
	e.GET("/getorder/:userId/:orderId", h.getOrder)
	e.GET("/getorders/:userId", h.getOrders)
}

func (h *OrderHandler) placeOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	if req.OrderID != "" {
		return h.placeDirect(c, req)
	}
	return h.checkout(c, req)
}

func (h *OrderHandler) placeDirect(c echo.Context, req PlaceOrderRequest) error {
	orderID, err := h.uc.PlaceDirect(c.Request().Context(), usecase.DirectOrderInput{
		UserID:        req.UserID,
		OrderID:       req.OrderID,
		Items:         toItemInputs(pickItems(req)),
		TotalAmount:   req.TotalAmount,
		OrderStatus:   req.OrderStatus,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		Shipping:      toShippingInput(pickShipping(req)),
	})
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, PlaceOrderResponse{
		Success: true,
		Message: "Order placed successfully",
		OrderID: orderID,
	})
}

func (h *OrderHandler) checkout(c echo.Context, req PlaceOrderRequest) error {
	order, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		UserID:        req.UserID,
		Items:         toItemInputs(pickItems(req)),
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		Shipping:      toShippingInput(pickShipping(req)),
	})
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, PlaceOrderResponse{
		Success: true,
		Message: "Order placed successfully",
		OrderID: order.OrderID,
		Order:   &order,
	})
}

func (h *OrderHandler) getOrder(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("userId"), c.Param("orderId"))
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, GetOrderResponse{Success: true, Order: order})
}

func (h *OrderHandler) getOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, GetOrdersResponse{
		Success:     true,
		Orders:      orders,
		TotalOrders: len(orders),
	})
}

func pickItems(req PlaceOrderRequest) []OrderItemRequest {
	if len(req.OrderItems) > 0 {
		return req.OrderItems
	}
	return req.CartItems
}

func pickShipping(req PlaceOrderRequest) *ShippingRequest {
	if req.ShippingAddress != nil {
		return req.ShippingAddress
	}
	return req.ShippingDetails
}

func toItemInputs(items []OrderItemRequest) []usecase.OrderItemInput {
	out := make([]usecase.OrderItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.OrderItemInput{
			ProductID: it.ProductID,
			Image:     it.Image,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return out
}

func toShippingInput(s *ShippingRequest) usecase.ShippingInput {
	if s == nil {
		return usecase.ShippingInput{}
	}
	return usecase.ShippingInput{
		FullName:     s.FullName,
		Phone:        s.Phone,
		AddressLine1: s.AddressLine1,
		AddressLine2: s.AddressLine2,
		City:         s.City,
		State:        s.State,
		Pincode:      s.Pincode,
		Country:      s.Country,
	}
}
