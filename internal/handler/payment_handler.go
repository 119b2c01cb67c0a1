package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc  *usecase.PaymentUsecase
	env string
}

// DI
func NewPaymentHandler(uc *usecase.PaymentUsecase, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{uc: uc, env: cfg.GoEnv}
}

type CreateOrderRequest struct {
	UserID          string           `json:"userId"`
	Amount          float64          `json:"amount"`
	Currency        string           `json:"currency"`
	ShippingDetails *ShippingRequest `json:"shippingDetails"`
}

type CreateOrderResponse struct {
	Success         bool   `json:"success"`
	OrderID         string `json:"orderId"`
	RazorpayOrderID string `json:"razorpayOrderId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	KeyID           string `json:"key_id"`
}

type VerifyPaymentRequest struct {
	UserID            string             `json:"userId"`
	RazorpayOrderID   string             `json:"razorpay_order_id"`
	RazorpayPaymentID string             `json:"razorpay_payment_id"`
	RazorpaySignature string             `json:"razorpay_signature"`
	ShippingDetails   *ShippingRequest   `json:"shippingDetails"`
	CartItems         []OrderItemRequest `json:"cartItems"`
	TotalAmount       float64            `json:"totalAmount"`
	PaymentMethod     string             `json:"paymentMethod"`
}

type VerifyPaymentResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	OrderID string      `json:"orderId"`
	Order   model.Order `json:"order"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/createorder", h.createOrder)
	e.POST("/verifypayment", h.verifyPayment)
}

func (h *PaymentHandler) createOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	out, err := h.uc.CreateIntent(c.Request().Context(), usecase.CreateIntentInput{
		UserID:   req.UserID,
		Amount:   req.Amount,
		Currency: req.Currency,
		Shipping: toShippingInput(req.ShippingDetails),
	})
	if err != nil {
		return writeError(c, h.env, err)
	}

	//orderIdとrazorpayOrderIdは同じ値（フロント互換のため両方返す）
	return c.JSON(http.StatusOK, CreateOrderResponse{
		Success:         true,
		OrderID:         out.RazorpayOrderID,
		RazorpayOrderID: out.RazorpayOrderID,
		Amount:          out.Amount,
		Currency:        out.Currency,
		KeyID:           out.KeyID,
	})
}

func (h *PaymentHandler) verifyPayment(c echo.Context) error {
	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	order, err := h.uc.VerifyAndCapture(c.Request().Context(), usecase.VerifyPaymentInput{
		UserID:            req.UserID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		Shipping:          toShippingInput(req.ShippingDetails),
		Items:             toItemInputs(req.CartItems),
		TotalAmount:       req.TotalAmount,
		PaymentMethod:     req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, VerifyPaymentResponse{
		Success: true,
		Message: "Payment verified and order placed successfully",
		OrderID: order.OrderID,
		Order:   order,
	})
}
