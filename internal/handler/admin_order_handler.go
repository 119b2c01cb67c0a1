package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理者専用の注文ステータス更新
type AdminOrderHandler struct {
	uc  *usecase.AdminOrderUsecase
	env string
}

// DI
func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase, cfg config.Config) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc, env: cfg.GoEnv}
}

// nilのフィールドは更新しない
type UpdateOrderStatusRequest struct {
	OrderStatus   *string `json:"orderStatus"`
	TrackingID    *string `json:"trackingId"`
	PaymentStatus *string `json:"paymentStatus"`
}

type UpdateOrderStatusResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	UpdatedOrder model.Order   `json:"updatedOrder"`
	OtherOrders  []model.Order `json:"otherOrders"`
	AllOrders    []model.Order `json:"allOrders"`
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders", middleware.AuthJWT(cfg), middleware.AdminRoleGuard())
	g.PATCH("/:userId/:orderId", h.updateOrder)
}

func (h *AdminOrderHandler) updateOrder(c echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	out, err := h.uc.UpdateOrder(c.Request().Context(), usecase.UpdateOrderInput{
		UserID:        c.Param("userId"),
		OrderID:       c.Param("orderId"),
		OrderStatus:   req.OrderStatus,
		TrackingID:    req.TrackingID,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, UpdateOrderStatusResponse{
		Success:      true,
		Message:      "Order updated successfully",
		UpdatedOrder: out.Updated,
		OtherOrders:  out.Others,
		AllOrders:    out.All,
	})
}
