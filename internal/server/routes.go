package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	Cart       *handler.CartHandler
	Wishlist   *handler.WishlistHandler
	Order      *handler.OrderHandler
	Payment    *handler.PaymentHandler
	AdminOrder *handler.AdminOrderHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Wishlist.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Payment.RegisterRoutes(e)

	//管理者ルートだけJWT＋ロールガード
	h.AdminOrder.RegisterRoutes(e, cfg)
}
