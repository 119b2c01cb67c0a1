package server

import (
	"net/http"

	"app/internal/config"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New は共通ミドルウェア込みのechoを組み立てる。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	//CORSはフロントのオリジンだけ許可
	origins := []string{"http://localhost:5173"}
	if cfg.FEURL != "" {
		origins = []string{cfg.FEURL}
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	RegisterRoutes(e, cfg, h)
	return e
}

func Start(e *echo.Echo, cfg config.Config) error {
	addr := cfg.Port
	if addr == "" || addr[0] != ':' {
		addr = ":" + addr
	}
	return e.Start(addr)
}
