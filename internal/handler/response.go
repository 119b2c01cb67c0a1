package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 全レスポンス共通の失敗形。errorは内部詳細（prodでは空にする）。
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeError(c echo.Context, env string, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		out := ErrorResponse{Success: false, Message: he.Message}
		//内部詳細はprodでは出さない
		if he.Detail != "" && env != "prod" {
			out.Error = he.Detail
		}
		return c.JSON(he.Status, out)
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: "Server error"})
}
