package handler

import (
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc  *usecase.AuthUsecase
	env string
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase, cfg config.Config) *AuthHandler {
	return &AuthHandler{uc: uc, env: cfg.GoEnv}
}

type SignupRequest struct {
	Name     string `json:"name"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    usecase.UserDTO `json:"user"`
}

type SigninResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	User      usecase.UserDTO `json:"user"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/signup", h.signup)
	e.POST("/signin", h.signin)
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusCreated, SignupResponse{
		Success: true,
		Message: "Account created successfully",
		User:    user,
	})
}

func (h *AuthHandler) signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, h.env, err)
	}

	return c.JSON(http.StatusOK, SigninResponse{
		Success:   true,
		Message:   "Signed in successfully",
		User:      out.User,
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
	})
}
