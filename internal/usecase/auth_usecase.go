package usecase

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// アクセストークンを発行する約束（実装はcmd/api側）
type TokenIssuer interface {
	Issue(userID string, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// AuthUsecase はアカウント作成とログインだけの薄い入口。
// セッション/リフレッシュの仕組みは持たない。
type AuthUsecase struct {
	users  repo.UserRepository
	idGen  IDGenerator
	clock  Clock
	issuer TokenIssuer
	cost   int
}

func NewAuthUsecase(users repo.UserRepository, idGen IDGenerator, clock Clock, issuer TokenIssuer) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		idGen:  idGen,
		clock:  clock,
		issuer: issuer,
		cost:   bcrypt.DefaultCost,
	}
}

type RegisterInput struct {
	Name     string
	UserName string
	Email    string
	Password string
}

type UserDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginOutput struct {
	User      UserDTO
	Token     string
	ExpiresAt time.Time
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserDTO, error) {
	name := strings.TrimSpace(in.Name)
	userName := strings.TrimSpace(in.UserName)
	email := strings.TrimSpace(in.Email)

	if name == "" || userName == "" || email == "" || in.Password == "" {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "All fields are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "Invalid email")
	}
	if len(in.Password) < 8 {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "Password must be at least 8 characters")
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "Email already registered")
	} else if err != repo.ErrNotFound {
		return UserDTO{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return UserDTO{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	now := u.clock.Now()
	user := model.User{
		ID:           u.idGen.NewID(),
		Name:         name,
		UserName:     userName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, &user); err != nil {
		return UserDTO{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	return toUserDTO(user), nil
}

func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (LoginOutput, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		//存在有無は区別しない
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, u.clock.Now())
	if err != nil {
		return LoginOutput{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	return LoginOutput{
		User:      toUserDTO(*user),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func toUserDTO(user model.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Name:     user.Name,
		UserName: user.UserName,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}
