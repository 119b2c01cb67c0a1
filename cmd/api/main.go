package main

import (
	"fmt"
	"math/rand"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/payment"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// "ORD" + ミリ秒epoch + 0〜999の乱数。衝突は許容（先頭一致で引く前提）。
type orderIDGenerator struct{}

func (g *orderIDGenerator) NewOrderID() string {
	return fmt.Sprintf("ORD%d%d", time.Now().UnixMilli(), rand.Intn(1000))
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID string, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くてもよい（本番は環境変数直指定）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	orderIDGen := &orderIDGenerator{}
	issuer := &jwtIssuer{secret: []byte(cfg.JWTSecret), accessTTL: 15 * time.Minute}
	gateway := payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, idGen, clock, issuer)
	cartUC := usecase.NewCartUsecase(userRepo, cartRepo, clock)
	wishlistUC := usecase.NewWishlistUsecase(userRepo, wishlistRepo, clock)
	orderUC := usecase.NewOrderUsecase(userRepo, txManager, clock, orderIDGen)
	adminOrderUC := usecase.NewAdminOrderUsecase(userRepo, txManager, clock)
	paymentUC := usecase.NewPaymentUsecase(
		userRepo,
		txManager,
		gateway,
		cfg.RazorpayKeyID,
		cfg.RazorpayKeySecret,
		clock,
		orderIDGen,
		log.New("payment"),
	)

	//Handler生成
	handlers := server.Handlers{
		Auth:       handler.NewAuthHandler(authUC, cfg),
		Cart:       handler.NewCartHandler(cartUC, cfg),
		Wishlist:   handler.NewWishlistHandler(wishlistUC, cfg),
		Order:      handler.NewOrderHandler(orderUC, cfg),
		Payment:    handler.NewPaymentHandler(paymentUC, cfg),
		AdminOrder: handler.NewAdminOrderHandler(adminOrderUC, cfg),
	}

	//Server起動
	e := server.New(cfg, handlers)
	if err := server.Start(e, cfg); err != nil {
		panic(err)
	}
}
