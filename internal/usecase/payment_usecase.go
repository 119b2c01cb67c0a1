package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// PaymentGateway はゲートウェイ側の注文（payment intent）作成だけを約束する。
// 金額はminor unit（paise）。
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string, receipt string, notes map[string]string) (orderID string, createdAmount int64, createdCurrency string, err error)
}

// Logger は検証済み決済の痕跡を残すために使う（echoのLoggerで満たす）。
type Logger interface {
	Infof(format string, args ...interface{})
}

// PaymentUsecase は決済intent作成と署名検証→注文確定。
// 署名検証がこの決済フロー唯一の真正性チェック。
type PaymentUsecase struct {
	users   repo.UserRepository
	tx      repo.TransactionManager
	gateway PaymentGateway
	keyID   string
	secret  string
	clock   Clock
	idGen   OrderIDGenerator
	logger  Logger
}

func NewPaymentUsecase(
	users repo.UserRepository,
	tx repo.TransactionManager,
	gateway PaymentGateway,
	keyID string,
	secret string,
	clock Clock,
	idGen OrderIDGenerator,
	logger Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		users:   users,
		tx:      tx,
		gateway: gateway,
		keyID:   keyID,
		secret:  secret,
		clock:   clock,
		idGen:   idGen,
		logger:  logger,
	}
}

type CreateIntentInput struct {
	UserID   string
	Amount   float64
	Currency string
	Shipping ShippingInput
}

type IntentOutput struct {
	RazorpayOrderID string
	Amount          int64
	Currency        string
	KeyID           string
}

type VerifyPaymentInput struct {
	UserID            string
	RazorpayOrderID   string
	RazorpayPaymentID string
	RazorpaySignature string
	Shipping          ShippingInput
	Items             []OrderItemInput
	TotalAmount       float64
	PaymentMethod     string
}

// CreateIntent はゲートウェイ側にintentを作るだけでローカル状態は変えない。
// 同じ入力で何度呼んでも独立したintentができる。
func (u *PaymentUsecase) CreateIntent(ctx context.Context, in CreateIntentInput) (IntentOutput, error) {
	if err := validateUserID(in.UserID); err != nil {
		return IntentOutput{}, err
	}
	if in.Amount <= 0 {
		return IntentOutput{}, NewHTTPError(http.StatusBadRequest, "User ID and amount are required")
	}

	user, err := u.users.FindByID(ctx, in.UserID)
	if err == repo.ErrNotFound {
		return IntentOutput{}, NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return IntentOutput{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Failed to create order", err)
	}

	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}

	customerName := in.Shipping.FullName
	if customerName == "" {
		customerName = user.Name
	}

	//ゲートウェイはminor unit（×100）
	paise := int64(math.Round(in.Amount * 100))
	receipt := fmt.Sprintf("receipt_order_%d", u.clock.Now().UnixMilli())

	gwOrderID, gwAmount, gwCurrency, err := u.gateway.CreateOrder(ctx, paise, currency, receipt, map[string]string{
		"userId":        in.UserID,
		"customerName":  customerName,
		"customerEmail": user.Email,
	})
	if err != nil {
		return IntentOutput{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Failed to create order", err)
	}

	return IntentOutput{
		RazorpayOrderID: gwOrderID,
		Amount:          gwAmount,
		Currency:        gwCurrency,
		KeyID:           u.keyID,
	}, nil
}

// VerifyAndCapture は署名を検証し、成功時のみ注文を確定してカートを空にする。
// 署名不一致では一切書き込まない。
func (u *PaymentUsecase) VerifyAndCapture(ctx context.Context, in VerifyPaymentInput) (model.Order, error) {
	if in.RazorpayOrderID == "" || in.RazorpayPaymentID == "" || in.RazorpaySignature == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "Missing payment verification parameters")
	}
	if err := validateUserID(in.UserID); err != nil {
		return model.Order{}, err
	}

	//HMAC-SHA256(secret, orderId + "|" + paymentId) のhexと定数時間比較
	if !u.signatureValid(in.RazorpayOrderID, in.RazorpayPaymentID, in.RazorpaySignature) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "Invalid payment signature")
	}

	if err := u.requireUser(ctx, in.UserID); err != nil {
		return model.Order{}, err
	}

	//検証済みの決済は保存前に痕跡を残す（保存失敗時の照合用）
	u.logger.Infof("payment verified: user=%s razorpay_order=%s razorpay_payment=%s", in.UserID, in.RazorpayOrderID, in.RazorpayPaymentID)

	gwOrderID := in.RazorpayOrderID
	gwPaymentID := in.RazorpayPaymentID

	order := model.Order{
		UserID:            in.UserID,
		OrderID:           u.idGen.NewOrderID(),
		OrderDate:         u.clock.Now(),
		TotalAmount:       in.TotalAmount,
		OrderStatus:       model.OrderStatusProcessing,
		PaymentMethod:     defaultPaymentMethod(in.PaymentMethod, model.PaymentMethodCard),
		PaymentStatus:     model.PaymentStatusCompleted,
		ShippingAddress:   toShippingAddress(in.Shipping),
		OrderItems:        toOrderItems(in.Items),
		RazorpayOrderID:   &gwOrderID,
		RazorpayPaymentID: &gwPaymentID,
	}
	if err := validateOrderEnums(order); err != nil {
		return model.Order{}, err
	}

	//注文追加＋カートクリアは不可分
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().Create(ctx, &order); err != nil {
			return err
		}
		return r.Carts().Clear(ctx, in.UserID)
	})
	if err != nil {
		return model.Order{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Payment verification failed", err)
	}

	return order, nil
}

func (u *PaymentUsecase) signatureValid(gwOrderID string, gwPaymentID string, signature string) bool {
	mac := hmac.New(sha256.New, []byte(u.secret))
	mac.Write([]byte(gwOrderID + "|" + gwPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (u *PaymentUsecase) requireUser(ctx context.Context, userID string) error {
	ok, err := u.users.Exists(ctx, userID)
	if err != nil {
		return NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}
	return nil
}
