package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// RazorpayClient はゲートウェイのorders APIを叩く薄いクライアント。
// key_id/key_secretのBasic認証でJSONをPOSTするだけ。
type RazorpayClient struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
}

func NewRazorpayClient(keyID string, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateOrder はゲートウェイ側の注文（payment intent）を作る。
// amountはminor unit（paise）で渡すこと。
func (c *RazorpayClient) CreateOrder(ctx context.Context, amount int64, currency string, receipt string, notes map[string]string) (string, int64, string, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return "", 0, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", 0, "", err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, "", fmt.Errorf("razorpay create order: status %d: %s", resp.StatusCode, string(respBody))
	}

	var out createOrderResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", 0, "", err
	}
	return out.ID, out.Amount, out.Currency, nil
}
