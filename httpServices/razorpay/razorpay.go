// Package razorpay is a minimal client for the Razorpay Orders API plus the
// signature check used to confirm a payment really came from the gateway.
package razorpay

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

type Client struct {
	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
		keyID:      keyID,
		keySecret:  keySecret,
	}
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateOrder registers a payment order with the gateway and returns its id.
// The amount is in minor currency units (paise for INR).
func (c *Client) CreateOrder(amountMinorUnits int64, currency, receipt string) (string, error) {
	body, err := json.Marshal(orderRequest{
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read order response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("order request returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var order orderResponse
	if err := json.Unmarshal(respBody, &order); err != nil {
		return "", fmt.Errorf("failed to parse order response: %w", err)
	}
	if order.ID == "" {
		return "", fmt.Errorf("order response missing id: %s", string(respBody))
	}

	return order.ID, nil
}

// Signature computes the hex HMAC-SHA256 the gateway sends back after a
// successful payment, over "orderId|paymentId".
func Signature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether the client-supplied signature matches the
// expected one. The comparison is constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := Signature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
