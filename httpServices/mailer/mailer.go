// Package mailer sends transactional email through the SendGrid v3 API.
// When disabled or unconfigured it logs the message instead of sending it,
// which keeps local development working without an API key.
package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hostel-booking/logger"
)

const sendEndpoint = "https://api.sendgrid.com/v3/mail/send"

type Client struct {
	httpClient *http.Client
	apiKey     string
	fromEmail  string
	disabled   bool
}

func NewClient(apiKey, fromEmail string, disabled bool) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		disabled:   disabled,
	}
}

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// Send delivers one HTML email. Failures are returned to the caller; callers
// that treat email as best effort should log and move on.
func (c *Client) Send(to, subject, html string) error {
	if c.disabled || c.apiKey == "" {
		logger.Info(fmt.Sprintf("📧 [MOCK EMAIL] To: %s | Subject: %s", to, subject))
		return nil
	}

	body, err := json.Marshal(sendRequest{
		Personalizations: []personalization{{To: []address{{Email: to}}}},
		From:             address{Email: c.fromEmail},
		Subject:          subject,
		Content:          []content{{Type: "text/html", Value: html}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, sendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail request returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
