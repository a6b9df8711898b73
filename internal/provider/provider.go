// internal/provider/provider.go
package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Sender delivers one SMS and returns the provider's message ID. Every
// implementation must enforce its own network timeout so one stuck call
// cannot stall a sweep.
type Sender interface {
	Send(to, body string) (string, error)
}

// TwilioSender posts to the Twilio Messages REST endpoint.
type TwilioSender struct {
	AccountSID string
	AuthToken  string
	From       string
	BaseURL    string
	Client     *http.Client
}

// NewTwilioSenderFromEnv builds a sender from TWILIO_* env vars.
func NewTwilioSenderFromEnv() *TwilioSender {
	return &TwilioSender{
		AccountSID: os.Getenv("TWILIO_SID"),
		AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		From:       os.Getenv("TWILIO_PHONE_NUMBER"),
		BaseURL:    "https://api.twilio.com",
		Client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *TwilioSender) Send(to, body string) (string, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.From)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.BaseURL, s.AccountSID)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(s.AccountSID, s.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("twilio rejected send to %s: status %d: %s", to, resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var parsed struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("twilio response decode: %w", err)
	}
	return parsed.SID, nil
}

// MockSender simulates sending with 90% success, for local runs and seeding.
type MockSender struct{}

func (MockSender) Send(to, body string) (string, error) {
	if rand.Float64() < 0.9 {
		return fmt.Sprintf("MOCK-%d", rand.Intn(1_000_000)), nil
	}
	return "", fmt.Errorf("mock sending failed")
}

var _ Sender = (*TwilioSender)(nil)
var _ Sender = MockSender{}
