package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const resendAPIURL = "https://api.resend.com/emails"

// Sender delivers one transactional email to the support inbox.
type Sender interface {
	Send(ctx context.Context, name, email, message string) error
}

// Resend sends through the Resend REST API.
type Resend struct {
	apiKey     string
	to         string
	from       string
	httpClient *http.Client
}

// NewResend builds a Resend sender. The api key is required; callers keep
// a nil Sender when mail is unconfigured.
func NewResend(apiKey, to, from string, timeout time.Duration) *Resend {
	return &Resend{
		apiKey:     apiKey,
		to:         to,
		from:       from,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// strictHTMLPolicy strips every element and attribute, so user-supplied
// text can be embedded in the HTML body without carrying markup along.
func strictHTMLPolicy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

type resendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	ReplyTo string `json:"reply_to,omitempty"`
	HTML    string `json:"html"`
}

func (r *Resend) Send(ctx context.Context, name, email, message string) error {
	safeName := strictHTMLPolicy().Sanitize(name)
	safeMessage := strictHTMLPolicy().Sanitize(message)

	body := resendRequest{
		From:    r.from,
		To:      r.to,
		Subject: fmt.Sprintf("Chat fallback from %s", strings.TrimSpace(safeName)),
		ReplyTo: email,
		HTML: fmt.Sprintf("<p><b>Name:</b> %s</p><p><b>Email:</b> %s</p><p>%s</p>",
			safeName, strictHTMLPolicy().Sanitize(email), safeMessage),
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", resendAPIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("resend returned status: %d", resp.StatusCode)
	}
	return nil
}
