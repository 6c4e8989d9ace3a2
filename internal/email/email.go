package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

const resendEndpoint = "https://api.resend.com/emails"

// --- LogSender (for development) ---

// LogSender prints emails to the log instead of sending them.
type LogSender struct {
	senderAddress string
}

// Send logs the email content.
func (s *LogSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	slog.InfoContext(ctx, "Email sent (logged)",
		"from", s.senderAddress,
		"to", to,
		"subject", subject,
		"body", htmlBody,
	)
	return nil
}

// --- ResendSender (for production) ---

// ResendSender sends emails using the Resend API.
type ResendSender struct {
	apiKey        string
	senderAddress string
	endpoint      string
	client        *http.Client
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send dispatches an email using the Resend API.
func (s *ResendSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	sender := s.senderAddress
	if sender == "" {
		sender = "Salon <onboarding@resend.dev>" // Default sender for testing with Resend
	}

	body, err := json.Marshal(resendPayload{
		From:    sender,
		To:      to,
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal resend payload: %w", err)
	}

	endpoint := s.endpoint
	if endpoint == "" {
		endpoint = resendEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := s.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API returned an error: status %d", resp.StatusCode)
	}

	slog.InfoContext(ctx, "Successfully sent email via Resend", "to", to, "subject", subject)
	return nil
}
