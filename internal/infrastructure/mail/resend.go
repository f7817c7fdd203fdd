package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/roronge/iuran04/internal/domain/notification"
	"github.com/roronge/iuran04/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ResendMailer sends transactional email through the Resend HTTP API
type ResendMailer struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewResendMailer creates a mailer from the mail configuration
func NewResendMailer(cfg config.MailConfig, logger *zap.Logger) *ResendMailer {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &ResendMailer{
		apiKey:  cfg.APIKey,
		from:    fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress),
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send delivers one email. The caller decides whether a failure is
// fatal; this just reports it.
func (m *ResendMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	payload, err := json.Marshal(sendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode, string(body))
	}

	m.logger.Debug("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// NopMailer discards all email. Used when mail is disabled in config.
type NopMailer struct{}

// Send implements notification.Mailer
func (NopMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	return nil
}

var (
	_ notification.Mailer = (*ResendMailer)(nil)
	_ notification.Mailer = NopMailer{}
)
