package email

import (
	"context"

	"github.com/resend/resend-go/v2"

	"github.com/metagym/metagym-api/internal/config"
	ierr "github.com/metagym/metagym-api/internal/errors"
)

// EmailClient wraps the Resend API. It is a no-op when email is disabled
// in configuration, so local environments do not need an API key.
type EmailClient struct {
	client      *resend.Client
	enabled     bool
	fromAddress string
}

func NewEmailClient(cfg *config.Configuration) *EmailClient {
	c := &EmailClient{
		enabled:     cfg.Email.Enabled,
		fromAddress: cfg.Email.FromAddress,
	}
	if cfg.Email.Enabled && cfg.Email.APIKey != "" {
		c.client = resend.NewClient(cfg.Email.APIKey)
	} else {
		c.enabled = false
	}
	return c
}

func (c *EmailClient) IsEnabled() bool {
	return c.enabled
}

func (c *EmailClient) GetFromAddress() string {
	return c.fromAddress
}

// SendEmail sends a single email and returns the provider message ID.
// Either html or text may be empty.
func (c *EmailClient) SendEmail(ctx context.Context, from, to, subject, html, text string) (string, error) {
	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to send email").
			WithReportableDetails(map[string]interface{}{
				"to":      to,
				"subject": subject,
			}).
			Mark(ierr.ErrHTTPClient)
	}
	return sent.Id, nil
}
