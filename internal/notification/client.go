package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/metagym/metagym-api/internal/config"
	"github.com/metagym/metagym-api/internal/email"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/logger"
)

// Sender delivers access credentials to a gym administrator. Delivery
// failures must not abort the approval that triggered them.
type Sender interface {
	SendCredentials(ctx context.Context, req email.CredentialsEmailRequest) error
}

// credentialsResponse is the wire shape returned by the credentials
// endpoint.
type credentialsResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// HTTPSender posts credential payloads to an external delivery endpoint.
type HTTPSender struct {
	client   *retryablehttp.Client
	endpoint string
	logger   *logger.Logger
}

func NewHTTPSender(cfg *config.Configuration, log *logger.Logger) *HTTPSender {
	client := retryablehttp.NewClient()
	// Credential delivery is fire-and-forget from the caller's point of
	// view; a failed send is logged, not retried.
	client.RetryMax = 0
	client.Logger = log.GetRetryableHTTPLogger()

	return &HTTPSender{
		client:   client,
		endpoint: cfg.Email.CredentialsURL,
		logger:   log,
	}
}

func (s *HTTPSender) SendCredentials(ctx context.Context, req email.CredentialsEmailRequest) error {
	if s.endpoint == "" {
		return ierr.NewError("credentials endpoint is not configured").
			WithHint("Credential delivery is not configured").
			Mark(ierr.ErrSystem)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode credentials payload").
			Mark(ierr.ErrSystem)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to build credentials request").
			Mark(ierr.ErrSystem)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to reach credentials endpoint").
			WithReportableDetails(map[string]interface{}{
				"to_email": req.ToEmail,
			}).
			Mark(ierr.ErrHTTPClient)
	}
	defer resp.Body.Close()

	var body credentialsResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil && resp.StatusCode == http.StatusOK {
		return ierr.WithError(decodeErr).
			WithHint("Credentials endpoint returned an unreadable response").
			Mark(ierr.ErrHTTPClient)
	}

	if resp.StatusCode != http.StatusOK || !body.Success {
		return ierr.NewError("credentials delivery failed").
			WithHint("Credentials email could not be sent").
			WithReportableDetails(map[string]interface{}{
				"status_code": resp.StatusCode,
				"error":       body.Error,
				"to_email":    req.ToEmail,
			}).
			Mark(ierr.ErrHTTPClient)
	}

	s.logger.Infow("credentials email dispatched",
		"to_email", req.ToEmail,
		"gym_name", req.GymName,
	)
	return nil
}

// EmailSender delivers credentials through the in-process email service
// instead of an external endpoint.
type EmailSender struct {
	email *email.Email
}

func NewEmailSender(svc *email.Email) *EmailSender {
	return &EmailSender{email: svc}
}

func (s *EmailSender) SendCredentials(ctx context.Context, req email.CredentialsEmailRequest) error {
	_, err := s.email.SendCredentials(ctx, req)
	return err
}
