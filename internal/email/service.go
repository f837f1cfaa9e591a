package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/metagym/metagym-api/internal/config"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/logger"
)

const (
	credentialsTemplate = "credentials-email.html"
	credentialsSubject  = "Request Approved - Access Credentials"
)

// emailTemplates stores email templates as string constants
var emailTemplates = map[string]string{
	credentialsTemplate: `<!DOCTYPE html>
<html>
<head>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
    <title>Request Approved</title>
</head>
<body style="background-color: #0e0e10; color: #fefefe; padding: 40px; font-family: Arial, sans-serif;">
    <div style="max-width: 600px; margin: 0 auto;">
        <div style="text-align: center; margin-bottom: 30px;">
            <h1 style="color: #fe6b24; margin: 0 0 10px 0; font-size: 28px;">Request Approved!</h1>
            <p style="color: #a3a3a3; margin: 0; font-size: 16px;">{{.gym_name}}</p>
        </div>

        <div style="background: #1a1a1d; border: 1px solid #262626; border-radius: 12px; padding: 25px; margin-bottom: 25px;">
            <p style="color: #d4d4d4; font-size: 16px; line-height: 1.6; margin: 0 0 15px 0;">
                Hello <strong style="color: #fe6b24;">{{.to_name}}</strong>,
            </p>
            <p style="color: #a3a3a3; font-size: 14px; margin: 0; line-height: 1.6;">
                We are pleased to inform you that your request to register the gym <strong style="color: #d4d4d4;">{{.gym_name}}</strong> has been <strong style="color: #fe6b24;">successfully approved</strong>.
            </p>
        </div>

        <div style="background: rgba(254, 107, 36, 0.1); border: 1px solid rgba(254, 107, 36, 0.3); border-radius: 8px; padding: 20px; margin-bottom: 25px;">
            <h3 style="color: #fe6b24; margin: 0 0 15px 0; font-size: 18px; text-align: center;">
                Your access credentials
            </h3>
            <div style="background: #1a1a1d; border: 1px solid #262626; border-radius: 8px; padding: 15px; margin-bottom: 12px;">
                <div style="color: #a3a3a3; font-size: 12px; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 5px;">Email</div>
                <div style="color: #fe6b24; font-family: 'Courier New', monospace; font-size: 16px; font-weight: bold;">{{.email}}</div>
            </div>
            <div style="background: #1a1a1d; border: 1px solid #262626; border-radius: 8px; padding: 15px; margin-bottom: 12px;">
                <div style="color: #a3a3a3; font-size: 12px; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 5px;">Password</div>
                <div style="color: #fe6b24; font-family: 'Courier New', monospace; font-size: 16px; font-weight: bold;">{{.password}}</div>
            </div>
            <div style="background: #1a1a1d; border: 1px solid #262626; border-radius: 8px; padding: 15px; margin-bottom: 12px;">
                <div style="color: #a3a3a3; font-size: 12px; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 5px;">Tenant ID</div>
                <div style="color: #fe6b24; font-family: 'Courier New', monospace; font-size: 16px; font-weight: bold;">{{.tenant_id}}</div>
            </div>
            <div style="background: #1a1a1d; border: 1px solid #262626; border-radius: 8px; padding: 15px;">
                <div style="color: #a3a3a3; font-size: 12px; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 5px;">Gym Code</div>
                <div style="color: #fe6b24; font-family: 'Courier New', monospace; font-size: 16px; font-weight: bold;">{{.gym_code}}</div>
            </div>
        </div>

        <div style="background: linear-gradient(135deg, #1a1a1d 0%, #141414 100%); border: 2px solid #fe6b24; border-radius: 12px; padding: 25px; text-align: center; margin-bottom: 25px;">
            <h4 style="color: #fefefe; margin: 0 0 15px 0; font-size: 18px; font-weight: bold;">
                Access the administration panel
            </h4>
            <a href="{{.admin_panel_url}}" style="display: inline-block; background: linear-gradient(135deg, #e04a36, #fe6b24); color: white; padding: 12px 30px; text-decoration: none; border-radius: 8px; font-weight: bold; font-size: 16px;">
                Sign In
            </a>
        </div>

        <div style="background: #141414; border: 1px solid rgba(254, 107, 36, 0.3); border-radius: 8px; padding: 20px; margin-bottom: 25px;">
            <p style="color: #fe6b24; margin: 0 0 10px 0; font-size: 14px; font-weight: bold;">
                Important - Security
            </p>
            <p style="color: #a3a3a3; margin: 0; font-size: 13px; line-height: 1.6;">
                For your security, we recommend changing your password on your first login. Keep these credentials in a safe place and do not share them with anyone.
            </p>
        </div>

        <div style="margin-top: 25px; padding-top: 20px; border-top: 1px solid #262626; text-align: center;">
            <p style="color: #6c757d; font-size: 12px; margin: 0 0 5px 0;">
                This is an automated email, please do not reply to this message.
            </p>
            <p style="color: #6c757d; font-size: 12px; margin: 0;">
                Meta Gym - Gym Management System
            </p>
        </div>
    </div>
</body>
</html>`,
}

// Email sends transactional mail through the configured client.
type Email struct {
	client *EmailClient
	cfg    *config.Configuration
	logger *logger.Logger
}

func NewEmail(client *EmailClient, cfg *config.Configuration, log *logger.Logger) *Email {
	return &Email{
		client: client,
		cfg:    cfg,
		logger: log,
	}
}

// SendEmail sends a plain text email
func (s *Email) SendEmail(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error) {
	if !s.client.IsEnabled() {
		s.logger.Warnw("email client is disabled, skipping email send",
			"to", req.ToAddress,
			"subject", req.Subject,
		)
		return &SendEmailResponse{
			Success: false,
			Error:   "email client is disabled",
		}, nil
	}

	fromAddress := s.client.GetFromAddress()
	if fromAddress == "" {
		fromAddress = req.FromAddress
	}

	messageID, err := s.client.SendEmail(ctx, fromAddress, req.ToAddress, req.Subject, "", req.Text)
	if err != nil {
		s.logger.Errorw("failed to send email",
			"error", err,
			"to", req.ToAddress,
			"subject", req.Subject,
		)
		return &SendEmailResponse{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	s.logger.Infow("email sent successfully",
		"message_id", messageID,
		"to", req.ToAddress,
		"subject", req.Subject,
	)

	return &SendEmailResponse{
		MessageID: messageID,
		Success:   true,
	}, nil
}

// SendEmailWithTemplate sends an email using an HTML template
func (s *Email) SendEmailWithTemplate(ctx context.Context, req SendEmailWithTemplateRequest) (*SendEmailWithTemplateResponse, error) {
	if !s.client.IsEnabled() {
		s.logger.Warnw("email client is disabled, skipping email send",
			"to", req.ToAddress,
			"subject", req.Subject,
			"template", req.TemplatePath,
		)
		return &SendEmailWithTemplateResponse{
			Success: false,
			Error:   "email client is disabled",
		}, nil
	}

	fromAddress := s.client.GetFromAddress()
	if fromAddress == "" {
		fromAddress = req.FromAddress
	}

	htmlContent, err := s.readTemplate(req.TemplatePath)
	if err != nil {
		s.logger.Errorw("failed to read email template",
			"error", err,
			"template", req.TemplatePath,
		)
		return &SendEmailWithTemplateResponse{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	htmlContent, err = s.renderTemplate(htmlContent, req.Data)
	if err != nil {
		s.logger.Errorw("failed to render email template",
			"error", err,
			"template", req.TemplatePath,
		)
		return &SendEmailWithTemplateResponse{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	messageID, err := s.client.SendEmail(ctx, fromAddress, req.ToAddress, req.Subject, htmlContent, "")
	if err != nil {
		s.logger.Errorw("failed to send templated email",
			"error", err,
			"from", fromAddress,
			"to", req.ToAddress,
			"subject", req.Subject,
			"template", req.TemplatePath,
		)
		return &SendEmailWithTemplateResponse{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	s.logger.Infow("templated email sent successfully",
		"message_id", messageID,
		"to", req.ToAddress,
		"subject", req.Subject,
		"template", req.TemplatePath,
	)

	return &SendEmailWithTemplateResponse{
		MessageID: messageID,
		Success:   true,
	}, nil
}

// SendCredentials delivers the access credentials email produced by the
// approval workflow.
func (s *Email) SendCredentials(ctx context.Context, req CredentialsEmailRequest) (*SendEmailWithTemplateResponse, error) {
	if req.ToEmail == "" || req.ToName == "" || req.GymName == "" ||
		req.Email == "" || req.Password == "" || req.TenantID == "" {
		return nil, ierr.NewError("missing required fields").
			WithHint("Missing required fields").
			Mark(ierr.ErrValidation)
	}

	return s.SendEmailWithTemplate(ctx, SendEmailWithTemplateRequest{
		ToAddress:    req.ToEmail,
		Subject:      credentialsSubject,
		TemplatePath: credentialsTemplate,
		Data: map[string]interface{}{
			"to_name":         req.ToName,
			"gym_name":        req.GymName,
			"email":           req.Email,
			"password":        req.Password,
			"tenant_id":       req.TenantID,
			"gym_code":        req.GymCode,
			"admin_panel_url": s.cfg.Email.AdminPanelURL,
		},
	})
}

func (s *Email) readTemplate(templatePath string) (string, error) {
	templateContent, exists := emailTemplates[templatePath]
	if !exists {
		return "", fmt.Errorf("template not found: %s", templatePath)
	}

	return templateContent, nil
}

// renderTemplate renders an HTML template using Go's html/template for safe HTML rendering
func (s *Email) renderTemplate(templateContent string, data map[string]interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
