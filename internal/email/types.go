package email

// SendEmailRequest is a plain text email send.
type SendEmailRequest struct {
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
	Subject     string `json:"subject"`
	Text        string `json:"text"`
}

// SendEmailResponse reports the outcome of a plain email send.
type SendEmailResponse struct {
	MessageID string `json:"message_id,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// SendEmailWithTemplateRequest renders a named HTML template with the given
// data and sends the result.
type SendEmailWithTemplateRequest struct {
	FromAddress  string                 `json:"from_address"`
	ToAddress    string                 `json:"to_address"`
	Subject      string                 `json:"subject"`
	TemplatePath string                 `json:"template_path"`
	Data         map[string]interface{} `json:"data"`
}

// SendEmailWithTemplateResponse reports the outcome of a templated send.
type SendEmailWithTemplateResponse struct {
	MessageID string `json:"message_id,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// CredentialsEmailRequest carries everything needed to deliver access
// credentials to a newly approved gym administrator.
type CredentialsEmailRequest struct {
	ToEmail  string `json:"toEmail"`
	ToName   string `json:"toName"`
	GymName  string `json:"gymName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	TenantID string `json:"tenantId"`
	GymCode  string `json:"gymCode"`
}
