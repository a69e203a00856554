package email

// Provider delivers the transactional mails of the account lifecycle.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendActivation delivers the account-activation link for uid/token.
	SendActivation(to, uid, token string) error

	// SendPasswordReset delivers the password-reset link for uid/token.
	SendPasswordReset(to, uid, token string) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders a named mail template with data.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
