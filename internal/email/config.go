package email

import "time"

// SMTPConfig holds SMTP server settings plus the public base URL used to
// build activation and password-reset links.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	BaseURL   string
	Timeout   time.Duration
}

// DefaultConfig returns a config suitable for local development.
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:    "localhost",
		Port:    587,
		BaseURL: "http://localhost:4000",
		Timeout: 30 * time.Second,
	}
}
