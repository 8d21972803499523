package email

import (
	"talentswipe_backend/internal/logger"
)

// LogProvider stands in for SMTP when no mail server is configured:
// messages are logged instead of delivered. Local development only.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(to, subject, body string) error {
	logger.Info("email (not sent, SMTP disabled)",
		"to", to,
		"subject", subject,
		"body_length", len(body),
	)
	return nil
}
