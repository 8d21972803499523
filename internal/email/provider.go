package email

// Provider is the email-sending surface services depend on; tests and
// local development substitute fakes.
type Provider interface {
	Send(to, subject, body string) error
}
