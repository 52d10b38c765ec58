package email

// Provider delivers transactional email. Implementations must be safe
// for concurrent use; the services send in background goroutines.
type Provider interface {
	// Send delivers a prepared email.
	Send(email *Email) error

	// SendSignupCode delivers the one-time signup verification code.
	SendSignupCode(to string, code string) error

	// SendRecoveryCode delivers the one-time account recovery code.
	SendRecoveryCode(to string, code string) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}
