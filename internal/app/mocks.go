package app

import (
	"sync"

	"healthreach_backend/internal/email"
	"healthreach_backend/internal/logger"
)

// MockEmailProvider records outgoing mail instead of sending it.
// Used in development and in the test server.
type MockEmailProvider struct {
	mu   sync.Mutex
	sent []email.Email
}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, *msg)
	logger.Info("Mock email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) SendSignupCode(to, code string) error {
	return m.Send(&email.Email{
		To:      []string{to},
		Subject: "Your verification code",
		Body:    code,
	})
}

func (m *MockEmailProvider) SendRecoveryCode(to, code string) error {
	return m.Send(&email.Email{
		To:      []string{to},
		Subject: "Your account recovery code",
		Body:    code,
	})
}

func (m *MockEmailProvider) Validate() error { return nil }

func (m *MockEmailProvider) Close() error { return nil }

// Sent returns a copy of all recorded messages.
func (m *MockEmailProvider) Sent() []email.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]email.Email, len(m.sent))
	copy(out, m.sent)
	return out
}
