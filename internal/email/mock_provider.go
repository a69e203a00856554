package email

import "sync"

// SentMail records one captured activation or reset mail.
type SentMail struct {
	To    string
	UID   string
	Token string
	Kind  string // "activation" or "password_reset"
}

// MockProvider captures outgoing mail instead of delivering it. Used by
// tests and for local development without an SMTP server.
type MockProvider struct {
	mu   sync.Mutex
	Sent []SentMail

	// SendErr, when set, is returned from the Send* methods.
	SendErr error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Send(_ *Email) error {
	return m.SendErr
}

func (m *MockProvider) SendActivation(to, uid, token string) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.record(SentMail{To: to, UID: uid, Token: token, Kind: "activation"})
	return nil
}

func (m *MockProvider) SendPasswordReset(to, uid, token string) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.record(SentMail{To: to, UID: uid, Token: token, Kind: "password_reset"})
	return nil
}

func (m *MockProvider) Validate() error { return nil }

func (m *MockProvider) Close() error { return nil }

// Last returns the most recent captured mail, or nil when none was sent.
func (m *MockProvider) Last() *SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return nil
	}
	mail := m.Sent[len(m.Sent)-1]
	return &mail
}

func (m *MockProvider) record(mail SentMail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, mail)
}
