package testutil

import (
	"context"
	"sync"

	"github.com/metagym/metagym-api/internal/email"
)

// FakeNotificationSender records credential sends instead of delivering
// them.
type FakeNotificationSender struct {
	mu   sync.Mutex
	sent []email.CredentialsEmailRequest

	// Err, when set, is returned by every send.
	Err error
}

func NewFakeNotificationSender() *FakeNotificationSender {
	return &FakeNotificationSender{}
}

func (s *FakeNotificationSender) SendCredentials(_ context.Context, req email.CredentialsEmailRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	s.sent = append(s.sent, req)
	return nil
}

// Sent returns the recorded sends in order.
func (s *FakeNotificationSender) Sent() []email.CredentialsEmailRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]email.CredentialsEmailRequest(nil), s.sent...)
}
