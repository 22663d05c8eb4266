package contact_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/portfolio/contactmail/pkg/mailer"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

type fakeRecorder struct {
	mu          sync.Mutex
	submissions []string
	deliveries  []string
}

func (r *fakeRecorder) ObserveSubmission(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, result)
}

func (r *fakeRecorder) ObserveDelivery(result string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries = append(r.deliveries, result)
}
