package contact_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/portfolio/contactmail/internal/contact"
	"github.com/portfolio/contactmail/pkg/mailer"
)

func newTestService(t *testing.T, sender *mockSender, apiKey string, rec contact.Recorder) *contact.Service {
	t.Helper()

	composer, err := contact.NewComposer(contact.HTMLEscape)
	require.NoError(t, err)

	var s mailer.Sender
	if sender != nil {
		s = sender
	}
	delivery := contact.NewDeliveryClient(s, contact.NewProviderConfig(apiKey, 0), nil)
	return contact.NewService(composer, delivery, contact.WithRecorder(rec))
}

func TestService_Handle(t *testing.T) {
	t.Parallel()

	t.Run("sends composed email", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
			return e.Subject == "New Contact Form Message from Ada" &&
				e.ReplyTo == "ada@example.com" &&
				assert.ObjectsAreEqual([]string{contact.RecipientAddress}, e.To)
		})).Return("provider-id", nil).Run(func(args mock.Arguments) {
			e := args.Get(1).(*mailer.Email)
			assert.Contains(t, e.HTML, "Hi<br>there")
		}).Once()

		rec := &fakeRecorder{}
		svc := newTestService(t, sender, "re_123", rec)

		resp := svc.HandleBody(context.Background(),
			[]byte(`{"name":"Ada","email":"ada@example.com","message":"Hi\nthere"}`))

		assert.Equal(t, http.StatusOK, resp.Status)
		assert.JSONEq(t, `{"success":true,"message":"Email sent successfully!","id":"provider-id"}`, string(resp.JSON()))
		assert.Equal(t, []string{contact.ResultSent}, rec.submissions)
		assert.Equal(t, []string{contact.ResultSent}, rec.deliveries)
		sender.AssertExpectations(t)
	})

	t.Run("invalid email never reaches provider", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		rec := &fakeRecorder{}
		svc := newTestService(t, sender, "re_123", rec)

		resp := svc.HandleBody(context.Background(),
			[]byte(`{"name":"Ada","email":"not-an-email","message":"Hi"}`))

		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.JSONEq(t, `{"error":"Invalid email format"}`, string(resp.JSON()))
		assert.Equal(t, []string{contact.ResultInvalid}, rec.submissions)
		assert.Empty(t, rec.deliveries)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, &mockSender{}, "re_123", nil)
		resp := svc.HandleBody(context.Background(), nil)

		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, string(resp.JSON()))
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		rec := &fakeRecorder{}
		svc := newTestService(t, &mockSender{}, "re_123", rec)
		resp := svc.HandleBody(context.Background(), []byte(`{"name":`))

		assert.Equal(t, http.StatusInternalServerError, resp.Status)
		body, ok := resp.Body.(contact.ErrorBody)
		require.True(t, ok)
		assert.Equal(t, contact.MsgSendFailed, body.Error)
		assert.Contains(t, body.Details, "decode submission")
		assert.Equal(t, []string{contact.ResultUnhandled}, rec.submissions)
	})

	for _, body := range []string{`[]`, `"x"`, `42`, `{"name":123,"email":"ada@example.com","message":"Hi"}`} {
		t.Run("unusable body "+body, func(t *testing.T) {
			t.Parallel()

			sender := &mockSender{}
			rec := &fakeRecorder{}
			svc := newTestService(t, sender, "re_123", rec)
			resp := svc.HandleBody(context.Background(), []byte(body))

			assert.Equal(t, http.StatusBadRequest, resp.Status)
			assert.JSONEq(t, `{"error":"Missing required fields"}`, string(resp.JSON()))
			assert.Equal(t, []string{contact.ResultInvalid}, rec.submissions)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, nil, "", nil)
		resp := svc.Handle(context.Background(), contact.RawSubmission{
			Name: ptr("Ada"), Email: ptr("ada@example.com"), Message: ptr("Hi"),
		})

		assert.Equal(t, http.StatusInternalServerError, resp.Status)
		assert.JSONEq(t, `{"error":"Email service not configured"}`, string(resp.JSON()))
		assert.ErrorIs(t, svc.Healthcheck()(context.Background()), contact.ErrServiceNotConfigured)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.Anything).Panic("boom")

		rec := &fakeRecorder{}
		svc := newTestService(t, sender, "re_123", rec)

		var resp contact.Response
		require.NotPanics(t, func() {
			resp = svc.Handle(context.Background(), contact.RawSubmission{
				Name: ptr("Ada"), Email: ptr("ada@example.com"), Message: ptr("Hi"),
			})
		})

		assert.Equal(t, http.StatusInternalServerError, resp.Status)
		assert.JSONEq(t, `{"error":"Failed to send email","details":"boom"}`, string(resp.JSON()))
		assert.Equal(t, []string{contact.ResultUnhandled}, rec.submissions)
	})
}
