package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeUS(t *testing.T) {
	cases := map[string]string{
		"5551234567":     "+15551234567",
		"555-123-4567":   "+15551234567",
		"(555) 123 4567": "+15551234567",
		"":               "+1",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeUS(in))
	}
}

type stubNotifier struct {
	sid string
	err error
	to  string
}

func (s *stubNotifier) Send(_ context.Context, to, _ string) (string, error) {
	s.to = to
	return s.sid, s.err
}

func newNotifyRouter(n Service) http.Handler {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := NewHandler(n, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestSendSMSSucceeds(t *testing.T) {
	stub := &stubNotifier{sid: "SM123"}
	router := newNotifyRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/send-sms",
		bytes.NewBufferString(`{"to":"5551234567","body":"see you there"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SM123")
}

func TestSendSMSRequiresFields(t *testing.T) {
	router := newNotifyRouter(&stubNotifier{})

	req := httptest.NewRequest(http.MethodPost, "/send-sms", bytes.NewBufferString(`{"to":"5551234567"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendSMSProviderFailure(t *testing.T) {
	router := newNotifyRouter(&stubNotifier{err: errors.New("provider down")})

	req := httptest.NewRequest(http.MethodPost, "/send-sms",
		bytes.NewBufferString(`{"to":"5551234567","body":"hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSendSMSNotConfigured(t *testing.T) {
	router := newNotifyRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/send-sms",
		bytes.NewBufferString(`{"to":"5551234567","body":"hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
