package suggest

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

type stubSuggester struct {
	text string
	err  error
}

func (s *stubSuggester) Suggest(context.Context, string, string) (string, error) {
	return s.text, s.err
}

func newSuggestRouter(svc Service) http.Handler {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := NewHandler(svc, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestSuggestReturnsGeneratedText(t *testing.T) {
	router := newSuggestRouter(&stubSuggester{text: "- Scaling Solutions"})

	req := httptest.NewRequest(http.MethodPost, "/suggest",
		bytes.NewBufferString(`{"profession":"Engineer","challenges":"scaling"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Scaling Solutions")
}

func TestSuggestRequiresBothFields(t *testing.T) {
	router := newSuggestRouter(&stubSuggester{text: "x"})

	req := httptest.NewRequest(http.MethodPost, "/suggest",
		bytes.NewBufferString(`{"profession":"Engineer"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggestCollaboratorFailure(t *testing.T) {
	router := newSuggestRouter(&stubSuggester{err: errors.New("model unavailable")})

	req := httptest.NewRequest(http.MethodPost, "/suggest",
		bytes.NewBufferString(`{"profession":"Engineer","challenges":"scaling"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
