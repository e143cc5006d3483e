package registration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendeesvc "summit-connect/internal/attendee/service"
	"summit-connect/internal/attendee/store"
)

func newRegistrationRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := discardLogger()
	repo := attendeesvc.New(store.NewInMemory(), logger, nil)
	wf := New(repo, &stubSuggester{text: "- 'The Future of Engineering'"}, nil, logger, nil)

	h := NewHandler(wf, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestRegisterEndpointSucceeds(t *testing.T) {
	router := newRegistrationRouter(t)

	body, _ := json.Marshal(janeDoe())
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.NotEmpty(t, result.Attendee.ID)
	assert.Equal(t, "Jane Doe", result.Attendee.FullName)
	assert.Contains(t, result.Suggestions, "Future of Engineering")
}

func TestRegisterEndpointReturnsFieldErrors(t *testing.T) {
	router := newRegistrationRouter(t)

	payload := janeDoe()
	payload.Phone = "555-123"
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation", resp.Error)
	assert.Contains(t, resp.Fields, "phone")
}

func TestRegisterEndpointRejectsMalformedJSON(t *testing.T) {
	router := newRegistrationRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
