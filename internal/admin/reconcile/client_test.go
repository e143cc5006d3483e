package reconcile_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"summit-connect/internal/admin/reconcile"
	"summit-connect/internal/attendee/models"
	dErrors "summit-connect/pkg/domain-errors"
)

func newAttendeeTestServer(t *testing.T, token string) (*httptest.Server, *[]models.Attendee) {
	t.Helper()
	records := []models.Attendee{}

	mux := http.NewServeMux()
	mux.HandleFunc("/attendees", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Header.Get("Authorization") != "Bearer "+token {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "missing or invalid session"})
			return
		}
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(records)
		case http.MethodPost:
			var a models.Attendee
			if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			records = append(records, a)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(a)
		case http.MethodDelete:
			id := r.URL.Query().Get("id")
			if id == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "id query parameter is required"})
				return
			}
			kept := records[:0]
			for _, a := range records {
				if a.ID != id {
					kept = append(kept, a)
				}
			}
			records = kept
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "attendee deleted successfully"})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &records
}

func TestClientRoundTrip(t *testing.T) {
	srv, records := newAttendeeTestServer(t, "session-token")
	c := reconcile.NewClient(srv.URL, srv.Client())
	c.SetToken("session-token")
	ctx := context.Background()

	created, err := c.Create(ctx, seedAttendees()[0])
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "a-1" {
		t.Fatalf("got created id %q, want %q", created.ID, "a-1")
	}

	list, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].FullName != "Jane Doe" {
		t.Fatalf("unexpected list: %+v", list)
	}

	if err := c.Delete(ctx, "a-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(*records) != 0 {
		t.Fatalf("server still holds %d records", len(*records))
	}
}

func TestClientRejectedWithoutToken(t *testing.T) {
	srv, _ := newAttendeeTestServer(t, "session-token")
	c := reconcile.NewClient(srv.URL, srv.Client())

	_, err := c.List(context.Background())
	if !dErrors.HasCode(err, dErrors.CodeUnauthorized) {
		t.Fatalf("got %v, want unauthorized", err)
	}
}

func TestClientDeleteWithoutID(t *testing.T) {
	srv, _ := newAttendeeTestServer(t, "session-token")
	c := reconcile.NewClient(srv.URL, srv.Client())
	c.SetToken("session-token")

	err := c.Delete(context.Background(), "")
	if !dErrors.HasCode(err, dErrors.CodeBadRequest) {
		t.Fatalf("got %v, want bad request", err)
	}
}

func TestClientUnreachableServer(t *testing.T) {
	c := reconcile.NewClient("http://127.0.0.1:1", nil)

	_, err := c.List(context.Background())
	if !dErrors.HasCode(err, dErrors.CodeUnavailable) {
		t.Fatalf("got %v, want unavailable", err)
	}
}

func TestReconcilerOverHTTP(t *testing.T) {
	srv, _ := newAttendeeTestServer(t, "session-token")
	c := reconcile.NewClient(srv.URL, srv.Client())
	c.SetToken("session-token")
	ctx := context.Background()

	for _, a := range seedAttendees() {
		if _, err := c.Create(ctx, a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	r := reconcile.New(c)
	if err := r.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := len(r.Attendees()); got != 2 {
		t.Fatalf("got %d attendees, want 2", got)
	}

	removal, err := r.Remove(ctx, "a-1")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removal.Phase != reconcile.PhaseCommitted {
		t.Fatalf("got phase %q, want %q", removal.Phase, reconcile.PhaseCommitted)
	}

	if err := r.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	list := r.Attendees()
	if len(list) != 1 || list[0].ID != "a-2" {
		t.Fatalf("server and cache disagree: %+v", list)
	}
}
