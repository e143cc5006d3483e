// Package reconcile implements the admin view's client-side state: a local
// cache of the attendee list kept in sync with the repository through
// wholesale refreshes and optimistic removals with rollback.
package reconcile

import (
	"context"
	"encoding/csv"
	"io"
	"sync"

	"summit-connect/internal/attendee/models"
	dErrors "summit-connect/pkg/domain-errors"
)

// Repository is the slice of the attendee repository the admin view needs.
// Satisfied by the in-process service and by the HTTP Client.
type Repository interface {
	List(ctx context.Context) ([]models.Attendee, error)
	Delete(ctx context.Context, id string) error
}

// Phase tracks an optimistic removal through its lifecycle:
// Idle -> Pending -> Committed | RolledBack.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhasePending    Phase = "pending"
	PhaseCommitted  Phase = "committed"
	PhaseRolledBack Phase = "rolled_back"
)

// Removal is the explicit state value for one optimistic remove, carrying the
// pre-removal snapshot needed for rollback.
type Removal struct {
	ID       string
	Phase    Phase
	snapshot []models.Attendee
}

// Reconciler holds the admin view's local cache. All methods are safe for
// concurrent use; the mutex models the single-threaded caller the original
// UI event loop provided.
type Reconciler struct {
	repo Repository

	mu      sync.Mutex
	cache   []models.Attendee
	loading bool
	closed  bool
}

func New(repo Repository) *Reconciler {
	return &Reconciler{repo: repo}
}

// Attendees returns a copy of the current local cache.
func (r *Reconciler) Attendees() []models.Attendee {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Attendee{}, r.cache...)
}

// Loading reports whether a Refresh is in flight.
func (r *Reconciler) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// Close marks the view as gone. Results of in-flight operations are no longer
// applied to local state; remote mutations still complete server-side.
func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// Refresh fetches the full list and replaces the cache wholesale. On failure
// the cache is left unchanged and the error is returned; there is no partial
// merge.
func (r *Reconciler) Refresh(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return dErrors.New(dErrors.CodeConflict, "view is closed")
	}
	r.loading = true
	r.mu.Unlock()

	list, err := r.repo.List(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if r.closed {
		return nil
	}
	if err != nil {
		return err
	}
	r.cache = list
	return nil
}

// Remove optimistically drops the record from the local cache, then issues
// the delete. If the call fails, the cache is restored to the pre-removal
// snapshot. Removing an id already absent locally still issues the delete,
// which is idempotent at the store.
func (r *Reconciler) Remove(ctx context.Context, id string) (Removal, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return Removal{ID: id, Phase: PhaseIdle}, dErrors.New(dErrors.CodeConflict, "view is closed")
	}

	removal := Removal{
		ID:       id,
		Phase:    PhasePending,
		snapshot: append([]models.Attendee{}, r.cache...),
	}
	kept := r.cache[:0:0]
	for _, a := range r.cache {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	r.cache = kept
	r.mu.Unlock()

	err := r.repo.Delete(ctx, id)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		removal.Phase = PhaseRolledBack
		if !r.closed {
			r.cache = removal.snapshot
		}
		return removal, err
	}
	// The optimistic state already matches the server state.
	removal.Phase = PhaseCommitted
	return removal, nil
}

// Header order matches the original export so downstream spreadsheets keep
// their column mapping.
var exportHeader = []string{
	"ID", "Full Name", "Email", "Phone", "Profession",
	"Business Challenges", "Street", "City", "State", "ZIP",
}

// Export writes the current cache snapshot as CSV. Pure transformation over
// local state; no network call, so it can never observe rows a concurrent
// Remove already dropped.
func (r *Reconciler) Export(w io.Writer) error {
	snapshot := r.Attendees()

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, a := range snapshot {
		row := []string{
			a.ID, a.FullName, a.Email, a.Phone, a.Profession,
			a.BusinessChallenges,
			a.Address.Street, a.Address.City, a.Address.State, a.Address.Zip,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
