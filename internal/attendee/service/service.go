// Package service implements the attendee repository: create, list and delete
// over the record store, with the structural validation gate enforced on both
// write and read.
package service

import (
	"context"
	"log/slog"
	"time"

	"summit-connect/internal/attendee/models"
	"summit-connect/internal/attendee/store"
	"summit-connect/internal/platform/metrics"
	dErrors "summit-connect/pkg/domain-errors"
)

// Service orchestrates attendee persistence. Side effects are confined to the
// record store; any store fault surfaces as an unavailable error with no
// partial mutation beyond the store's own per-key guarantees.
type Service struct {
	store   store.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(st store.Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{store: st, logger: logger, metrics: m}
}

// List returns every stored attendee that passes the validation gate.
// Malformed entries (out-of-band writes, partial historical data) are dropped
// rather than failing the whole read. An empty store yields an empty slice.
// Enumeration order is unspecified; callers must not depend on it.
func (s *Service) List(ctx context.Context) ([]models.Attendee, error) {
	start := time.Now()
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list attendees")
	}
	if s.metrics != nil {
		s.metrics.ObserveList(start)
	}

	out := make([]models.Attendee, 0, len(all))
	for i := range all {
		if !models.IsValid(&all[i]) {
			s.logger.WarnContext(ctx, "dropping malformed stored record", "id", all[i].ID)
			if s.metrics != nil {
				s.metrics.InvalidRecordsDropped.Inc()
			}
			continue
		}
		out = append(out, all[i])
	}
	return out, nil
}

// Create validates the candidate and persists it under its id. A duplicate id
// silently replaces the prior record (upsert). Returns the stored record.
func (s *Service) Create(ctx context.Context, candidate models.Attendee) (models.Attendee, error) {
	if err := candidate.Validate(); err != nil {
		return models.Attendee{}, err
	}
	if err := s.store.Put(ctx, candidate); err != nil {
		return models.Attendee{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to persist attendee")
	}
	if s.metrics != nil {
		s.metrics.AttendeesRegistered.Inc()
	}
	return candidate, nil
}

// Delete removes the record at id. Deleting a nonexistent record is not an
// error; the operation is idempotent.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dErrors.New(dErrors.CodeBadRequest, "attendee id is required")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to delete attendee")
	}
	if s.metrics != nil {
		s.metrics.AttendeesDeleted.Inc()
	}
	return nil
}
