package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"summit-connect/internal/attendee/models"
	"summit-connect/internal/platform/middleware"
	"summit-connect/internal/transport/http/shared"
	dErrors "summit-connect/pkg/domain-errors"
	"summit-connect/pkg/requestcontext"
)

// Service defines the repository operations the HTTP layer needs.
type Service interface {
	List(ctx context.Context) ([]models.Attendee, error)
	Create(ctx context.Context, candidate models.Attendee) (models.Attendee, error)
	Delete(ctx context.Context, id string) error
}

// Handler exposes the attendee repository over HTTP. Registration (POST) is
// public; the admin view (GET) and deletion are behind the admin session gate.
type Handler struct {
	attendees Service
	logger    *slog.Logger
	admin     middleware.SessionValidator
}

func New(attendees Service, logger *slog.Logger, admin middleware.SessionValidator) *Handler {
	return &Handler{attendees: attendees, logger: logger, admin: admin}
}

// Register registers the attendee routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/attendees", h.handleCreate)
	r.Group(func(g chi.Router) {
		g.Use(middleware.RequireAdmin(h.admin, h.logger))
		g.Get("/attendees", h.handleList)
		g.Delete("/attendees", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	attendees, err := h.attendees.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list attendees",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, attendees)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var candidate models.Attendee
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	stored, err := h.attendees.Create(ctx, candidate)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			shared.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create attendee",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, stored)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "a valid attendee id is required for deletion"))
		return
	}

	if err := h.attendees.Delete(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete attendee",
			"error", err.Error(),
			"id", id,
			"request_id", requestcontext.RequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"message": "attendee deleted successfully"})
}
