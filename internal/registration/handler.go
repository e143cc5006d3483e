package registration

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"summit-connect/internal/transport/http/shared"
	dErrors "summit-connect/pkg/domain-errors"
	"summit-connect/pkg/requestcontext"
)

// Handler exposes the registration workflow at POST /register.
type Handler struct {
	workflow *Service
	logger   *slog.Logger
}

func NewHandler(workflow *Service, logger *slog.Logger) *Handler {
	return &Handler{workflow: workflow, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/register", h.handleRegister)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	result, err := h.workflow.Register(ctx, req)
	if err != nil {
		var fieldErrs FieldErrors
		if errors.As(err, &fieldErrs) {
			shared.WriteJSON(w, http.StatusBadRequest, map[string]any{
				"error":  string(dErrors.CodeValidation),
				"fields": fieldErrs,
			})
			return
		}
		h.logger.ErrorContext(ctx, "registration failed",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, result)
}
