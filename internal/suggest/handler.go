package suggest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"summit-connect/internal/transport/http/shared"
	dErrors "summit-connect/pkg/domain-errors"
	"summit-connect/pkg/requestcontext"
)

// Handler exposes the suggestion collaborator at POST /suggest for the UI.
type Handler struct {
	suggestions Service
	logger      *slog.Logger
}

func NewHandler(suggestions Service, logger *slog.Logger) *Handler {
	return &Handler{suggestions: suggestions, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/suggest", h.handleSuggest)
}

type suggestRequest struct {
	Profession string `json:"profession"`
	Challenges string `json:"challenges"`
}

func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Profession == "" || req.Challenges == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing required fields: profession and challenges"))
		return
	}

	if h.suggestions == nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "suggestion service not configured"))
		return
	}

	suggestions, err := h.suggestions.Suggest(ctx, req.Profession, req.Challenges)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate suggestions",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to generate suggestions"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]string{"suggestions": suggestions})
}
