package notify

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"summit-connect/internal/transport/http/shared"
	dErrors "summit-connect/pkg/domain-errors"
	"summit-connect/pkg/requestcontext"
)

// Handler exposes the SMS collaborator at POST /send-sms.
type Handler struct {
	notifier Service
	logger   *slog.Logger
}

func NewHandler(notifier Service, logger *slog.Logger) *Handler {
	return &Handler{notifier: notifier, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/send-sms", h.handleSend)
}

type sendRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.To == "" || req.Body == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing required fields: to and body"))
		return
	}

	if h.notifier == nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "sms service not configured"))
		return
	}

	sid, err := h.notifier.Send(ctx, req.To, req.Body)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to send sms",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to send confirmation sms"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "sid": sid})
}
