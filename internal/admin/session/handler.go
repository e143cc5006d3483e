package session

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"summit-connect/internal/transport/http/shared"
	dErrors "summit-connect/pkg/domain-errors"
	"summit-connect/pkg/requestcontext"
)

// Handler exposes POST /admin/login.
type Handler struct {
	sessions *Service
	logger   *slog.Logger
}

func NewHandler(sessions *Service, logger *slog.Logger) *Handler {
	return &Handler{sessions: sessions, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/login", h.handleLogin)
}

type loginRequest struct {
	Passcode string `json:"passcode"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Passcode == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "passcode is required"))
		return
	}

	token, err := h.sessions.Login(req.Passcode)
	if err != nil {
		h.logger.WarnContext(ctx, "admin login failed",
			"request_id", requestcontext.RequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}
