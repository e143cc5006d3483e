// Package shared centralizes JSON response encoding and domain error
// translation so every handler emits the same envelopes.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "summit-connect/pkg/domain-errors"
)

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope. Errors
// without a code map to 500/internal; messages for internal and unavailable
// codes are not leaked to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	message := "an internal server error occurred"

	var de *dErrors.Error
	if errors.As(err, &de) {
		code = de.Code
		switch code {
		case dErrors.CodeInternal:
			// keep the generic message
		case dErrors.CodeUnavailable:
			message = "service temporarily unavailable, please retry"
		default:
			message = de.Message
		}
	}

	WriteJSON(w, dErrors.ToHTTPStatus(code), map[string]string{
		"error":   string(code),
		"message": message,
	})
}
