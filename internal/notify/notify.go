// Package notify wraps the SMS collaborator used to confirm registrations.
// Sending is entirely optional to the registration flow's success.
package notify

import (
	"context"
	"strings"
)

// Service is the narrow contract for sending a notification text.
type Service interface {
	// Send delivers body to the given number and returns the provider's
	// message identifier.
	Send(ctx context.Context, to, body string) (sid string, err error)
}

// NormalizeUS converts a free-form phone number to E.164 by stripping
// non-digits and prepending the +1 country code. Numbers from other regions
// are out of scope for this event.
func NormalizeUS(phone string) string {
	var sb strings.Builder
	sb.WriteString("+1")
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
