// Package suggest wraps the text-generation collaborator that produces a
// personalized session suggestion for a new registrant. The collaborator is
// strictly best-effort: callers fall back to Fallback and proceed.
package suggest

import "context"

// Service is the narrow contract the registration workflow depends on, so
// tests can substitute canned or failing responses without network access.
type Service interface {
	Suggest(ctx context.Context, profession, challenges string) (string, error)
}

// Fallback is returned to registrants whenever the collaborator is
// unreachable or fails. Suggestion failure must never block registration.
const Fallback = "Thank you for registering! We're excited to have you at the summit. " +
	"We couldn't generate custom suggestions at this time, but please check the " +
	"event schedule for sessions relevant to your interests."
