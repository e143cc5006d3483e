// Package registration orchestrates the registration workflow: validate the
// raw form, generate a personalized suggestion (best effort), persist the
// attendee, and optionally send a confirmation SMS.
package registration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"summit-connect/internal/attendee/models"
	"summit-connect/internal/notify"
	"summit-connect/internal/platform/metrics"
	"summit-connect/internal/suggest"
)

// Request is the raw form input as submitted by the registration page.
type Request struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Profession         string `json:"profession"`
	BusinessChallenges string `json:"businessChallenges"`
	Street             string `json:"street"`
	City               string `json:"city"`
	State              string `json:"state"`
	Zip                string `json:"zip"`
}

// Result is what the workflow hands back on success: the persisted record (so
// list views can update incrementally) and the suggestion text shown on the
// confirmation screen.
type Result struct {
	Attendee    models.Attendee `json:"attendee"`
	Suggestions string          `json:"suggestions"`
	SMSSent     bool            `json:"smsSent"`
}

// FieldErrors maps form field names to messages so the UI can render errors
// next to the offending inputs.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

// Repository is the slice of the attendee repository the workflow needs.
type Repository interface {
	Create(ctx context.Context, candidate models.Attendee) (models.Attendee, error)
}

// Service runs the single-pass registration sequence. No retries; the user
// must resubmit on failure.
type Service struct {
	attendees   Repository
	suggestions suggest.Service
	notifier    notify.Service
	logger      *slog.Logger
	metrics     *metrics.Metrics

	newID func() string
}

func New(attendees Repository, suggestions suggest.Service, notifier notify.Service, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		attendees:   attendees,
		suggestions: suggestions,
		notifier:    notifier,
		logger:      logger,
		metrics:     m,
		newID:       uuid.NewString,
	}
}

// Validate applies the field-level form rules. Returns nil or a FieldErrors
// covering every offending field at once.
func (r Request) Validate() error {
	errs := FieldErrors{}
	if r.FullName == "" {
		errs["fullName"] = "full name is required"
	}
	if r.Email != "" && !govalidator.IsEmail(r.Email) {
		errs["email"] = "please enter a valid email address"
	}
	if len(digitsOnly(r.Phone)) != 10 {
		errs["phone"] = "a valid 10-digit phone number is required"
	}
	if r.Profession == "" {
		errs["profession"] = "profession is required"
	}
	if len(r.BusinessChallenges) < 10 {
		errs["businessChallenges"] = "please describe your challenges in at least 10 characters"
	}
	if r.Street == "" {
		errs["street"] = "street address is required"
	}
	if r.City == "" {
		errs["city"] = "city is required"
	}
	if r.State == "" {
		errs["state"] = "state is required"
	}
	if r.Zip == "" {
		errs["zip"] = "zip code is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Register runs the workflow. Suggestion and SMS failures degrade gracefully;
// validation and storage failures abort with no partial write.
func (s *Service) Register(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	candidate := models.Attendee{
		ID:                 s.newID(),
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Profession:         req.Profession,
		BusinessChallenges: req.BusinessChallenges,
		Address: models.Address{
			Street: req.Street,
			City:   req.City,
			State:  req.State,
			Zip:    req.Zip,
		},
	}

	suggestions := s.fetchSuggestions(ctx, req.Profession, req.BusinessChallenges)

	stored, err := s.attendees.Create(ctx, candidate)
	if err != nil {
		return nil, err
	}

	result := &Result{Attendee: stored, Suggestions: suggestions}
	result.SMSSent = s.sendConfirmation(ctx, stored)
	return result, nil
}

// fetchSuggestions asks the collaborator for personalized text; any failure
// substitutes the static fallback.
func (s *Service) fetchSuggestions(ctx context.Context, profession, challenges string) string {
	if s.suggestions == nil {
		return suggest.Fallback
	}
	text, err := s.suggestions.Suggest(ctx, profession, challenges)
	if err != nil {
		s.logger.WarnContext(ctx, "suggestion collaborator failed, using fallback", "error", err.Error())
		if s.metrics != nil {
			s.metrics.SuggestionFallbacks.Inc()
		}
		return suggest.Fallback
	}
	return text
}

// sendConfirmation sends the confirmation text. The record is already
// persisted by this point, so failure is logged and reported but never rolls
// back the registration.
func (s *Service) sendConfirmation(ctx context.Context, attendee models.Attendee) bool {
	if s.notifier == nil {
		return false
	}
	body := fmt.Sprintf("Hi %s, your registration for DS Digital Solutions Connect is confirmed. See you there!", attendee.FullName)
	sid, err := s.notifier.Send(ctx, attendee.Phone, body)
	if err != nil {
		s.logger.WarnContext(ctx, "confirmation sms failed", "error", err.Error(), "id", attendee.ID)
		if s.metrics != nil {
			s.metrics.SMSFailed.Inc()
		}
		return false
	}
	s.logger.InfoContext(ctx, "confirmation sms sent", "sid", sid, "id", attendee.ID)
	if s.metrics != nil {
		s.metrics.SMSSent.Inc()
	}
	return true
}
