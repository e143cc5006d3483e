package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"summit-connect/internal/platform/config"
)

// Twilio implements Service against the Twilio messaging API.
type Twilio struct {
	client *twilio.RestClient
	from   string
}

// NewTwilio creates a Twilio-backed notifier. Returns nil if the collaborator
// is not fully configured (SMS disabled).
func NewTwilio(cfg config.TwilioConfig) *Twilio {
	if !cfg.Enabled() {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &Twilio{client: client, from: cfg.FromNumber}
}

func (t *Twilio) Send(_ context.Context, to, body string) (string, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(NormalizeUS(to))
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("send sms: %w", err)
	}
	if resp.Sid == nil {
		return "", fmt.Errorf("send sms: no sid in response")
	}
	return *resp.Sid, nil
}
