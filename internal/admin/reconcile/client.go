package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"summit-connect/internal/attendee/models"
	dErrors "summit-connect/pkg/domain-errors"
	"summit-connect/pkg/platform/sentinel"
)

// Client talks to the attendee endpoints over HTTP and satisfies Repository,
// so a Reconciler can run against a remote server instead of the in-process
// service.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// SetToken attaches the admin session token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) List(ctx context.Context) ([]models.Attendee, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/attendees", nil)
	if err != nil {
		return nil, err
	}
	var list []models.Attendee
	if err := c.do(req, http.StatusOK, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Create(ctx context.Context, attendee models.Attendee) (models.Attendee, error) {
	body, err := json.Marshal(attendee)
	if err != nil {
		return models.Attendee{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/attendees", bytes.NewReader(body))
	if err != nil {
		return models.Attendee{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var created models.Attendee
	if err := c.do(req, http.StatusCreated, &created); err != nil {
		return models.Attendee{}, err
	}
	return created, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	u := c.baseURL + "/attendees?id=" + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusOK, nil)
}

func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "attendee service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "decoding response")
	}
	return nil
}

func errorFromResponse(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	// Best effort; fall through to a status-based message.
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
	msg := body.Error
	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return dErrors.New(dErrors.CodeBadRequest, msg)
	case http.StatusUnauthorized:
		return dErrors.New(dErrors.CodeUnauthorized, msg)
	case http.StatusNotFound:
		return dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, msg)
	default:
		return dErrors.New(dErrors.CodeUnavailable, msg)
	}
}
