package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
)

// Client provides a high-level interface to the Chrono's Diary REST API.
// It is the single point of contact with the backend; every view talks to the
// server through one of its operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// ClientOptions configures SDK client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	UserAgent  string
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls. Authenticated
// callers pass a client whose transport injects the bearer token.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(agent string) ClientOption {
	return func(opts *ClientOptions) {
		opts.UserAgent = agent
	}
}

// NewClient creates a new SDK client that communicates with the API server at
// baseURL. An http.Client is created automatically when one is not supplied.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "chronoctl"
	}
	return &Client{
		httpClient: opts.HTTPClient,
		baseURL:    baseURL,
		userAgent:  opts.UserAgent,
	}
}

// Login authenticates with username and password and returns the bearer
// credentials. The caller is responsible for persisting the session.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	payload := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, []string{"auth", "login"}, payload, &result); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
		}
		return nil, err
	}
	if result.AccessToken == "" || result.ID == "" {
		return nil, fmt.Errorf("%w: login response missing token or user id", ErrUnexpectedShape)
	}
	return &result, nil
}

// Register creates a new account and returns the server acknowledgement.
func (c *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	if err := ValidateRegistration(username, email, password); err != nil {
		return "", err
	}
	payload := map[string]string{"username": username, "email": email, "password": password}
	var ack messageResponse
	if err := c.do(ctx, http.MethodPost, []string{"users"}, payload, &ack); err != nil {
		return "", registerConflict(err)
	}
	return ack.Message, nil
}

// RequestPasswordReset asks the backend to send a reset link. The response is
// success-shaped whether or not the email exists, so account presence is not
// enumerable from here.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if err := ValidateEmail(email); err != nil {
		return "", err
	}
	payload := map[string]string{"email": email}
	var ack messageResponse
	if err := c.do(ctx, http.MethodPost, []string{"users", "reset-password"}, payload, &ack); err != nil {
		return "", err
	}
	return ack.Message, nil
}

// ListEvents returns the events for a user, most recent start time first.
// The backend does not guarantee an order.
func (c *Client) ListEvents(ctx context.Context, userID string) ([]EventRecord, error) {
	if err := ValidateID("user id", userID); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, []string{"event", userID, "event"}, nil, &raw); err != nil {
		return nil, err
	}
	events, err := normalizeEventList(raw)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.After(events[j].StartTime)
	})
	return events, nil
}

// CreateEvent creates an event. The time range is validated locally; an
// invalid range fails before any request is made.
func (c *Client) CreateEvent(ctx context.Context, input CreateEventInput) (*EventRecord, error) {
	if err := ValidateEventInput(input); err != nil {
		return nil, err
	}
	var created EventRecord
	if err := c.do(ctx, http.MethodPost, []string{"event"}, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteEvent deletes an event by id. Deleting an id that is already gone
// surfaces as ErrNotFound; callers treat that as reportable, not fatal.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if err := ValidateID("event id", eventID); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, []string{"event", eventID}, nil, nil)
}

// ListUsers returns all users, normalized from whichever collection shape the
// backend produced. An unrecognized shape yields ErrUnexpectedShape, which
// callers surface as a data-format problem rather than a hard failure.
func (c *Client) ListUsers(ctx context.Context) ([]UserRecord, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, []string{"users"}, nil, &raw); err != nil {
		return nil, err
	}
	return NormalizeUserList(raw)
}

// GetUser fetches a single user by id.
func (c *Client) GetUser(ctx context.Context, userID string) (*UserRecord, error) {
	if err := ValidateID("user id", userID); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, []string{"users", userID}, nil, &raw); err != nil {
		return nil, err
	}
	return normalizeUser(raw)
}

// UpdateUser updates a user profile. Leave input.Password nil to keep the
// current password; the field is then omitted from the request entirely.
func (c *Client) UpdateUser(ctx context.Context, userID string, input UpdateUserInput) (*UserRecord, error) {
	if err := ValidateID("user id", userID); err != nil {
		return nil, err
	}
	if err := ValidateProfile(input.Username, input.Email); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, []string{"users", userID}, input, &raw); err != nil {
		return nil, err
	}
	return normalizeUser(raw)
}

// DeleteUser deletes a user. Admin-only; the caller gates on the resolved
// role, but the backend remains the authority.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	if err := ValidateID("user id", userID); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, []string{"users", userID}, nil, nil)
}

// ToggleAdmin flips the ADMIN role on a user and returns the updated record.
// Admin-only; the caller gates on the resolved role.
func (c *Client) ToggleAdmin(ctx context.Context, userID string) (*UserRecord, error) {
	if err := ValidateID("user id", userID); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, []string{"users", userID, "role"}, nil, &raw); err != nil {
		return nil, err
	}
	return normalizeUser(raw)
}

// ListInvitations returns the invitations addressed to a user.
func (c *Client) ListInvitations(ctx context.Context, userID string) ([]InvitationRecord, error) {
	if err := ValidateID("user id", userID); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, []string{"invitations", "user", userID}, nil, &raw); err != nil {
		return nil, err
	}
	return normalizeInvitationList(raw)
}

// UpdateInvitationStatus resolves a pending invitation. Only the
// PENDING→ACCEPTED and PENDING→DECLINED transitions exist; both are terminal.
// After a successful accept the user's event collection has changed too, so
// callers must re-fetch both collections.
func (c *Client) UpdateInvitationStatus(ctx context.Context, invitationID, eventID, userID string, status InvitationStatus) (*InvitationRecord, error) {
	if err := ValidateID("invitation id", invitationID); err != nil {
		return nil, err
	}
	if status != InvitationAccepted && status != InvitationDeclined {
		return nil, fmt.Errorf("%w: invitation status must be %s or %s", ErrValidation, InvitationAccepted, InvitationDeclined)
	}
	payload := map[string]any{
		"id":      invitationID,
		"eventId": eventID,
		"userId":  userID,
		"status":  status,
	}
	var updated InvitationRecord
	if err := c.do(ctx, http.MethodPut, []string{"invitations", invitationID}, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

// do executes one request against the /api/ surface and decodes the response
// into out (skipped when out is nil). Non-2xx responses are mapped onto the
// error taxonomy with the server message preserved.
func (c *Client) do(ctx context.Context, method string, path []string, body, out any) error {
	segments := append([]string{"api"}, path...)
	endpoint, err := url.JoinPath(c.baseURL, segments...)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var serverMsg messageResponse
		_ = json.Unmarshal(data, &serverMsg)
		return statusError(resp.StatusCode, serverMsg.Message)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return nil
}
