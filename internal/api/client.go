// Package api is the UI-facing typed facade over the channel surface.
// It hides channel-name strings and the response envelope from callers:
// every method either returns a parsed, re-validated value or a *Error
// carrying a taxonomy code and a user-facing message.
package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sgrubb/therapy-log/internal/ipc"
	"github.com/sgrubb/therapy-log/internal/models"
)

// Invoker is the channel transport the facade talks through. The
// dispatcher satisfies it directly; tests may substitute their own.
type Invoker interface {
	Invoke(ctx context.Context, channel string, payload json.RawMessage) json.RawMessage
}

// Error is the typed failure surfaced to UI code. Message comes from the
// facade's own phrasing table, not the classifier's default; Fields
// carries per-field validation messages when the failure was field-scoped.
type Error struct {
	Code    ipc.Code
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// userMessages is the fixed code→message table shown to users. It leans
// gentler than the classifier defaults where it helps.
var userMessages = map[ipc.Code]string{
	ipc.CodeUniqueConstraint: "A record with this value already exists.",
	ipc.CodeForeignKey:       "A related record could not be found.",
	ipc.CodeNotFound:         "The requested record was not found.",
	ipc.CodeValidation:       "Some fields need attention before this can be saved.",
	ipc.CodeUnknown:          "Something went wrong. Please try again.",
}

// errBadShape reports a response whose data did not survive the channel
// boundary in the expected shape. The facade fails loudly rather than
// handing malformed data to UI code.
func errBadShape(channel string) *Error {
	return &Error{
		Code:    ipc.CodeUnknown,
		Message: fmt.Sprintf("Received an unexpected response from %s.", channel),
	}
}

// Client is the typed facade. One method per channel.
type Client struct {
	inv Invoker
}

// New wraps an Invoker in the typed facade.
func New(inv Invoker) *Client {
	return &Client{inv: inv}
}

// invoke marshals args, crosses the channel boundary, and unwraps the
// envelope. The returned bytes are the raw data half of a success
// envelope; failures come back as *Error.
func (c *Client) invoke(ctx context.Context, channel string, args any) (json.RawMessage, error) {
	var payload json.RawMessage
	if args != nil {
		b, err := json.Marshal(args)
		if err != nil {
			return nil, errBadShape(channel)
		}
		payload = b
	}

	var resp ipc.Response
	if err := json.Unmarshal(c.inv.Invoke(ctx, channel, payload), &resp); err != nil {
		return nil, errBadShape(channel)
	}

	if !resp.Success {
		code := ipc.CodeUnknown
		var fields map[string]string
		if resp.Error != nil {
			code = resp.Error.Code
			fields = resp.Error.Fields
		}
		message, known := userMessages[code]
		if !known {
			code, message = ipc.CodeUnknown, userMessages[ipc.CodeUnknown]
		}
		return nil, &Error{Code: code, Message: message, Fields: fields}
	}

	return resp.Data, nil
}

// App

// Version returns the running application version.
func (c *Client) Version(ctx context.Context) (string, error) {
	data, err := c.invoke(ctx, "app:version", nil)
	if err != nil {
		return "", err
	}
	var version string
	if err := json.Unmarshal(data, &version); err != nil || version == "" {
		return "", errBadShape("app:version")
	}
	return version, nil
}

// Therapists

func (c *Client) ListTherapists(ctx context.Context) ([]models.Therapist, error) {
	data, err := c.invoke(ctx, "therapist:list", nil)
	if err != nil {
		return nil, err
	}
	var therapists []models.Therapist
	if err := json.Unmarshal(data, &therapists); err != nil {
		return nil, errBadShape("therapist:list")
	}
	for i := range therapists {
		if err := checkTherapist(&therapists[i]); err != nil {
			return nil, errBadShape("therapist:list")
		}
	}
	return therapists, nil
}

func (c *Client) GetTherapist(ctx context.Context, id uint) (*models.Therapist, error) {
	data, err := c.invoke(ctx, "therapist:get", id)
	if err != nil {
		return nil, err
	}
	var therapist models.Therapist
	if err := json.Unmarshal(data, &therapist); err != nil {
		return nil, errBadShape("therapist:get")
	}
	if err := checkTherapist(&therapist); err != nil {
		return nil, errBadShape("therapist:get")
	}
	return &therapist, nil
}

func (c *Client) CreateTherapist(ctx context.Context, input CreateTherapist) (*models.Therapist, error) {
	data, err := c.invoke(ctx, "therapist:create", input)
	if err != nil {
		return nil, err
	}
	var therapist models.Therapist
	if err := json.Unmarshal(data, &therapist); err != nil {
		return nil, errBadShape("therapist:create")
	}
	if err := checkTherapist(&therapist); err != nil {
		return nil, errBadShape("therapist:create")
	}
	return &therapist, nil
}

func (c *Client) UpdateTherapist(ctx context.Context, id uint, input UpdateTherapist) (*models.Therapist, error) {
	data, err := c.invoke(ctx, "therapist:update", updateArgs{ID: id, Data: input})
	if err != nil {
		return nil, err
	}
	var therapist models.Therapist
	if err := json.Unmarshal(data, &therapist); err != nil {
		return nil, errBadShape("therapist:update")
	}
	if err := checkTherapist(&therapist); err != nil {
		return nil, errBadShape("therapist:update")
	}
	return &therapist, nil
}

// Clients

// ListClients returns every client; the therapist relation is always
// populated.
func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	data, err := c.invoke(ctx, "client:list", nil)
	if err != nil {
		return nil, err
	}
	var clients []models.Client
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, errBadShape("client:list")
	}
	for i := range clients {
		if err := checkClient(&clients[i], true); err != nil {
			return nil, errBadShape("client:list")
		}
	}
	return clients, nil
}

func (c *Client) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	data, err := c.invoke(ctx, "client:get", id)
	if err != nil {
		return nil, err
	}
	var client models.Client
	if err := json.Unmarshal(data, &client); err != nil {
		return nil, errBadShape("client:get")
	}
	if err := checkClient(&client, true); err != nil {
		return nil, errBadShape("client:get")
	}
	return &client, nil
}

func (c *Client) CreateClient(ctx context.Context, input CreateClient) (*models.Client, error) {
	data, err := c.invoke(ctx, "client:create", input)
	if err != nil {
		return nil, err
	}
	var client models.Client
	if err := json.Unmarshal(data, &client); err != nil {
		return nil, errBadShape("client:create")
	}
	if err := checkClient(&client, false); err != nil {
		return nil, errBadShape("client:create")
	}
	return &client, nil
}

func (c *Client) UpdateClient(ctx context.Context, id uint, input UpdateClient) (*models.Client, error) {
	data, err := c.invoke(ctx, "client:update", updateArgs{ID: id, Data: input})
	if err != nil {
		return nil, err
	}
	var client models.Client
	if err := json.Unmarshal(data, &client); err != nil {
		return nil, errBadShape("client:update")
	}
	if err := checkClient(&client, false); err != nil {
		return nil, errBadShape("client:update")
	}
	return &client, nil
}

// Sessions

// ListSessions returns every session; client and therapist relations are
// always populated.
func (c *Client) ListSessions(ctx context.Context) ([]models.Session, error) {
	data, err := c.invoke(ctx, "session:list", nil)
	if err != nil {
		return nil, err
	}
	var sessions []models.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, errBadShape("session:list")
	}
	for i := range sessions {
		if err := checkSession(&sessions[i], true); err != nil {
			return nil, errBadShape("session:list")
		}
	}
	return sessions, nil
}

func (c *Client) GetSession(ctx context.Context, id uint) (*models.Session, error) {
	data, err := c.invoke(ctx, "session:get", id)
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errBadShape("session:get")
	}
	if err := checkSession(&session, true); err != nil {
		return nil, errBadShape("session:get")
	}
	return &session, nil
}

func (c *Client) CreateSession(ctx context.Context, input CreateSession) (*models.Session, error) {
	data, err := c.invoke(ctx, "session:create", input)
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errBadShape("session:create")
	}
	if err := checkSession(&session, false); err != nil {
		return nil, errBadShape("session:create")
	}
	return &session, nil
}

func (c *Client) UpdateSession(ctx context.Context, id uint, input UpdateSession) (*models.Session, error) {
	data, err := c.invoke(ctx, "session:update", updateArgs{ID: id, Data: input})
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errBadShape("session:update")
	}
	if err := checkSession(&session, false); err != nil {
		return nil, errBadShape("session:update")
	}
	return &session, nil
}

// updateArgs is the {id, data} wrapper every update channel expects.
type updateArgs struct {
	ID   uint `json:"id"`
	Data any  `json:"data"`
}
