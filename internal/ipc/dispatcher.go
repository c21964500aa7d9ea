package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Handler processes one channel request. The payload is the raw request
// JSON (nil for argument-less channels); the returned value is marshalled
// into the success envelope. Returned errors are classified, never
// propagated as-is.
type Handler func(ctx context.Context, payload json.RawMessage) (any, error)

// Dispatcher routes channel names to handlers and wraps every result in
// a response envelope. It performs no business logic itself: handlers
// validate and call storage, the dispatcher only routes, classifies and
// wraps. No error escapes Invoke.
type Dispatcher struct {
	handlers map[string]Handler
	logger   *slog.Logger
}

// NewDispatcher creates an empty dispatcher logging through logger.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register binds a channel name to its handler. Registration happens once
// at startup and is total: a duplicate or empty name is a programming
// error, so it panics rather than returning an error nobody checks.
func (d *Dispatcher) Register(channel string, handler Handler) {
	if channel == "" || handler == nil {
		panic("ipc: Register requires a channel name and a handler")
	}
	if _, exists := d.handlers[channel]; exists {
		panic(fmt.Sprintf("ipc: duplicate handler for channel %q", channel))
	}
	d.handlers[channel] = handler
}

// Channels returns the number of registered channels.
func (d *Dispatcher) Channels() int {
	return len(d.handlers)
}

// Invoke runs the handler for channel and returns envelope bytes. Every
// failure, including an unknown channel, becomes a failure envelope; the
// caller can always unmarshal the result as a Response.
func (d *Dispatcher) Invoke(ctx context.Context, channel string, payload json.RawMessage) json.RawMessage {
	handler, exists := d.handlers[channel]
	if !exists {
		return d.failure(channel, fmt.Errorf("no handler registered for channel %q", channel))
	}

	result, err := handler(ctx, payload)
	if err != nil {
		return d.failure(channel, err)
	}

	envelope, err := ok(result)
	if err != nil {
		return d.failure(channel, err)
	}

	out, err := json.Marshal(envelope)
	if err != nil {
		return d.failure(channel, err)
	}
	return out
}

// failure classifies err, logs it with its originating channel, and
// returns failure envelope bytes.
func (d *Dispatcher) failure(channel string, err error) json.RawMessage {
	info := Classify(err)
	d.logger.Error("channel request failed",
		slog.String("channel", channel),
		slog.String("code", string(info.Code)),
		slog.Any("error", err),
	)

	out, merr := json.Marshal(fail(info))
	if merr != nil {
		// ErrorInfo is plain data; marshalling it cannot realistically
		// fail, but the envelope contract must hold regardless.
		return json.RawMessage(`{"success":false,"error":{"code":"UNKNOWN","message":"An unexpected error occurred."}}`)
	}
	return out
}
