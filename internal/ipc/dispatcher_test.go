package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// decode parses envelope bytes, failing the test on malformed output.
func decode(t *testing.T, raw json.RawMessage) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(raw, &resp), "every Invoke result must be an envelope")
	return resp
}

func TestInvokeSuccessEnvelope(t *testing.T) {
	d := newTestDispatcher()
	d.Register("echo", func(ctx context.Context, payload json.RawMessage) (any, error) {
		return map[string]string{"hello": "world"}, nil
	})

	resp := decode(t, d.Invoke(context.Background(), "echo", nil))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.JSONEq(t, `{"hello":"world"}`, string(resp.Data))
}

func TestInvokeUnknownChannel(t *testing.T) {
	d := newTestDispatcher()

	resp := decode(t, d.Invoke(context.Background(), "no:such:channel", nil))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeUnknown, resp.Error.Code)
}

func TestInvokeHandlerErrorIsClassified(t *testing.T) {
	d := newTestDispatcher()
	d.Register("boom", func(ctx context.Context, payload json.RawMessage) (any, error) {
		return nil, FieldErrors{"name": msgRequired}
	})

	resp := decode(t, d.Invoke(context.Background(), "boom", nil))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeValidation, resp.Error.Code)
	assert.Equal(t, msgRequired, resp.Error.Fields["name"])
}

func TestInvokeNeverLeaksErrorText(t *testing.T) {
	d := newTestDispatcher()
	d.Register("leaky", func(ctx context.Context, payload json.RawMessage) (any, error) {
		return nil, errors.New("secret internal detail")
	})

	raw := d.Invoke(context.Background(), "leaky", nil)
	assert.NotContains(t, string(raw), "secret internal detail")

	resp := decode(t, raw)
	assert.Equal(t, CodeUnknown, resp.Error.Code)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	d := newTestDispatcher()
	handler := func(ctx context.Context, payload json.RawMessage) (any, error) { return nil, nil }

	d.Register("once", handler)
	assert.Panics(t, func() { d.Register("once", handler) })
	assert.Panics(t, func() { d.Register("", handler) })
	assert.Panics(t, func() { d.Register("nil-handler", nil) })
}
