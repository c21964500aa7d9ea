package ipc

import "encoding/json"

// Response is the uniform envelope wrapped around every channel result.
// Exactly one of Data or Error is present. Because the transport is
// treated as plain bytes, Data stays raw JSON until the receiving side
// decodes it into a typed shape.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

// ok wraps a handler result in a success envelope. A value that cannot
// be marshalled is a handler bug and is reported through the failure path.
func ok(v any) (Response, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Response{}, err
	}
	return Response{Success: true, Data: data}, nil
}

// fail wraps a classified error in a failure envelope
func fail(info *ErrorInfo) Response {
	return Response{Success: false, Error: info}
}
