package ipc

import (
	"encoding/json"
	"errors"
)

// Validation messages shared across entity schemas.
const (
	msgRequired     = "is required"
	msgEmpty        = "must not be empty"
	msgPositiveID   = "must be a positive integer id"
	msgInvalidValue = "is not a valid value"
	msgInvalidDate  = "must be a date string or epoch timestamp"
)

// decodePayload unmarshals a raw request payload into a schema struct,
// converting decode problems into field-scoped validation errors. A type
// mismatch on a named field is attributed to that field; anything else
// (truncated JSON, a non-object payload) is reported against the payload
// as a whole.
func decodePayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return FieldErrors{"payload": msgRequired}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return FieldErrors{typeErr.Field: msgInvalidValue}
		}
		return FieldErrors{"payload": "must be a JSON object"}
	}
	return nil
}

// decodeID unmarshals a bare numeric id argument (get channels).
func decodeID(raw json.RawMessage) (uint, error) {
	var id uint
	if len(raw) == 0 {
		return 0, FieldErrors{"id": msgRequired}
	}
	if err := json.Unmarshal(raw, &id); err != nil || id == 0 {
		return 0, FieldErrors{"id": msgPositiveID}
	}
	return id, nil
}

// updateRequest is the {id, data} wrapper carried by every update channel.
// Data stays raw so the entity schema can attribute its own field errors.
type updateRequest struct {
	ID   uint            `json:"id"`
	Data json.RawMessage `json:"data"`
}

// decodeUpdate splits an update payload into its id and inner patch.
func decodeUpdate(raw json.RawMessage) (uint, json.RawMessage, error) {
	var req updateRequest
	if err := decodePayload(raw, &req); err != nil {
		return 0, nil, err
	}
	if req.ID == 0 {
		return 0, nil, FieldErrors{"id": msgPositiveID}
	}
	if len(req.Data) == 0 {
		return 0, nil, FieldErrors{"data": msgRequired}
	}
	return req.ID, req.Data, nil
}
