package ipc

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state field for partial-update payloads. A field that
// never appears in the JSON leaves the stored value unchanged; an explicit
// null clears it; a value replaces it. Plain pointers cannot tell the
// first two apart, which is the whole point of patch semantics.
//
// UnmarshalJSON never returns an error: a value of the wrong type is
// recorded as malformed so the schema can attribute the failure to the
// field instead of aborting the whole decode.
type Optional[T any] struct {
	Set       bool
	Null      bool
	Malformed bool
	Value     T
}

// Some builds a present Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null builds a present Optional carrying an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Null = true
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		o.Malformed = true
	}
	return nil
}

// HasValue reports whether the field carries a usable value.
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null && !o.Malformed
}
