package dto

import (
	"bytes"
	"encoding/json"

	"github.com/taskboard/taskboard/internal/ports"
)

// Nullable is a JSON field that distinguishes absent from explicit null in a
// PATCH body. A field left out of the body never reaches UnmarshalJSON, so
// Set stays false; a literal null sets Set with a nil Value; anything else
// decodes into Value.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullableOf wraps a value as a present, non-null Nullable.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// MarshalJSON implements json.Marshaler. Unset fields are elided by the
// omitzero tag on the request structs; a set field marshals its value, or
// null when clearing.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	n.Value = v
	return nil
}

// optional converts to the service-layer partial-update field.
func (n Nullable[T]) optional() ports.Optional[T] {
	return ports.Optional[T]{Set: n.Set, Value: n.Value}
}
