package ty

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Opt is a tri-state optional: unset, set-but-null, or set with a value.
// The zero value is unset.
type Opt[T any] struct {
	Value T // inner value
	Set   bool
	Valid bool
}

func OptWrap[T any](value T) Opt[T] {
	return Opt[T]{
		Value: value,
		Set:   true,
		Valid: true,
	}
}

func (i *Opt[T]) S(v T) {
	i.Value = v
	i.Set = true
	i.Valid = true
}

func (i *Opt[T]) N() {
	i.Set = true
	i.Valid = false
}

func (i *Opt[T]) U() {
	i.Set = false
	i.Valid = false
}

func (i *Opt[T]) UnmarshalJSON(data []byte) error {
	i.Set = true

	if string(data) == "null" {
		i.Valid = false
		return nil
	}

	if err := json.Unmarshal(data, &i.Value); err != nil {
		return err
	}

	i.Valid = true

	return nil
}

func (i Opt[T]) MarshalJSON() ([]byte, error) {
	if !i.Set || !i.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(i.Value)
}

// UnmarshalYAML implements yaml.Unmarshaler for Opt[T]
func (i *Opt[T]) UnmarshalYAML(value *yaml.Node) error {
	i.Set = true
	if value.Kind == yaml.ScalarNode && value.Value == "null" {
		i.Valid = false
		return nil
	}
	var v T
	if err := value.Decode(&v); err != nil {
		return err
	}
	i.Value = v
	i.Valid = true
	return nil
}

// MarshalYAML implements yaml.Marshaler for Opt[T]
func (i Opt[T]) MarshalYAML() (interface{}, error) {
	if !i.Set || !i.Valid {
		return nil, nil
	}
	return i.Value, nil
}
