package hal

import "encoding/json"

// Optional wraps a record field that may be absent. The zero value is
// "absent"; use Present to build a populated field. This replaces the
// HAL's bitmask-gated always-present fields so that absence is visible
// in the type rather than a convention the validator has to police.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Present returns an Optional holding v.
func Present[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

// MarshalJSON encodes an absent field as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON decodes null as absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{}
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
