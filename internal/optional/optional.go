// Package optional provides type safe optional variables.
//
// Optionals distinguish a missing value from a zero value, which matters for
// telemetry where a sensor can simply not report (e.g. no wind reading for a
// sol). Optionals marshal to JSON null when empty.
package optional

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

type Numeric interface {
	constraints.Integer | constraints.Float
}

var ErrIsEmpty = errors.New("optional is empty")

// Optional represents a variable that may contain a value or not.
//
// Note that the zero value of an Optional is an empty Optional.
type Optional[T any] struct {
	value     T
	isPresent bool
}

// New returns a new Optional with a value.
func New[T any](v T) Optional[T] {
	return Optional[T]{value: v, isPresent: true}
}

// IsEmpty reports whether an Optional is empty.
func (o Optional[T]) IsEmpty() bool {
	return !o.isPresent
}

// Set sets a new value.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isPresent = true
}

// Clear removes any value.
func (o *Optional[T]) Clear() {
	var z T
	o.value = z
	o.isPresent = false
}

// String returns a string representation of an Optional.
func (o Optional[T]) String() string {
	if o.IsEmpty() {
		return "<empty>"
	}
	return fmt.Sprint(o.value)
}

// StringFunc returns the value converted with f or a fallback if it is empty.
func (o Optional[T]) StringFunc(fallback string, f func(v T) string) string {
	if o.IsEmpty() {
		return fallback
	}
	return f(o.value)
}

// Value returns the value of an Optional.
func (o Optional[T]) Value() (T, error) {
	var z T
	if o.IsEmpty() {
		return z, ErrIsEmpty
	}
	return o.value, nil
}

// MustValue returns the value of an Optional or panics if it is empty.
func (o Optional[T]) MustValue() T {
	if o.IsEmpty() {
		panic(ErrIsEmpty)
	}
	return o.value
}

// ValueOrFallback returns the value of an Optional or a fallback if it is empty.
func (o Optional[T]) ValueOrFallback(fallback T) T {
	if o.IsEmpty() {
		return fallback
	}
	return o.value
}

// ValueOrZero returns the value of an Optional or it's type's zero value if it is empty.
func (o Optional[T]) ValueOrZero() T {
	var z T
	if o.IsEmpty() {
		return z
	}
	return o.value
}

// MarshalJSON marshals the value of an Optional or null when it is empty.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON unmarshals a value into an Optional. JSON null becomes an empty Optional.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.Clear()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Set(v)
	return nil
}

// ConvertNumeric converts between numeric optionals.
func ConvertNumeric[X Numeric, Y Numeric](o Optional[X]) Optional[Y] {
	if o.IsEmpty() {
		return Optional[Y]{}
	}
	return New(Y(o.ValueOrZero()))
}

// FormatFloat renders a numeric Optional with a fixed number of decimals
// or returns a fallback if it is empty.
func FormatFloat[T Numeric](o Optional[T], decimals int, fallback string) string {
	if o.IsEmpty() {
		return fallback
	}
	return strconv.FormatFloat(float64(o.ValueOrZero()), 'f', decimals, 64)
}
