// Package ecs provides the entity/component boundary the animation engine
// reads from and writes back to. Component data is dynamic and loosely
// typed; the engine only touches it through the typed accessors here, so
// malformed fields default at this boundary and never reach the core.
package ecs

// Value is a dynamically typed component field value.
// The zero Value holds nothing and fails every typed accessor.
type Value struct {
	raw any
}

// Float wraps a float64.
func Float(v float64) Value { return Value{raw: v} }

// Int wraps an int64.
func Int(v int64) Value { return Value{raw: v} }

// Bool wraps a bool.
func Bool(v bool) Value { return Value{raw: v} }

// String wraps a string.
func String(v string) Value { return Value{raw: v} }

// Floats wraps a float slice (vectors, quaternions).
func Floats(v []float64) Value { return Value{raw: v} }

// IsZero reports whether the value holds nothing.
func (v Value) IsZero() bool { return v.raw == nil }

// AsFloat returns the value as a float64. Integers coerce to float.
func (v Value) AsFloat() (float64, bool) {
	switch t := v.raw.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	}
	return 0, false
}

// AsBool returns the value as a bool.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, ok
}

// AsString returns the value as a string.
func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// AsFloats returns the value as a float slice.
func (v Value) AsFloats() ([]float64, bool) {
	f, ok := v.raw.([]float64)
	return f, ok
}

// FloatOr returns the float value or def when absent or mistyped.
func (v Value) FloatOr(def float64) float64 {
	if f, ok := v.AsFloat(); ok {
		return f
	}
	return def
}

// BoolOr returns the bool value or def when absent or mistyped.
func (v Value) BoolOr(def bool) bool {
	if b, ok := v.AsBool(); ok {
		return b
	}
	return def
}

// StringOr returns the string value or def when absent or mistyped.
func (v Value) StringOr(def string) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	return def
}
