package dataset

import (
	"strconv"
)

// Row is a single tabular record. Nested source fields are flattened into
// dotted keys, e.g. "user.id" or "photo.iqa_technical".
//
// Accessors never fail: a missing or malformed value produces the zero
// value. This matches the loader policy of tolerating unexpected record
// shapes instead of propagating hard failures.
type Row map[string]any

// Has reports whether the key is present with a non-nil value.
func (r Row) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Float returns the value as float64, or 0 when missing.
func (r Row) Float(key string) float64 {
	v, _ := r.FloatOK(key)
	return v
}

// FloatOK returns the value as float64 and whether it was present and
// numeric. JSON decoding produces float64, CSV coercion produces int64,
// float64 or bool; all are accepted.
func (r Row) FloatOK(key string) (float64, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int returns the value as int64, or 0 when missing.
func (r Row) Int(key string) int64 {
	v, ok := r.FloatOK(key)
	if !ok {
		return 0
	}
	return int64(v)
}

// Bool returns the value as bool, or false when missing.
func (r Row) Bool(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(val)
		return err == nil && b
	default:
		f, ok := r.FloatOK(key)
		return ok && f != 0
	}
}

// String returns the value as string, or "" when missing.
// Non-string values are not stringified.
func (r Row) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	res := make(Row, len(r))
	for k, v := range r {
		res[k] = v
	}
	return res
}
