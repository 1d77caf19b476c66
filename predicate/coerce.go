package predicate

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// sanitize converts a raw operand into the form a predicate of type t compares
// against.
func sanitize(t DataType, v any) (any, error) {
	if m, ok := v.(map[string]any); ok && t != Dict && t != List && t != GroupType {
		// Values picked from a value bucket may still be wrapped.
		v = m["value"]
	}
	if v == nil {
		return nil, nil
	}

	switch t {
	case Bool:
		if n, ok := asNumber(v); ok {
			switch n {
			case 0:
				return false, nil
			case 1:
				return true, nil
			}
		}
		b, ok := asBool(v)
		if !ok {
			return nil, fmt.Errorf("%w: %v (%T) is not a bool", ErrInvalidOperand, v, v)
		}
		return b, nil

	case Str:
		if s, ok := asString(v); ok {
			return s, nil
		}
		return fmt.Sprint(v), nil

	case Number:
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: %v (%T) is not a number", ErrInvalidOperand, v, v)
		}
		return f, nil

	case Dict:
		if _, ok := v.(string); ok {
			return v, nil
		}
		if reflect.TypeOf(v).Kind() != reflect.Map {
			return nil, fmt.Errorf("%w: %v (%T) is not a map", ErrInvalidOperand, v, v)
		}
		return v, nil

	case DateTime:
		if s, ok := v.(string); ok && IsBucket(s) {
			return s, nil
		}
		ts, err := toTime(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOperand, err)
		}
		return ts, nil
	}
	return v, nil
}

// asNumber returns v as float64 when v has a numeric Go type. Strings are not
// parsed.
func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case nil, bool, string:
		return 0, false
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// asString returns v as a string when its kind is string, including named
// string types.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// asBool is asString for bool kinds.
func asBool(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	if v == nil {
		return false, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// toFloat is asNumber that also parses numeric-looking strings.
func toFloat(v any) (float64, bool) {
	if s, ok := asString(v); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return asNumber(v)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case time.Time:
		return !x.IsZero()
	}
	if n, ok := asNumber(v); ok {
		return n != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// toList normalizes v into a slice: nil becomes empty, sequences are copied
// element-wise, anything else becomes a one-element list.
func toList(v any) []any {
	if v == nil {
		return nil
	}
	if l, ok := v.([]any); ok {
		return l
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// EqualValues reports whether a and b are structurally equal. Numbers compare by
// value regardless of their Go type; maps and sequences compare element-wise.
func EqualValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if fa, ok := asNumber(a); ok {
		fb, ok := asNumber(b)
		return ok && fa == fb
	}

	if x, ok := asString(a); ok {
		y, ok := asString(b)
		return ok && x == y
	}
	if x, ok := asBool(a); ok {
		y, ok := asBool(b)
		return ok && x == y
	}

	switch x := a.(type) {
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isSequence(ra) && isSequence(rb):
		if ra.Len() != rb.Len() {
			return false
		}
		for i := range ra.Len() {
			if !EqualValues(ra.Index(i).Interface(), rb.Index(i).Interface()) {
				return false
			}
		}
		return true

	case ra.Kind() == reflect.Map && rb.Kind() == reflect.Map:
		if ra.Len() != rb.Len() {
			return false
		}
		if ra.Type().Key().Kind() != reflect.String || rb.Type().Key().Kind() != reflect.String {
			return reflect.DeepEqual(a, b)
		}
		keyType := rb.Type().Key()
		iter := ra.MapRange()
		for iter.Next() {
			other := rb.MapIndex(reflect.ValueOf(iter.Key().String()).Convert(keyType))
			if !other.IsValid() || !EqualValues(iter.Value().Interface(), other.Interface()) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(a, b)
}

func isSequence(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}
