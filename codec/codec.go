// Package codec encodes composite values into stable text.
//
// The catalog uses a codec to derive labels for map and list values that
// carry no display name. Encodings must be deterministic: equal values have
// to produce equal bytes, otherwise they land in different value buckets.
package codec

import "fmt"

// Codec encodes values. Labels are never decoded, so there is no Unmarshal.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json", "":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// String encodes v with c and returns the text. Values the codec rejects
// fall back to their fmt representation.
func String(c Codec, v any) string {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
