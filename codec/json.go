package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Time values encode as RFC 3339 strings; funcs and channels are rejected and
// fall back to fmt formatting in String.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}
