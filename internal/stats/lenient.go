package stats

import (
	"bytes"
	"encoding/json"
)

// Text is a string reported by an upstream platform. A number keeps its
// literal text; null, booleans, objects and arrays decode as "".
type Text string

func (t Text) String() string {
	return string(t)
}

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		return nil
	}

	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*t = Text(s)
		}
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			*t = Text(n.String())
		}
	}
	return nil
}

// List is an upstream array. Elements that fail to decode are dropped, and a
// value that is not an array decodes as empty.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	*l = nil

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil
	}

	out := make(List[T], 0, len(elems))
	for _, raw := range elems {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// decodeObject fills dst from data, leaving it zero when data has the wrong
// shape. Callers pass a method-less alias of their type to avoid recursing
// into their own UnmarshalJSON.
func decodeObject[T any](data []byte, dst *T) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		*dst = zero
		return
	}
	*dst = v
}
