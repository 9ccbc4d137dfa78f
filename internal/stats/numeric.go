package stats

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Int is an integer reported by an upstream platform. Upstreams send numbers,
// numeric strings or null for the same field, so decoding never fails: a value
// that cannot be read as a number decodes as absent.
type Int struct {
	Value int
	Valid bool
}

func IntOf(v int) Int {
	return Int{Value: v, Valid: true}
}

// Or returns the value, or def when absent.
func (n Int) Or(def int) int {
	if !n.Valid {
		return def
	}
	return n.Value
}

func (n *Int) UnmarshalJSON(data []byte) error {
	*n = Int{}

	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = s
	}

	v, ok := parseInt(raw)
	*n = Int{Value: v, Valid: ok}
	return nil
}

func (n Int) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(n.Value)), nil
}

// ParseRatingOrZero reads a rating reported as text. Blank or malformed input
// yields 0; fractional ratings are truncated.
func ParseRatingOrZero(s string) int {
	v, _ := parseInt(s)
	return v
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int(f), true
}
