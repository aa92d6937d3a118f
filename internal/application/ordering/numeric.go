package ordering

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Numeric is a JSON scalar that accepts either a number or a string
// token. The raw token is kept verbatim; coercion happens during
// normalization so a malformed value surfaces as a field violation
// instead of a decode failure.
type Numeric struct {
	raw     string
	present bool
}

// UnmarshalJSON accepts a JSON number or string. Any other JSON type
// fails decoding, which the binding layer reports as a schema error.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n.raw = strings.TrimSpace(s)
		n.present = true
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	n.raw = num.String()
	n.present = true
	return nil
}

// Float64 coerces the token to a float. Coercion is strict: trailing
// garbage or an empty token fails.
func (n Numeric) Float64() (float64, bool) {
	if !n.present || n.raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Int64 coerces the token to an integer. Float tokens are accepted
// only when they carry no fractional part.
func (n Numeric) Int64() (int64, bool) {
	if !n.present || n.raw == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(n.raw, 10, 64); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(n.raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

// String returns the raw token as received.
func (n Numeric) String() string {
	return n.raw
}
