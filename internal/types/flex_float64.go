package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexFloat64 is a nullable float64 that can be unmarshaled from either a
// JSON number or a JSON string. Decimal fields like location percentages
// arrive both ways from clients.
type FlexFloat64 struct {
	Set   bool
	Valid bool
	Val   float64
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexFloat64) UnmarshalJSON(data []byte) error {
	f.Set = true

	if string(data) == "null" {
		return nil
	}

	// Try unmarshaling as a number first
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		f.Valid = true
		f.Val = n
		return nil
	}

	// Try unmarshaling as a string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			return nil
		}
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("FlexFloat64: invalid float string %q: %w", s, err)
		}
		f.Valid = true
		f.Val = val
		return nil
	}

	return fmt.Errorf("FlexFloat64: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexFloat64) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Val)
}

// Ptr converts FlexFloat64 to a nullable float64.
func (f FlexFloat64) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Val
	return &v
}
