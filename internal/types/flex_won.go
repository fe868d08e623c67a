// flex_won.go
//
// Monetary amounts arrive from three sources with three shapes: JSON numbers
// from the API client, numeric strings from form inputs, and display strings
// like "1,234,000원" from spreadsheet backups. FlexWon accepts all of them.

package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexWon is an int64 KRW amount that can be unmarshaled from a JSON number
// or from a string containing digit grouping and currency decorations.
type FlexWon int64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexWon) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// Try unmarshaling as a number first
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexWon(int64(n))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := ParseWon(s)
		if err != nil {
			return fmt.Errorf("FlexWon: invalid amount string %q: %w", s, err)
		}
		*f = FlexWon(val)
		return nil
	}

	return fmt.Errorf("FlexWon: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexWon) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(f))
}

// Int64 converts FlexWon back to int64.
func (f FlexWon) Int64() int64 {
	return int64(f)
}

// ParseWon coerces a currency-like string to an integer amount by stripping
// every non-numeric character ("₩1,234,000원" -> 1234000). An empty or
// all-decoration string parses to 0. A leading minus sign is preserved.
func ParseWon(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	negative := strings.HasPrefix(s, "-")

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, nil
	}

	val, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, err
	}
	if negative {
		val = -val
	}
	return val, nil
}
