package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotANumber is returned when a numeric wire field does not hold a decimal number.
	ErrNotANumber = errors.New("not a decimal number")

	// ErrNotADate is returned when a date wire field is neither RFC 3339 nor YYYY-MM-DD.
	ErrNotADate = errors.New("not a date")
)

// dateOnlyLayout is accepted for startDate in addition to RFC 3339.
const dateOnlyLayout = "2006-01-02"

// NumericString is the wire form of every decimal field. Clients are expected
// to send strings ("12.50"), but a bare JSON number is accepted and kept as
// its literal text so that no float conversion ever happens.
type NumericString string

func (n *NumericString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("%w: %s", ErrNotANumber, string(b))
	}
	*n = NumericString(num.String())
	return nil
}

func (n NumericString) String() string {
	return string(n)
}

// Decimal parses the string as an arbitrary-precision decimal.
func (n NumericString) Decimal() (decimal.Decimal, error) {
	return ParseDecimal(string(n))
}

// ParseDecimal parses raw as an arbitrary-precision decimal.
// Surrounding whitespace is ignored; exponents and NaN/Inf are rejected.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, ErrNotANumber
	}
	if strings.ContainsAny(raw, "eE") {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}

	return d, nil
}

// ParseDate parses an RFC 3339 timestamp or a plain YYYY-MM-DD date (UTC midnight).
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrNotADate, raw)
}

// Scale returns the number of fractional digits d carries, ignoring trailing zeros.
func Scale(d decimal.Decimal) int32 {
	// String trims trailing fractional zeros.
	s := d.String()
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}

	return int32(len(s) - dot - 1)
}
