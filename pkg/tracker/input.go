package tracker

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted date format.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDate is returned by ParseDate for anything but a real YYYY-MM-DD date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidAmount is returned by ParseAmount for non-numeric or non-finite input.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ParseDate checks that s is a real calendar date in YYYY-MM-DD form.
// The string is returned unchanged so it can be stored as entered.
func ParseDate(s string) (string, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", ErrInvalidDate
	}
	return s, nil
}

// ParseAmount parses a decimal amount. Surrounding whitespace is ignored.
// Negative values are accepted; NaN and infinities are not, since they
// cannot be written as JSON numbers.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
