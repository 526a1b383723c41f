package httpjson

import (
	"errors"
	"time"
)

var errInvalidTime = errors.New("invalid timestamp")

// ParseTime accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC midnight)
func ParseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidTime
}
