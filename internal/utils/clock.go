package utils

import "time"

// ISOClock reports the current time as UTC ISO 8601 strings, the form used by
// the persisted invoice schema for createdAt/updatedAt.
type ISOClock struct {
}

func NewISOClock() *ISOClock {
	return &ISOClock{}
}

// Now returns the current instant, e.g. "2026-09-01T10:30:00.000Z".
func (c *ISOClock) Now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// Today returns the current date in YYYY-MM-DD form, used for the invoice
// issue date.
func (c *ISOClock) Today() string {
	return time.Now().UTC().Format("2006-01-02")
}
