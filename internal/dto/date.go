package dto

import "time"

// DateFormat is the wire format for calendar dates. Monetary documents
// carry dates without time-of-day.
const DateFormat = "2006-01-02"

// ParseDate parses a wire-format calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// FormatDate renders a calendar date in wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
