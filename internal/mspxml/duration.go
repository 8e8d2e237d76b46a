package mspxml

import (
	"strconv"
	"strings"
	"time"
)

// parseISODate parses the date/time format MS-Project XML exports use,
// e.g. "2024-01-15T08:00:00". A malformed or empty value yields nil, the
// same tolerant-default rule the XER path follows.
func parseISODate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", raw)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// parseISODuration parses MS-Project's xsd-duration-like task/link
// durations, e.g. "PT80H0M0S", returning hours. Only the hour component
// is honored; days/weeks in PnDTnHnMnS form are not emitted by the
// exporter for task durations so they are not handled here.
func parseISODuration(raw string) float64 {
	raw = strings.TrimPrefix(raw, "PT")
	idx := strings.Index(raw, "H")
	if idx < 0 {
		return 0
	}
	hours, err := strconv.ParseFloat(raw[:idx], 64)
	if err != nil {
		return 0
	}
	return hours
}
