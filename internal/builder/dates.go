package builder

import "time"

// xerDateLayout is the date/time layout used throughout XER exports:
// "2024-01-15 08:00". Values are treated as UTC; the export carries no
// timezone of its own.
const xerDateLayout = "2006-01-02 15:04"

// parseDate parses an XER date cell. A malformed or empty value yields
// nil rather than an error, per spec §4.2 — date fields are optional in
// the model.
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(xerDateLayout, raw)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
