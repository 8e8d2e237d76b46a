package builder

import "strconv"

// parseFloatDefault parses a numeric XER cell, falling back to def on an
// empty or malformed value. Every numeric coercion in this package goes
// through one of these two helpers so the fallback table in spec §4.2
// has exactly one implementation.
func parseFloatDefault(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
