package cli

import "strconv"

// trimTrailingZeros formats v using the shortest representation that
// round-trips, so whole numbers print without a trailing ".0" in table
// cells.
func trimTrailingZeros(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
