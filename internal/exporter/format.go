package exporter

import "strconv"

// formatFloat formats a float64 value for CSV output without trailing
// zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatOptionalFloat renders a missing float as an empty cell.
func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

// formatOptionalInt renders a missing integer as an empty cell.
func formatOptionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// formatOptionalString renders a missing string as an empty cell.
func formatOptionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
