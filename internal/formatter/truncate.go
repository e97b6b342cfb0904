package formatter

// TruncateWithEllipsis shortens s to at most maxLen runes, ending with "..."
// when something was cut. Widths of 3 or less are cut without the ellipsis.
func TruncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}
