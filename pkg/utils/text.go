package utils

import "strings"

// Truncate returns s cut to maxLen bytes with "..." appended when truncated.
// maxLen <= 0 returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// CleanSnippet collapses internal whitespace and trims the ends, so snippets
// from scraped or API text are stored in a uniform single-line form.
func CleanSnippet(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
