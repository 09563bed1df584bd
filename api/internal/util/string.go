package util

import "strings"

// Unknown is returned by FirstToken when there is nothing to extract.
const Unknown = "Unknown"

// FirstToken returns the first whitespace-delimited token of s, or Unknown.
func FirstToken(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return Unknown
}
