package errs

import "strings"

// sanitize flattens multi-line values into a single line so that error
// messages stay log-safe.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
