package testutil

import "strings"

// Lines splits newline-terminated output into lines. A trailing newline
// does not yield an empty final element; empty output yields nil.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
