// Package util provides some basic utility functions.
package util

// Min returns the smallest of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
