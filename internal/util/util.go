// Package util provides common string helpers used across milsymbol.
package util

import "strings"

// TrimQuotes removes leading and trailing double quotes from a string.
func TrimQuotes(s string) string {
	return strings.Trim(s, `"`)
}

// StripSeparators removes the spaces, dashes and underscores people use to
// group the digits of a symbol code, e.g. "10031000-16-121100-0000".
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, s)
}
