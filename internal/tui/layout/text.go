package layout

import (
	"regexp"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// Truncate shortens text to maxWidth runes, ending in ellipsis when cut.
func Truncate(text string, maxWidth int, ellipsis string) string {
	if maxWidth <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxWidth {
		return text
	}

	ell := []rune(ellipsis)
	if maxWidth <= len(ell) {
		return string(ell[:maxWidth])
	}
	runes := []rune(text)
	return string(runes[:maxWidth-len(ell)]) + ellipsis
}
