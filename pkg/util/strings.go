package util

import "unicode/utf8"

// MaxEchoSize is the default number of bytes of user input echoed back.
const MaxEchoSize = 64

const truncatedSuffix = "...(truncated)"

// Truncate cuts s to at most maxSize bytes, appending "...(truncated)" if
// anything was removed. The cut never splits a UTF-8 sequence.
// If maxSize <= 0, uses MaxEchoSize.
func Truncate(s string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxEchoSize
	}
	if len(s) <= maxSize {
		return s
	}
	cut := maxSize
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncatedSuffix
}
