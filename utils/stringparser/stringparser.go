package stringparser

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

//------------------------------------------------------------------------------

// SkipSpaces returns the width of the run of spaces and tabs at the start of
// the string, or -1 on malformed input.
func SkipSpaces(s string) int {
	var i int

	for i < len(s) {
		c, width := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError {
			return -1
		}
		if c != 9 && c != 32 {
			break
		}
		i += width
	}
	return i
}

// GetUint64 parses the decimal digits at the start of the string and returns
// the value and its width. Width is -1 when no number is present.
func GetUint64(s string) (uint64, int) {
	var i int

	for i < len(s) {
		c, width := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError {
			return 0, -1
		}
		if c < 48 || c > 57 {
			break
		}
		i += width
	}

	value, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0, -1
	}
	return value, i
}

// GetFloat64 parses the decimal number at the start of the string and
// returns the value and its width. Width is -1 when no number is present.
func GetFloat64(s string) (float64, int) {
	var i int

	dotSeen := false
	for i < len(s) {
		c, width := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError {
			return 0, -1
		}
		if c == 46 {
			if dotSeen {
				return 0, -1
			}
			dotSeen = true
		} else if c < 48 || c > 57 {
			break
		}
		i += width
	}

	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, -1
	}
	return value, i
}

// GetText returns the run of letters at the start of the string and its
// width.
func GetText(s string) (string, int) {
	var i int

	for i < len(s) {
		c, width := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError {
			return "", -1
		}
		if !unicode.IsLetter(c) {
			break
		}
		i += width
	}
	return s[:i], i
}
