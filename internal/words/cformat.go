package words

import (
	"strings"
	"unicode/utf8"
)

// endOfSpecifier returns the index one past the end of a single printf-style
// conversion specifier. pos is the index immediately after a '%' that is not
// part of a "%%" literal.
//
// The accepted grammar is flags, optional width, optional precision, an
// optional length modifier, and one conversion character. The conversion
// character itself is not validated: the scanner only has to find where the
// specifier ends. When the string ends before a conversion character is
// found, len(s) is returned and the caller stops scanning; a truncated
// trailing specifier absorbs the rest of the string.
func endOfSpecifier(s string, pos int) int {
	for pos < len(s) && isFlag(s[pos]) {
		pos++
	}

	// Width: digits or a single '*'.
	if pos < len(s) && s[pos] == '*' {
		pos++
	} else {
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
	}

	// Precision: '.' followed by digits or a single '*'.
	if pos < len(s) && s[pos] == '.' {
		pos++
		if pos < len(s) && s[pos] == '*' {
			pos++
		} else {
			for pos < len(s) && isDigit(s[pos]) {
				pos++
			}
		}
	}

	// Length modifier: hh and ll before their one-letter prefixes.
	switch {
	case strings.HasPrefix(s[pos:], "hh"), strings.HasPrefix(s[pos:], "ll"):
		pos += 2
	case pos < len(s) && strings.IndexByte("hlLzjt", s[pos]) >= 0:
		pos++
	}

	if pos >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[pos:])
	return pos + size
}

func isFlag(b byte) bool {
	switch b {
	case '-', '+', ' ', '#', '0':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
