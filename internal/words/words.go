// Package words tokenizes catalog strings into word positions.
package words

import (
	"unicode"
	"unicode/utf8"
)

// Span identifies one word as half-open byte offsets into the string it was
// tokenized from. Offsets are byte positions, not rune counts, so
// s[span.Start:span.End] is always valid on the original string.
type Span struct {
	Start int
	End   int
}

// Iterator yields the position of each word in a string, one Span per call
// to Next. A word is a maximal run of alphanumeric runes; a hyphen extends a
// word but never starts one. The iterator is single-pass: create a new one
// to scan again.
//
// When the format is "c", printf-style conversion specifiers are skipped so
// that their contents (e.g. the "05d" in "%05d") are not reported as words,
// and "%%" is treated as a literal percent sign.
type Iterator struct {
	s           string
	skipCFormat bool
	pos         int
}

// New creates an Iterator over s. format is the catalog entry's format
// flag, "c" or empty.
func New(s string, format string) *Iterator {
	return &Iterator{
		s:           s,
		skipCFormat: format == "c",
	}
}

// Next returns the span of the next word. It returns ok=false once the end
// of the string is reached and no word remains.
func (it *Iterator) Next() (Span, bool) {
	start := -1
	end := -1
	for it.pos < len(it.s) {
		if it.skipCFormat && start < 0 && it.s[it.pos] == '%' {
			it.pos++
			if it.pos < len(it.s) && it.s[it.pos] == '%' {
				it.pos++
			} else {
				it.pos = endOfSpecifier(it.s, it.pos)
			}
			if it.pos >= len(it.s) {
				return Span{}, false
			}
			continue
		}

		r, size := utf8.DecodeRuneInString(it.s[it.pos:])
		if unicode.IsLetter(r) || unicode.IsNumber(r) || (start >= 0 && r == '-') {
			if start < 0 {
				start = it.pos
			}
			end = it.pos + size
		} else if start >= 0 {
			// The word ends here. The terminating rune is reconsidered,
			// and skipped, on the next call.
			break
		}
		it.pos += size
	}
	if start < 0 || end < 0 {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}
