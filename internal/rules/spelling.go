package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/potools/pocheck/internal/checker"
	"github.com/potools/pocheck/internal/dictionary"
	"github.com/potools/pocheck/internal/po"
	"github.com/potools/pocheck/internal/words"
)

// SpellingSource checks spelling in the source string against the source
// language dictionary.
//
// Wrong entry:
//
//	msgid "this is a tyypo"
//	msgstr "ceci est une faute"
//
// Diagnostic: `misspelled words in source: tyypo` (plus every other word
// the dictionary does not recognize, sorted).
type SpellingSource struct{}

func (r SpellingSource) Name() string {
	return "spelling-id"
}

func (r SpellingSource) IsDefault() bool {
	return false
}

func (r SpellingSource) Severity() checker.Severity {
	return checker.SeverityInfo
}

func (r SpellingSource) CheckMessage(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	misspelled, spans := findMisspelled(c.DictSource, msgid, entry.Format)
	if len(misspelled) == 0 {
		return
	}
	message := fmt.Sprintf("misspelled words in source: %s", strings.Join(misspelled, ", "))
	c.Report(entry, message, msgid, spans, msgstr, nil)
}

// SpellingTranslation checks spelling in the translated string against the
// dictionary of the catalog's language.
//
// Wrong entry:
//
//	msgid "this is a typo"
//	msgstr "ceci est une fôte"
//
// Diagnostic: `misspelled words in translation: fôte`.
type SpellingTranslation struct{}

func (r SpellingTranslation) Name() string {
	return "spelling-str"
}

func (r SpellingTranslation) IsDefault() bool {
	return false
}

func (r SpellingTranslation) Severity() checker.Severity {
	return checker.SeverityInfo
}

func (r SpellingTranslation) CheckMessage(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	misspelled, spans := findMisspelled(c.DictTranslation, msgstr, entry.Format)
	if len(misspelled) == 0 {
		return
	}
	message := fmt.Sprintf("misspelled words in translation: %s", strings.Join(misspelled, ", "))
	c.Report(entry, message, msgid, nil, msgstr, spans)
}

// findMisspelled tokenizes s and returns the distinct unrecognized words,
// sorted by code point, plus the position of every occurrence. Words
// already known bad are recorded again without a second lookup. A nil
// dictionary disables the check.
func findMisspelled(dict dictionary.Dictionary, s, format string) ([]string, []words.Span) {
	if dict == nil {
		return nil, nil
	}

	var misspelled []string
	seen := make(map[string]struct{})
	var spans []words.Span

	it := words.New(s, format)
	for {
		span, ok := it.Next()
		if !ok {
			break
		}
		word := s[span.Start:span.End]
		if _, known := seen[word]; known {
			spans = append(spans, span)
		} else if !dict.Check(word) {
			misspelled = append(misspelled, word)
			seen[word] = struct{}{}
			spans = append(spans, span)
		}
	}

	sort.Strings(misspelled)
	return misspelled, spans
}
