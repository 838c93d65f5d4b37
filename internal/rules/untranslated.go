package rules

import (
	"strings"

	"github.com/potools/pocheck/internal/checker"
	"github.com/potools/pocheck/internal/po"
)

// Untranslated flags entries whose translation is empty or whitespace.
// Fuzzy entries are skipped: they are known to need work already.
type Untranslated struct{}

func (r Untranslated) Name() string {
	return "untranslated"
}

func (r Untranslated) IsDefault() bool {
	return true
}

func (r Untranslated) Severity() checker.Severity {
	return checker.SeverityWarning
}

func (r Untranslated) CheckMessage(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	if entry.IsFuzzy() {
		return
	}
	if strings.TrimSpace(msgstr) != "" {
		return
	}
	c.Report(entry, "untranslated message", msgid, nil, msgstr, nil)
}
