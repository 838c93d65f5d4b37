// Package checker runs rules over a parsed catalog and collects their
// diagnostics.
package checker

import (
	"github.com/potools/pocheck/internal/dictionary"
	"github.com/potools/pocheck/internal/po"
	"github.com/potools/pocheck/internal/words"
)

// Rule is one independently enablable check. Name is a stable kebab-case
// identifier, IsDefault tells whether the rule runs without being asked
// for, and Severity is fixed per rule. CheckMessage inspects one
// (msgid, msgstr) pairing of an entry and reports findings through the
// Checker; it returns nothing.
type Rule interface {
	Name() string
	IsDefault() bool
	Severity() Severity
	CheckMessage(c *Checker, entry *po.Entry, msgid, msgstr string)
}

// Diagnostic is one finding of a rule on one entry. It is never mutated
// after creation.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	// Line is the catalog line of the entry's msgid.
	Line int
	// MsgID and MsgStr are the full strings the spans point into.
	MsgID       string
	MsgIDSpans  []words.Span
	MsgStr      string
	MsgStrSpans []words.Span
}

// Checker drives the selected rules over a catalog. The dictionary handles
// may be nil, which leaves the spelling checks inert. A Checker is meant
// for a single CheckAll pass from one goroutine.
type Checker struct {
	file  *po.File
	rules []Rule

	// DictSource recognizes words of the source language, DictTranslation
	// words of the catalog's translation language.
	DictSource      dictionary.Dictionary
	DictTranslation dictionary.Dictionary

	current     Rule
	diagnostics []Diagnostic
}

// New creates a Checker for a parsed catalog and a rule selection.
func New(file *po.File, rules []Rule) *Checker {
	return &Checker{
		file:  file,
		rules: rules,
	}
}

// Report materializes one diagnostic for the rule currently being run.
// msgidSpans and msgstrSpans are the flagged positions in msgid and msgstr;
// either list may be empty.
func (c *Checker) Report(entry *po.Entry, message, msgid string, msgidSpans []words.Span, msgstr string, msgstrSpans []words.Span) {
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Rule:        c.current.Name(),
		Severity:    c.current.Severity(),
		Message:     message,
		Line:        entry.Line,
		MsgID:       msgid,
		MsgIDSpans:  msgidSpans,
		MsgStr:      msgstr,
		MsgStrSpans: msgstrSpans,
	})
}

// CheckAll runs every rule over every entry of the catalog. For plural
// entries, the singular msgid is paired with msgstr[0] and the plural
// msgid with each remaining translation.
func (c *Checker) CheckAll() {
	for i := range c.file.Entries {
		entry := &c.file.Entries[i]
		for _, rule := range c.rules {
			c.current = rule
			c.checkEntry(rule, entry)
		}
	}
	c.current = nil
}

func (c *Checker) checkEntry(rule Rule, entry *po.Entry) {
	if !entry.IsPlural() {
		rule.CheckMessage(c, entry, entry.MsgID, entry.MsgStr)
		return
	}
	for i, msgstr := range entry.MsgStrPlural {
		msgid := entry.MsgID
		if i > 0 {
			msgid = entry.MsgIDPlural
		}
		rule.CheckMessage(c, entry, msgid, msgstr)
	}
}

// Diagnostics returns the findings accumulated so far.
func (c *Checker) Diagnostics() []Diagnostic {
	return c.diagnostics
}
