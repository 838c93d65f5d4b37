// Package po parses gettext catalog (PO) files into entries.
package po

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one message of a catalog. Translated strings live in MsgStr for
// singular entries and in MsgStrPlural for entries with a msgid_plural.
type Entry struct {
	MsgCtxt      string
	MsgID        string
	MsgIDPlural  string
	MsgStr       string
	MsgStrPlural []string
	Flags        []string
	// Format is "c" when the entry carries the c-format flag, empty
	// otherwise. It controls specifier-aware tokenization.
	Format string
	// Line is the line number of the msgid keyword, for diagnostics.
	Line int
}

// HasFlag reports whether the entry carries the given #, flag.
func (e Entry) HasFlag(name string) bool {
	for _, flag := range e.Flags {
		if flag == name {
			return true
		}
	}
	return false
}

// IsFuzzy reports whether the entry is marked fuzzy.
func (e Entry) IsFuzzy() bool {
	return e.HasFlag("fuzzy")
}

// IsPlural reports whether the entry has a msgid_plural.
func (e Entry) IsPlural() bool {
	return e.MsgIDPlural != ""
}

// File is a parsed catalog. The header entry (empty msgid) is kept out of
// Entries; the fields checks need from it are extracted here.
type File struct {
	// Language is the value of the header's Language: field, e.g. "fr".
	Language string
	Entries  []Entry
}

// ParseFile reads and parses the catalog at path.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse reads a catalog from r. Obsolete entries (#~) are skipped. A
// malformed line aborts parsing with its line number.
func Parse(r io.Reader) (*File, error) {
	p := parser{file: &File{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.line++
		if err := p.parseLine(strings.TrimSpace(scanner.Text())); err != nil {
			return nil, fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err() > %w", err)
	}

	if err := p.flush(); err != nil {
		return nil, fmt.Errorf("line %d: %w", p.line, err)
	}
	return p.file, nil
}

// section tracks which quoted string a bare "..." continuation line
// belongs to.
type section int

const (
	sectionNone section = iota
	sectionMsgCtxt
	sectionMsgID
	sectionMsgIDPlural
	sectionMsgStr
	sectionMsgStrPlural
)

type parser struct {
	file    *File
	line    int
	entry   Entry
	started bool
	section section
}

func (p *parser) parseLine(line string) error {
	switch {
	case line == "":
		return nil
	case strings.HasPrefix(line, "#~"):
		// Obsolete entry, not checked.
		return nil
	case strings.HasPrefix(line, "#,"):
		if p.started && p.section != sectionNone {
			if err := p.flush(); err != nil {
				return err
			}
		}
		for _, flag := range strings.Split(line[2:], ",") {
			if flag = strings.TrimSpace(flag); flag != "" {
				p.entry.Flags = append(p.entry.Flags, flag)
			}
		}
		p.started = true
		return nil
	case strings.HasPrefix(line, "#"):
		// Translator, extracted and reference comments.
		return nil
	case strings.HasPrefix(line, "msgctxt "):
		if p.started && p.section != sectionNone {
			if err := p.flush(); err != nil {
				return err
			}
		}
		return p.beginSection(sectionMsgCtxt, line[len("msgctxt "):])
	case strings.HasPrefix(line, "msgid_plural "):
		if p.section != sectionMsgID {
			return fmt.Errorf("msgid_plural without msgid")
		}
		return p.beginSection(sectionMsgIDPlural, line[len("msgid_plural "):])
	case strings.HasPrefix(line, "msgid "):
		if p.started && p.section >= sectionMsgStr {
			if err := p.flush(); err != nil {
				return err
			}
		}
		p.entry.Line = p.line
		return p.beginSection(sectionMsgID, line[len("msgid "):])
	case strings.HasPrefix(line, "msgstr["):
		end := strings.IndexByte(line, ']')
		if end < 0 || !strings.HasPrefix(line[end+1:], " ") {
			return fmt.Errorf("malformed msgstr index: %s", line)
		}
		if p.section != sectionMsgIDPlural && p.section != sectionMsgStrPlural {
			return fmt.Errorf("msgstr[N] without msgid_plural")
		}
		p.entry.MsgStrPlural = append(p.entry.MsgStrPlural, "")
		return p.beginSection(sectionMsgStrPlural, line[end+2:])
	case strings.HasPrefix(line, "msgstr "):
		if p.section != sectionMsgID {
			return fmt.Errorf("msgstr without msgid")
		}
		return p.beginSection(sectionMsgStr, line[len("msgstr "):])
	case strings.HasPrefix(line, `"`):
		if !p.started || p.section == sectionNone {
			return fmt.Errorf("continuation line outside of an entry")
		}
		text, err := decodeString(line)
		if err != nil {
			return err
		}
		p.append(text)
		return nil
	default:
		return fmt.Errorf("unexpected input: %s", line)
	}
}

func (p *parser) beginSection(s section, quoted string) error {
	text, err := decodeString(quoted)
	if err != nil {
		return err
	}
	p.started = true
	p.section = s
	p.append(text)
	return nil
}

func (p *parser) append(text string) {
	switch p.section {
	case sectionMsgCtxt:
		p.entry.MsgCtxt += text
	case sectionMsgID:
		p.entry.MsgID += text
	case sectionMsgIDPlural:
		p.entry.MsgIDPlural += text
	case sectionMsgStr:
		p.entry.MsgStr += text
	case sectionMsgStrPlural:
		last := len(p.entry.MsgStrPlural) - 1
		p.entry.MsgStrPlural[last] += text
	}
}

func (p *parser) flush() error {
	if !p.started {
		return nil
	}
	if p.section < sectionMsgStr {
		return fmt.Errorf("entry without msgstr")
	}

	entry := p.entry
	p.entry = Entry{}
	p.started = false
	p.section = sectionNone

	if entry.HasFlag("c-format") {
		entry.Format = "c"
	}

	if entry.MsgID == "" && entry.MsgCtxt == "" && !entry.IsPlural() {
		p.file.Language = headerField(entry.MsgStr, "Language")
		return nil
	}
	p.file.Entries = append(p.file.Entries, entry)
	return nil
}

// headerField extracts one field value from the header msgstr, whose lines
// are "Name: value\n" pairs.
func headerField(header, name string) string {
	for _, line := range strings.Split(header, "\n") {
		if value, ok := strings.CutPrefix(line, name+":"); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// decodeString parses one quoted PO string segment, decoding the usual
// backslash escapes.
func decodeString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("expected a quoted string, got: %s", s)
	}
	s = s[1 : len(s)-1]

	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '0':
			b.WriteByte(0)
		default:
			return "", fmt.Errorf("unknown escape sequence: \\%c", s[i])
		}
	}
	return b.String(), nil
}
