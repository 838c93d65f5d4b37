// Package dictionary provides the word recognition oracles used by the
// spelling checks: local word-list files, a shared MySQL store of custom
// terminology, and a downloader for word-list files.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dictionary reports whether a word is recognized. Implementations own
// their case and normalization policy and must tolerate concurrent
// read-only lookups.
type Dictionary interface {
	Check(word string) bool
}

// WordList is an in-memory Dictionary backed by a plain word list.
// A word matches as written or lowercased, so "Paris" in the list accepts
// "Paris" while "paris" in the list accepts both "paris" and "Paris".
type WordList struct {
	words map[string]struct{}
}

// NewWordList creates a WordList from the given words.
func NewWordList(list []string) *WordList {
	w := &WordList{words: make(map[string]struct{}, len(list))}
	for _, word := range list {
		if word = strings.TrimSpace(word); word != "" {
			w.words[word] = struct{}{}
		}
	}
	return w
}

// LoadWordList reads a word-list file: one word per line, blank lines and
// lines starting with # ignored.
func LoadWordList(path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := &WordList{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		w.words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err() > %w", err)
	}
	return w, nil
}

// Check implements Dictionary.
func (w *WordList) Check(word string) bool {
	if _, ok := w.words[word]; ok {
		return true
	}
	if lower := strings.ToLower(word); lower != word {
		if _, ok := w.words[lower]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of words in the list.
func (w *WordList) Len() int {
	return len(w.words)
}

// Merged is a Dictionary that recognizes a word when any of its parts do.
type Merged []Dictionary

// Check implements Dictionary.
func (m Merged) Check(word string) bool {
	for _, d := range m {
		if d != nil && d.Check(word) {
			return true
		}
	}
	return false
}

// Resolve finds the word list for a catalog language in dir, trying
// "<lang>.txt" and then the base language before any "_" ("fr_FR" falls
// back to "fr"). A missing word list is not an error: the checks treat a
// nil Dictionary as "skip".
func Resolve(dir, lang string) (Dictionary, error) {
	if lang == "" {
		return nil, nil
	}

	candidates := []string{lang}
	if base, _, found := strings.Cut(lang, "_"); found {
		candidates = append(candidates, base)
	}

	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate+".txt")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		w, err := LoadWordList(path)
		if err != nil {
			return nil, fmt.Errorf("LoadWordList(%s) > %w", path, err)
		}
		return w, nil
	}
	return nil, nil
}
