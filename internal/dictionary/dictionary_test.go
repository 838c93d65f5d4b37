package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordList(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWordList_Check(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		word  string
		want  bool
	}{
		{name: "exact match", words: []string{"faute"}, word: "faute", want: true},
		{name: "missing word", words: []string{"faute"}, word: "fôte", want: false},
		{name: "lowercase entry accepts capitalized word", words: []string{"bonjour"}, word: "Bonjour", want: true},
		{name: "proper noun stays case sensitive", words: []string{"Paris"}, word: "paris", want: false},
		{name: "unicode word", words: []string{"fédération"}, word: "fédération", want: true},
		{name: "empty list", words: nil, word: "any", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWordList(tt.words)
			assert.Equal(t, tt.want, w.Check(tt.word))
		})
	}
}

func TestLoadWordList(t *testing.T) {
	dir := t.TempDir()
	path := writeWordList(t, dir, "fr.txt", `# French test list
bonjour
faute

le
`)

	w, err := LoadWordList(path)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Len())
	assert.True(t, w.Check("bonjour"))
	assert.True(t, w.Check("faute"))
	assert.False(t, w.Check("# French test list"))

	_, err = LoadWordList(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestMerged_Check(t *testing.T) {
	stock := NewWordList([]string{"bonjour"})
	custom := NewWordList([]string{"courriel"})

	merged := Merged{stock, custom, nil}
	assert.True(t, merged.Check("bonjour"))
	assert.True(t, merged.Check("courriel"))
	assert.False(t, merged.Check("fôte"))
	assert.False(t, Merged{}.Check("bonjour"))
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeWordList(t, dir, "fr.txt", "bonjour\n")

	tests := []struct {
		name      string
		lang      string
		wantFound bool
	}{
		{name: "exact language", lang: "fr", wantFound: true},
		{name: "regional variant falls back to base", lang: "fr_FR", wantFound: true},
		{name: "unknown language", lang: "xx", wantFound: false},
		{name: "empty language", lang: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict, err := Resolve(dir, tt.lang)
			require.NoError(t, err)
			if !tt.wantFound {
				assert.Nil(t, dict)
				return
			}
			require.NotNil(t, dict)
			assert.True(t, dict.Check("bonjour"))
		})
	}
}
