// Package testutil provides shared test helpers for creating config files and
// word-list fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and all required directories
// for testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"dictionaries", "reports"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`dictionaries:
  directory: %s
reports:
  directory: %s
`,
		filepath.Join(tmpDir, "dictionaries"),
		filepath.Join(tmpDir, "reports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteWordList writes a word list for lang under dir, one word per line.
func WriteWordList(t *testing.T, dir, lang string, words []string) string {
	t.Helper()

	path := filepath.Join(dir, lang+".txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644))
	return path
}

// WriteCatalog writes a PO catalog file with the given content and returns
// its path.
func WriteCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
