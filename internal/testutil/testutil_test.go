package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfgPath := SetupTestConfig(t, tmpDir)

	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), cfgPath)
	for _, d := range []string{"dictionaries", "reports"} {
		info, err := os.Stat(filepath.Join(tmpDir, d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "dictionaries:")
	assert.Contains(t, string(content), "reports:")
}

func TestWriteWordList(t *testing.T) {
	tmpDir := t.TempDir()

	path := WriteWordList(t, tmpDir, "fr", []string{"bonjour", "monde"})

	assert.Equal(t, filepath.Join(tmpDir, "fr.txt"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bonjour\nmonde\n", string(content))
}

func TestWriteCatalog(t *testing.T) {
	tmpDir := t.TempDir()

	path := WriteCatalog(t, tmpDir, "fr.po", "msgid \"a\"\nmsgstr \"b\"\n")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "msgid \"a\"\nmsgstr \"b\"\n", string(content))
}
