package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potools/pocheck/internal/checker"
	"github.com/potools/pocheck/internal/testutil"
)

func TestSeverityFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    checker.Severity
		wantErr bool
	}{
		{name: "info", value: "info", want: checker.SeverityInfo},
		{name: "warning", value: "warning", want: checker.SeverityWarning},
		{name: "error", value: "error", want: checker.SeverityError},
		{name: "invalid", value: "fatal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag severityFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, checker.Severity(flag))
			assert.Equal(t, tt.value, flag.String())
			assert.Equal(t, "severity", flag.Type())
		})
	}
}

func setupCheckFixture(t *testing.T) (poPath string) {
	t.Helper()

	tempDir := t.TempDir()
	configPath := testutil.SetupTestConfig(t, tempDir)

	dictDir := filepath.Join(tempDir, "dictionaries")
	testutil.WriteWordList(t, dictDir, "en", []string{"hello", "goodbye", "world"})
	testutil.WriteWordList(t, dictDir, "fr", []string{"bonjour", "monde"})

	poPath = testutil.WriteCatalog(t, tempDir, "fr.po", `msgid ""
msgstr "Language: fr\n"

msgid "hello wrld"
msgstr "bonjour mnde"

msgid "goodbye"
msgstr ""
`)

	previousConfigFile := configFile
	configFile = configPath
	t.Cleanup(func() {
		configFile = previousConfigFile
	})

	return poPath
}

func TestNewCheckCommand_Run(t *testing.T) {
	color.NoColor = true

	t.Run("reports misspellings and untranslated entries", func(t *testing.T) {
		poPath := setupCheckFixture(t)

		cmd := newCheckCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{poPath, "--rules", "spelling-id,spelling-str"})

		err := cmd.Execute()
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "misspelled words in source: wrld")
		assert.Contains(t, out, "misspelled words in translation: mnde")
		assert.Contains(t, out, "untranslated message")
		assert.Contains(t, out, poPath+":4")
		assert.Contains(t, out, poPath+":7")
		assert.Contains(t, out, "1 file(s) checked, 3 issue(s): 0 error(s), 1 warning(s), 2 info")
	})

	t.Run("min severity hides info diagnostics", func(t *testing.T) {
		poPath := setupCheckFixture(t)

		cmd := newCheckCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{poPath, "--rules", "spelling-id,spelling-str", "--min-severity", "warning"})

		err := cmd.Execute()
		require.NoError(t, err)

		out := buf.String()
		assert.NotContains(t, out, "misspelled words")
		assert.Contains(t, out, "untranslated message")
	})

	t.Run("fail severity turns warnings into a failure", func(t *testing.T) {
		poPath := setupCheckFixture(t)

		cmd := newCheckCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetErr(&buf)
		cmd.SetArgs([]string{poPath, "--fail-severity", "warning"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check failed")
	})

	t.Run("writes a markdown report", func(t *testing.T) {
		poPath := setupCheckFixture(t)

		cmd := newCheckCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{poPath, "--report"})

		err := cmd.Execute()
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Report written to ")

		reportsDir := filepath.Join(filepath.Dir(poPath), "reports")
		entries, err := os.ReadDir(reportsDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Name(), "pocheck_")
	})

	t.Run("unknown rule name fails", func(t *testing.T) {
		poPath := setupCheckFixture(t)

		cmd := newCheckCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetErr(&buf)
		cmd.SetArgs([]string{poPath, "--rules", "no-such-rule"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown rule: no-such-rule")
	})
}
