package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potools/pocheck/internal/checker"
)

func TestMarkdown(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		results      []FileResult
		wantContains []string
	}{
		{
			name:    "no files",
			results: nil,
			wantContains: []string{
				"# Translation check report",
				"0 files checked, 0 issues (0 errors, 0 warnings, 0 info)",
			},
		},
		{
			name: "file without issues",
			results: []FileResult{
				{Path: "locales/fr.po"},
			},
			wantContains: []string{
				"## locales/fr.po",
				"No issues found.",
				"1 files checked, 0 issues",
			},
		},
		{
			name: "file with issues",
			results: []FileResult{
				{
					Path: "locales/fr.po",
					Diagnostics: []checker.Diagnostic{
						{
							Rule:     "untranslated",
							Severity: checker.SeverityWarning,
							Message:  "untranslated message",
							Line:     12,
						},
						{
							Rule:     "spelling-str",
							Severity: checker.SeverityInfo,
							Message:  "misspelled words in translation: fôte",
							Line:     20,
						},
					},
				},
			},
			wantContains: []string{
				"1 files checked, 2 issues (0 errors, 1 warnings, 1 info)",
				"| Line | Severity | Rule | Message |",
				"| 12 | warning | untranslated | untranslated message |",
				"| 20 | info | spelling-str | misspelled words in translation: fôte |",
			},
		},
		{
			name: "pipe in message is escaped",
			results: []FileResult{
				{
					Path: "locales/de.po",
					Diagnostics: []checker.Diagnostic{
						{
							Rule:     "untranslated",
							Severity: checker.SeverityWarning,
							Message:  "a | b",
							Line:     3,
						},
					},
				},
			},
			wantContains: []string{
				`| 3 | warning | untranslated | a \| b |`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Markdown(tt.results, now)
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := Write(dir, []FileResult{{Path: "locales/fr.po"}}, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pocheck_20260315_103000.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "## locales/fr.po")
}

func TestConvertMarkdownToPDF(t *testing.T) {
	t.Run("rejects non markdown input", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF("report.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".md extension")
	})

	t.Run("converts markdown file", func(t *testing.T) {
		dir := t.TempDir()
		mdPath := filepath.Join(dir, "report.md")
		require.NoError(t, os.WriteFile(mdPath, []byte("# Report\n\nHello.\n"), 0644))

		pdfPath, err := ConvertMarkdownToPDF(mdPath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "report.pdf"), pdfPath)

		info, err := os.Stat(pdfPath)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})
}
