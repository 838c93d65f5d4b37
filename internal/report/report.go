// Package report renders check results as markdown and PDF documents.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mandolyte/mdtopdf"

	"github.com/potools/pocheck/internal/checker"
)

// FileResult holds the diagnostics reported for a single catalog file.
type FileResult struct {
	Path        string
	Diagnostics []checker.Diagnostic
}

// Markdown renders the results of a check run as a markdown document.
func Markdown(results []FileResult, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Translation check report\n\n")
	b.WriteString(fmt.Sprintf("Generated at %s\n\n", now.Format(time.RFC3339)))

	total := 0
	counts := map[checker.Severity]int{}
	for _, result := range results {
		total += len(result.Diagnostics)
		for _, diagnostic := range result.Diagnostics {
			counts[diagnostic.Severity]++
		}
	}
	b.WriteString(fmt.Sprintf("%d files checked, %d issues (%d errors, %d warnings, %d info)\n\n",
		len(results), total,
		counts[checker.SeverityError], counts[checker.SeverityWarning], counts[checker.SeverityInfo]))

	for _, result := range results {
		b.WriteString(fmt.Sprintf("## %s\n\n", result.Path))
		if len(result.Diagnostics) == 0 {
			b.WriteString("No issues found.\n\n")
			continue
		}

		b.WriteString("| Line | Severity | Rule | Message |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, diagnostic := range result.Diagnostics {
			b.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n",
				diagnostic.Line, diagnostic.Severity, diagnostic.Rule, escapeCell(diagnostic.Message)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// Write renders the results and writes them under dir as a timestamped
// markdown file, creating the directory if needed.
func Write(dir string, results []FileResult, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("pocheck_%s.md", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(Markdown(results, now)), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
