package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/potools/pocheck/internal/checker"
	"github.com/potools/pocheck/internal/cli"
	"github.com/potools/pocheck/internal/config"
	"github.com/potools/pocheck/internal/dictionary"
	"github.com/potools/pocheck/internal/po"
	"github.com/potools/pocheck/internal/report"
	"github.com/potools/pocheck/internal/rules"
)

type severityFlag checker.Severity

func (s *severityFlag) Set(val string) error {
	severity, err := checker.ParseSeverity(val)
	if err != nil {
		return err
	}
	*s = severityFlag(severity)
	return nil
}

func (s severityFlag) String() string {
	return checker.Severity(s).String()
}

func (s *severityFlag) Type() string {
	return "severity"
}

var _ pflag.Value = (*severityFlag)(nil)

func newCheckCommand() *cobra.Command {
	var (
		extraRules   []string
		minSeverity  = severityFlag(checker.SeverityInfo)
		failSeverity = severityFlag(checker.SeverityError)
		writeReport  bool
		writePDF     bool
	)

	command := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check PO catalog files for translation mistakes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			if !cmd.Flags().Changed("min-severity") && cfg.Checks.MinSeverity != "" {
				if err := minSeverity.Set(cfg.Checks.MinSeverity); err != nil {
					return fmt.Errorf("checks.min_severity: %w", err)
				}
			}
			if !cmd.Flags().Changed("fail-severity") && cfg.Checks.FailSeverity != "" {
				if err := failSeverity.Set(cfg.Checks.FailSeverity); err != nil {
					return fmt.Errorf("checks.fail_severity: %w", err)
				}
			}

			names := append([]string{}, cfg.Checks.Rules...)
			names = append(names, extraRules...)
			selected, err := rules.Select(names)
			if err != nil {
				return fmt.Errorf("rules.Select() > %w", err)
			}

			sourceDict, err := dictionary.Resolve(cfg.Dictionaries.Directory, cfg.Dictionaries.SourceLanguage)
			if err != nil {
				return fmt.Errorf("dictionary.Resolve(%s) > %w", cfg.Dictionaries.SourceLanguage, err)
			}
			if sourceDict == nil {
				slog.Debug("no source word list found",
					"directory", cfg.Dictionaries.Directory,
					"language", cfg.Dictionaries.SourceLanguage)
			}

			printer := cli.NewPrinter(cmd.OutOrStdout())
			counts := map[checker.Severity]int{}
			results := make([]report.FileResult, 0, len(args))
			failed := false

			for _, path := range args {
				file, err := po.ParseFile(path)
				if err != nil {
					return fmt.Errorf("po.ParseFile(%s) > %w", path, err)
				}

				c := checker.New(file, selected)
				c.DictSource = sourceDict
				if file.Language != "" {
					translationDict, err := dictionary.Resolve(cfg.Dictionaries.Directory, file.Language)
					if err != nil {
						return fmt.Errorf("dictionary.Resolve(%s) > %w", file.Language, err)
					}
					c.DictTranslation = translationDict
				}
				c.CheckAll()

				var kept []checker.Diagnostic
				for _, diagnostic := range c.Diagnostics() {
					if diagnostic.Severity < checker.Severity(minSeverity) {
						continue
					}
					kept = append(kept, diagnostic)
					counts[diagnostic.Severity]++
					if diagnostic.Severity >= checker.Severity(failSeverity) {
						failed = true
					}
				}

				printer.PrintFile(path, kept)
				results = append(results, report.FileResult{Path: path, Diagnostics: kept})
			}

			printer.PrintSummary(len(args), counts)

			if writeReport {
				reportPath, err := report.Write(cfg.Reports.Directory, results, time.Now())
				if err != nil {
					return fmt.Errorf("report.Write() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", reportPath)

				if writePDF {
					pdfPath, err := report.ConvertMarkdownToPDF(reportPath)
					if err != nil {
						return fmt.Errorf("report.ConvertMarkdownToPDF() > %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", pdfPath)
				}
			}

			if failed {
				return fmt.Errorf("check failed: issues at %s severity or higher", checker.Severity(failSeverity))
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.StringSliceVar(&extraRules, "rules", nil, "Non-default rules to enable in addition to the default set")
	flags.Var(&minSeverity, "min-severity", "Lowest severity to show. Possible values are info, warning and error")
	flags.Var(&failSeverity, "fail-severity", "Lowest severity that fails the check. Possible values are info, warning and error")
	flags.BoolVar(&writeReport, "report", false, "Write a markdown report")
	flags.BoolVar(&writePDF, "pdf", false, "Also convert the markdown report to PDF")

	return command
}
