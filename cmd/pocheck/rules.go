package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potools/pocheck/internal/rules"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List available check rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s %-10s %s\n", "NAME", "SEVERITY", "DEFAULT")
			for _, rule := range rules.All() {
				enabled := ""
				if rule.IsDefault() {
					enabled = "yes"
				}
				fmt.Fprintf(out, "%-16s %-10s %s\n", rule.Name(), rule.Severity(), enabled)
			}
			return nil
		},
	}
}
