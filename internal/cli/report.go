package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [dir]",
		Short: "Parse result files and print the aggregated summary",
		Long: `Parse every matching Wetator result file under the given directory
(default "."), merge the parsed trees and print the tallied summary.

Exits 1 when any test failed, 2 on command errors.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, argDir(args), cmd)
		},
	}

	return cmd
}

func runReport(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	set, err := collect(cfg, formatter, dir)
	if err != nil {
		return err
	}

	summary := NewSummary(set)
	if formatter.Format == "json" {
		if err := formatter.JSON(summary); err != nil {
			return err
		}
	} else {
		writeSummaryText(formatter.Writer, summary)
	}

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d tests failed", summary.Failed, summary.Total))
	}
	return nil
}
