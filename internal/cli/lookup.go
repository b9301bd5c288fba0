package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wetator/wetreport/internal/result"
)

// runDetail is the JSON-facing view of a single browser run.
type runDetail struct {
	Name       string `json:"name"`
	FullName   string `json:"full_name"`
	Status     string `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	Kind       string `json:"kind,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <qualified-name> [dir]",
		Short: "Resolve one result by qualified name",
		Long: `Parse the result files under the given directory (default ".") and
resolve a single entity by qualified name: "file" addresses a test file,
"file[browser]" one browser run within it.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, args[0], argDir(args[1:]), cmd)
		},
	}

	return cmd
}

func runLookup(opts *RootOptions, name, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	set, err := collect(cfg, formatter, dir)
	if err != nil {
		return err
	}

	entity, err := set.Resolve(name)
	if err != nil {
		if result.IsNotFound(err) {
			return WrapExitError(ExitFailure, "lookup failed", err)
		}
		return err
	}

	switch entity := entity.(type) {
	case *result.Set:
		return emit(formatter, NewSummary(entity), func() {
			writeSummaryText(formatter.Writer, NewSummary(entity))
		})
	case *result.TestFile:
		detail := newFileSummary(entity)
		return emit(formatter, detail, func() {
			fmt.Fprintf(formatter.Writer, "%s (%s): %d tests, %d passed, %d skipped, %d failed (%dms)\n",
				detail.Name, detail.FullName, detail.Total, detail.Passed, detail.Skipped, detail.Failed, detail.DurationMS)
			for _, failure := range detail.Failures {
				fmt.Fprintf(formatter.Writer, "  FAIL %s (%s): %s\n", failure.Run, failure.Kind, failure.Detail)
			}
		})
	case *result.BrowserRun:
		detail := runDetail{
			Name:       entity.Name,
			FullName:   entity.FullName,
			Status:     statusOf(entity),
			DurationMS: entity.Duration.Milliseconds(),
		}
		if entity.Failure != nil {
			failure := newRunFailure(entity)
			detail.Kind = failure.Kind
			detail.Detail = failure.Detail
		}
		return emit(formatter, detail, func() {
			fmt.Fprintf(formatter.Writer, "%s: %s (%dms)\n", detail.FullName, detail.Status, detail.DurationMS)
			if detail.Detail != "" {
				fmt.Fprintf(formatter.Writer, "  %s failure: %s\n", detail.Kind, detail.Detail)
			}
		})
	default:
		return fmt.Errorf("unexpected result type %T", entity)
	}
}

// emit writes either the JSON payload or the text rendering.
func emit(formatter *OutputFormatter, payload any, text func()) error {
	if formatter.Format == "json" {
		return formatter.JSON(payload)
	}
	text()
	return nil
}
