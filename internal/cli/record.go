package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wetator/wetreport/internal/store"
)

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "record [dir]",
		Short:         "Parse result files and append the summary to the build history",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(rootOpts, argDir(args), cmd)
		},
	}

	return cmd
}

func runRecord(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	set, err := collect(cfg, formatter, dir)
	if err != nil {
		return err
	}

	if parent := filepath.Dir(cfg.Database); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return WrapExitError(ExitCommandError, "creating history directory", err)
		}
	}
	st, err := store.Open(cfg.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening history database", err)
	}
	defer st.Close()

	buildID, err := st.Record(cmd.Context(), set, time.Now())
	if err != nil {
		return WrapExitError(ExitCommandError, "recording build", err)
	}

	payload := struct {
		BuildID int64   `json:"build_id"`
		Summary Summary `json:"summary"`
	}{BuildID: buildID, Summary: NewSummary(set)}

	return emit(formatter, payload, func() {
		fmt.Fprintf(formatter.Writer, "recorded build %d\n", buildID)
		writeSummaryText(formatter.Writer, payload.Summary)
	})
}
