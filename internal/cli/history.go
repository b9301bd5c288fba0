package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wetator/wetreport/internal/store"
)

// historyEntry is the JSON-facing view of one recorded build.
type historyEntry struct {
	BuildID    int64  `json:"build_id"`
	Name       string `json:"name"`
	RecordedAt string `json:"recorded_at"`
	Total      int    `json:"total"`
	Passed     int    `json:"passed"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
	DurationMS int64  `json:"duration_ms"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int
	var file string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded builds, newest first",
		Long: `List recorded build summaries from the history database. With --file,
list the recorded statistics of one test file across builds instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, limit, file, cmd)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of builds to list (0 for all)")
	cmd.Flags().StringVar(&file, "file", "", "list history of a single test file")

	return cmd
}

func runHistory(opts *RootOptions, limit int, file string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	st, err := store.Open(cfg.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening history database", err)
	}
	defer st.Close()

	var builds []store.BuildSummary
	if file != "" {
		builds, err = st.FileHistory(cmd.Context(), file, limit)
	} else {
		builds, err = st.History(cmd.Context(), limit)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "reading history", err)
	}

	entries := make([]historyEntry, 0, len(builds))
	for _, b := range builds {
		entries = append(entries, historyEntry{
			BuildID:    b.ID,
			Name:       b.Name,
			RecordedAt: b.RecordedAt.Format(time.RFC3339),
			Total:      b.Total,
			Passed:     b.Passed,
			Skipped:    b.Skipped,
			Failed:     b.Failed,
			DurationMS: b.Duration.Milliseconds(),
		})
	}

	return emit(formatter, entries, func() {
		if len(entries) == 0 {
			fmt.Fprintln(formatter.Writer, "no recorded builds")
			return
		}
		for _, e := range entries {
			fmt.Fprintf(formatter.Writer, "#%d  %s  %d tests: %d passed, %d skipped, %d failed (%dms)\n",
				e.BuildID, e.RecordedAt, e.Total, e.Passed, e.Skipped, e.Failed, e.DurationMS)
		}
	})
}
