package cli

import (
	"github.com/wetator/wetreport/internal/collector"
	"github.com/wetator/wetreport/internal/config"
	"github.com/wetator/wetreport/internal/result"
)

// loadConfig resolves the configuration for a command, mapping failures to
// command-error exits.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}
	return cfg, nil
}

// collect runs the collector over dir using the loaded configuration and
// returns the tallied set.
func collect(cfg *config.Config, formatter *OutputFormatter, dir string) (*result.Set, error) {
	c := &collector.Collector{
		ResultPatterns: cfg.Results,
		ReportPatterns: cfg.Reports,
		AllowEmpty:     cfg.AllowEmpty,
		Logf:           formatter.VerboseLog,
	}
	set, err := c.Collect(dir)
	if err != nil {
		if collector.IsNoResults(err) {
			return nil, WrapExitError(ExitCommandError, "no result files found", err)
		}
		return nil, WrapExitError(ExitCommandError, "collecting results", err)
	}
	return set, nil
}

// argDir returns the optional positional base directory, defaulting to ".".
func argDir(args []string) string {
	if len(args) > 0 {
		return args[len(args)-1]
	}
	return "."
}
