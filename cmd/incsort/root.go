package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"incsort/internal/config"
	"incsort/internal/slogutil"
	"incsort/internal/version"
)

var (
	verbosity int
	quietFlag bool
	dirFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "incsort",
	Short: "incsort - module-aware C++ include sorter",
	Long: `incsort reorders #include directives into deterministic, module-aware
groups: main header, same module, other modules, plugins, engine, and
external headers. Files are reconstructed byte-faithfully, preserving
encoding, line endings, and all non-include content.`,
	Version: version.Info(),
}

func init() {
	rootCmd.SetVersionTemplate("incsort version {{.Version}}\n")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false,
		"Suppress all log output")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", ".",
		"Project directory holding the .incsort configuration")
}

// loadConfig reads the configuration under the --dir directory.
func loadConfig() (*config.Config, error) {
	return config.Load(dirFlag)
}

// newLogger builds the CLI logger. Flags win over the configured level:
// --quiet suppresses everything, -v/-vv raise verbosity, otherwise the
// config file's logging level applies.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slogutil.LevelFromString(cfg.Logging.Level)
	if quietFlag || verbosity > 0 {
		level = slogutil.LevelFromVerbosity(verbosity, quietFlag)
	}
	return slogutil.NewLogger(os.Stderr, level)
}
