package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/strategyrun/config"
)

var rootCmd = &cobra.Command{
	Use:   "strategyrun",
	Short: "Run the trading strategy and append to the trade log",
	Long: `strategyrun runs the trading strategy routine.

Each run prints "Running trading strategy at <timestamp>" and appends
"Trade executed at <timestamp>" to trade_log.txt in the working directory.
Run without arguments it does exactly that, once.

Other commands:
  run      - run the strategy, optionally several times
  log      - inspect the trade log
  journal  - query the SQLite run journal
  config   - generate or validate configuration files
  version  - print the version`,
	Args:         cobra.NoArgs,
	RunE:         runRun,
	SilenceUsage: true,
}

var configPath string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (YAML or JSON)")
	rootCmd.Flags().IntVarP(&runCount, "count", "n", 1, "number of times to run the strategy")
}

// loadConfig returns the defaults, or the file at path, with environment
// overrides applied on top.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
