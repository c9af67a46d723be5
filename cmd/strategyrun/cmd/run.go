package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/strategyrun/config"
	"github.com/rustyeddy/strategyrun/internal/logging"
	"github.com/rustyeddy/strategyrun/journal"
	"github.com/rustyeddy/strategyrun/strategy"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the trading strategy",
	Long: `Run the trading strategy routine and record each run.

Every run appends one line to the trade log. When the config enables them,
the run is also written to the CSV and SQLite journals.

Examples:
  strategyrun run
  strategyrun run --count 3
  strategyrun run --config strategyrun.yaml`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

var runCount int

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&runCount, "count", "n", 1, "number of times to run the strategy")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, done, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer done()

	j, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}

	r := strategy.NewRunner(cfg.Strategy.Name, cmd.OutOrStdout(), j, logger)
	recs, err := r.RunN(cmd.Context(), runCount)
	if cerr := j.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close journal: %w", cerr)
	}
	if err != nil {
		return err
	}

	logger.Debug("runs complete", zap.Int("count", len(recs)), zap.String("trade_log", cfg.TradeLog.Path))
	return nil
}

// openJournal always includes the text trade log, followed by whichever
// structured journals the config turns on.
func openJournal(cfg *config.Config) (journal.Journal, error) {
	text, err := journal.NewText(cfg.TradeLog.Path)
	if err != nil {
		return nil, err
	}
	m := journal.Multi{text}

	if cfg.Journal.CSVFile != "" {
		c, err := journal.NewCSV(cfg.Journal.CSVFile)
		if err != nil {
			_ = m.Close()
			return nil, fmt.Errorf("csv journal: %w", err)
		}
		m = append(m, c)
	}

	if cfg.Journal.DBPath != "" {
		s, err := journal.NewSQLite(cfg.Journal.DBPath)
		if err != nil {
			_ = m.Close()
			return nil, fmt.Errorf("sqlite journal: %w", err)
		}
		m = append(m, s)
	}

	return m, nil
}
