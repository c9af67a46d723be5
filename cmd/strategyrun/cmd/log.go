package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/strategyrun/tradelog"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect the trade log",
	Long: `Read the plain text trade log.

Subcommands:
  tail   - print the most recent entries
  count  - print the number of entries

Examples:
  strategyrun log tail -n 5
  strategyrun log count --file /var/lib/strategyrun/trade_log.txt`,
}

var logTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print the most recent trade log entries",
	Args:  cobra.NoArgs,
	RunE:  runLogTail,
}

var logCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of trade log entries",
	Args:  cobra.NoArgs,
	RunE:  runLogCount,
}

var (
	logFile  string
	logTailN int
)

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logTailCmd)
	logCmd.AddCommand(logCountCmd)

	logCmd.PersistentFlags().StringVarP(&logFile, "file", "f", "", "trade log path (default from config, trade_log.txt)")
	logTailCmd.Flags().IntVarP(&logTailN, "lines", "n", 10, "number of entries to print")
}

func tradeLogPath() (string, error) {
	if logFile != "" {
		return logFile, nil
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return cfg.TradeLog.Path, nil
}

func runLogTail(cmd *cobra.Command, args []string) error {
	path, err := tradeLogPath()
	if err != nil {
		return err
	}

	entries, err := tradelog.Tail(path, logTailN)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Fprintln(cmd.OutOrStdout(), tradelog.FormatLine(e.Time))
	}
	return nil
}

func runLogCount(cmd *cobra.Command, args []string) error {
	path, err := tradeLogPath()
	if err != nil {
		return err
	}

	entries, err := tradelog.ReadEntries(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), len(entries))
	return nil
}
