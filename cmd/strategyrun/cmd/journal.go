package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/strategyrun/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the run journal",
	Long: `Query and display run records from the SQLite journal.

Subcommands:
  run    - Get details of a specific run by ID
  today  - List runs executed today
  day    - List runs executed on a specific day

Examples:
  strategyrun journal run <run-id>
  strategyrun journal today
  strategyrun journal day 2024-01-15`,
}

var journalRunCmd = &cobra.Command{
	Use:   "run <run-id>",
	Short: "Get details of a specific run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalRun,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List runs executed today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List runs executed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalDBPath string

// now is swapped in tests.
var now = time.Now

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRunCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default from config)")
}

// openJournalDB refuses to create a database just to query it.
func openJournalDB() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		path = cfg.Journal.DBPath
	}
	if path == "" {
		return nil, errors.New("no journal database: pass --db or set journal.db_path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalRun(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), journal.FormatRunOrg(rec))
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	return listRunsOnDay(cmd, now().In(time.Local).Format("2006-01-02"))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listRunsOnDay(cmd, args[0])
}

func listRunsOnDay(cmd *cobra.Command, day string) error {
	start, end, err := dayBounds(time.Local, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListRunsBetween(start, end)
	if err != nil {
		return fmt.Errorf("query runs: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), journal.FormatRunsOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
