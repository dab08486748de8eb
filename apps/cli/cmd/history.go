package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/abdul-hamid-achik/testy/packages/core/config"
	"github.com/abdul-hamid-achik/testy/packages/history"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded selfcheck runs",
	Long: `Show the runs recorded by 'testy selfcheck --history'. With --run, show
the failures of a single run instead.

Examples:
  testy history --db runs.db
  testy history --db runs.db --limit 5
  testy history --db runs.db --run 5f1c...`,
	Args: cobra.NoArgs,
	RunE: historyCommand,
}

var (
	historyDBFlag     string
	historyLimitFlag  int
	historyRunFlag    string
	historyConfigFlag string
)

func init() {
	historyCmd.Flags().StringVar(&historyDBFlag, "db", getEnvString("TESTY_HISTORY", ""), "History database (env: TESTY_HISTORY, default: historyDB from config)")
	historyCmd.Flags().IntVar(&historyLimitFlag, "limit", 20, "Maximum number of runs to show (0 for all)")
	historyCmd.Flags().StringVar(&historyRunFlag, "run", "", "Show the failures of this run ID")
	historyCmd.Flags().StringVar(&historyConfigFlag, "config", getEnvString("TESTY_CONFIG", ""), "Path to config file (env: TESTY_CONFIG)")
}

func historyCommand(cmd *cobra.Command, args []string) error {
	db := historyDBFlag
	if db == "" {
		cfg, err := config.LoadConfig(historyConfigFlag)
		if err != nil {
			return withExitCode(ExitConfigError, fmt.Errorf("loading config: %w", err))
		}
		db = cfg.HistoryDB
	}
	if db == "" {
		return withExitCode(ExitUsageError, fmt.Errorf("no history database given (use --db or historyDB in config)"))
	}

	store, err := history.Open(db)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	if historyRunFlag != "" {
		failures, err := store.Failures(cmd.Context(), historyRunFlag)
		if err != nil {
			return err
		}
		if len(failures) == 0 {
			fmt.Fprintf(w, "No failures recorded for run %s\n", historyRunFlag)
			return nil
		}
		fmt.Fprintln(w, "#\tNAME\tMESSAGE")
		for _, f := range failures {
			fmt.Fprintf(w, "%d\t%s\t%s\n", f.Index+1, f.Name, firstLine(f.Message))
		}
		return nil
	}

	runs, err := store.Recent(cmd.Context(), historyLimitFlag)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return nil
	}

	fmt.Fprintln(w, "ID\tSUITE\tRECORDED\tTOTAL\tPASSED\tFAILED\tSKIPPED\tDURATION\tP95")
	for _, r := range runs {
		failed := fmt.Sprintf("%d", r.Failed)
		if r.Failed > 0 {
			failed = color.RedString(failed)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%d\t%s\t%s\n",
			r.ID, r.Suite, r.RecordedAt.Format(time.DateTime),
			r.Total, r.Passed, failed, r.Skipped,
			r.Duration.Round(time.Microsecond), r.P95)
	}
	return nil
}

func firstLine(s string) string {
	if line, _, found := strings.Cut(s, "\n"); found {
		return line + " ..."
	}
	return s
}
