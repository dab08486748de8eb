package cmd

import (
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/testy/packages/core/config"
	"github.com/abdul-hamid-achik/testy/packages/core/runner"
	"github.com/abdul-hamid-achik/testy/packages/history"
	"github.com/abdul-hamid-achik/testy/packages/output"
	"github.com/abdul-hamid-achik/testy/packages/selfcheck"
	"github.com/abdul-hamid-achik/testy/packages/snapshot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Run the built-in suites and check how many cases fail",
	Long: `Run the framework's own demonstration suites. Each suite knows how many
of its cases must fail; the command exits with status 1 if any suite
disagrees.

Examples:
  testy selfcheck
  testy selfcheck --suite failing
  testy selfcheck -o junit --output-file report.xml
  testy selfcheck --parallel --concurrency 8
  testy selfcheck --history runs.db
  testy selfcheck --snapshots __snapshots__ --update-snapshots`,
	Args: cobra.NoArgs,
	RunE: selfcheckCommand,
}

var (
	suiteFlag       string
	outputFlag      string
	outputFileFlag  string
	parallelFlag    bool
	concurrencyFlag int
	nameFlag        string
	historyFlag     string
	noColorFlag     bool
	verboseFlag     bool
	configFlag      string
	rateFlag        float64
	snapshotsFlag   string
	updateSnapsFlag bool
)

func init() {
	selfcheckCmd.Flags().StringVarP(&suiteFlag, "suite", "s", getEnvString("TESTY_SUITE", "all"), "Suite to run: failing, messageless, passing, example, all (env: TESTY_SUITE)")
	selfcheckCmd.Flags().StringVar(&configFlag, "config", getEnvString("TESTY_CONFIG", ""), "Path to config file (env: TESTY_CONFIG)")
	selfcheckCmd.Flags().StringVarP(&nameFlag, "name", "n", getEnvString("TESTY_NAME", ""), "Run only cases matching name pattern (env: TESTY_NAME)")

	// Output flags
	selfcheckCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", getEnvBool("TESTY_VERBOSE", false), "Verbose output and debug logging (env: TESTY_VERBOSE)")
	selfcheckCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("TESTY_NO_COLOR", false), "Disable colored output (env: TESTY_NO_COLOR)")
	selfcheckCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("TESTY_OUTPUT", "console"), "Output format: console, json, tap, junit (env: TESTY_OUTPUT)")
	selfcheckCmd.Flags().StringVar(&outputFileFlag, "output-file", getEnvString("TESTY_OUTPUT_FILE", ""), "Write output to file (default: stdout) (env: TESTY_OUTPUT_FILE)")

	// Execution flags
	selfcheckCmd.Flags().BoolVarP(&parallelFlag, "parallel", "p", getEnvBool("TESTY_PARALLEL", false), "Run cases in parallel (env: TESTY_PARALLEL)")
	selfcheckCmd.Flags().IntVar(&concurrencyFlag, "concurrency", getEnvInt("TESTY_CONCURRENCY", runner.DefaultConcurrency), "Number of cases run at once in parallel mode (env: TESTY_CONCURRENCY)")
	selfcheckCmd.Flags().Float64Var(&rateFlag, "rate", 0, "Maximum cases started per second, 0 for no limit")
	selfcheckCmd.Flags().StringVar(&historyFlag, "history", getEnvString("TESTY_HISTORY", ""), "Record runs in this SQLite database (env: TESTY_HISTORY)")

	// Snapshot flags
	selfcheckCmd.Flags().StringVar(&snapshotsFlag, "snapshots", getEnvString("TESTY_SNAPSHOTS", ""), "Compare case outcomes with snapshots in this directory (env: TESTY_SNAPSHOTS)")
	selfcheckCmd.Flags().BoolVar(&updateSnapsFlag, "update-snapshots", false, "Create or rewrite outcome snapshots instead of comparing")

	_ = selfcheckCmd.RegisterFlagCompletionFunc("suite", completeSuites)
	_ = selfcheckCmd.RegisterFlagCompletionFunc("output", completeFormats)
}

// selfcheckOverrides collects the settings given by flag or environment.
func selfcheckOverrides(cmd *cobra.Command) *config.Config {
	o := &config.Config{}
	if explicitlySet(cmd, "suite", "TESTY_SUITE") {
		o.Suite = suiteFlag
	}
	if explicitlySet(cmd, "output", "TESTY_OUTPUT") {
		o.Reporters = []string{outputFlag}
	}
	if explicitlySet(cmd, "output-file", "TESTY_OUTPUT_FILE") {
		o.OutputFile = outputFileFlag
	}
	if explicitlySet(cmd, "parallel", "TESTY_PARALLEL") {
		o.Parallel = config.BoolPtr(parallelFlag)
	}
	if explicitlySet(cmd, "concurrency", "TESTY_CONCURRENCY") {
		o.Concurrency = concurrencyFlag
	}
	if explicitlySet(cmd, "name", "TESTY_NAME") {
		o.NameFilter = nameFlag
	}
	if explicitlySet(cmd, "history", "TESTY_HISTORY") {
		o.HistoryDB = historyFlag
	}
	if cmd.Flags().Changed("rate") {
		o.Rate = rateFlag
	}
	if explicitlySet(cmd, "snapshots", "TESTY_SNAPSHOTS") {
		o.SnapshotDir = snapshotsFlag
	}
	if explicitlySet(cmd, "no-color", "TESTY_NO_COLOR") {
		o.NoColor = config.BoolPtr(noColorFlag)
	}
	if explicitlySet(cmd, "verbose", "TESTY_VERBOSE") {
		o.Verbose = config.BoolPtr(verboseFlag)
	}
	return o
}

func selfcheckCommand(cmd *cobra.Command, args []string) error {
	// Load config from file (if present) and apply CLI overrides
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return withExitCode(ExitConfigError, fmt.Errorf("loading config: %w", err))
	}
	cfg := fileConfig.Merge(selfcheckOverrides(cmd))

	if rateFlag < 0 {
		return withExitCode(ExitUsageError, fmt.Errorf("--rate must not be negative, got %v", rateFlag))
	}

	suites, err := selfcheck.Lookup(cfg.Suite)
	if err != nil {
		return withExitCode(ExitUsageError, err)
	}

	logger, err := newLogger(cfg.GetVerbose())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Setup output writer
	out := cmd.OutOrStdout()
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	reporter, err := output.New(cfg.Reporter(), out,
		output.WithErrorWriter(cmd.ErrOrStderr()),
		output.WithVerbose(cfg.GetVerbose()),
		output.WithNoColor(cfg.GetNoColor()),
	)
	if err != nil {
		return withExitCode(ExitUsageError, err)
	}

	var store *history.Store
	if cfg.HistoryDB != "" {
		store, err = history.Open(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()
	}

	r := runner.NewRunner(&runner.Config{
		Parallel:    cfg.GetParallel(),
		Concurrency: cfg.Concurrency,
		NameFilter:  cfg.NameFilter,
		Rate:        cfg.Rate,
	}, runner.WithReporter(reporter), runner.WithLogger(logger))

	var snapshots *snapshot.Manager
	if cfg.SnapshotDir != "" {
		snapshots = snapshot.NewManager(cfg.SnapshotDir, updateSnapsFlag)
	} else if updateSnapsFlag {
		return withExitCode(ExitUsageError, fmt.Errorf("--update-snapshots needs --snapshots or snapshotDir in config"))
	}

	// Verdicts share standard output only with the console summary.
	verdictOut := cmd.OutOrStdout()
	if cfg.Reporter() != "console" && cfg.OutputFile == "" {
		verdictOut = cmd.ErrOrStderr()
	}

	mismatched := 0
	_, err = selfcheck.Run(r, suites, func(v selfcheck.Verdict) error {
		s := v.Suite
		switch {
		case cfg.NameFilter != "":
			// Expectations only hold for whole suites.
			fmt.Fprintf(verdictOut, "Filtered by %q.  Got:  %d\n\n", cfg.NameFilter, v.Report.Failed)
		case v.OK():
			fmt.Fprintf(verdictOut, "%s\n\n", v)
		default:
			mismatched++
			fmt.Fprintf(verdictOut, "%s\n\n", v)
			logger.Warn("suite did not fail as expected",
				zap.String("suite", s.Name),
				zap.Int("expected", s.Expected),
				zap.Int("got", v.Report.Failed))
		}

		if snapshots != nil && cfg.NameFilter == "" {
			res, err := snapshots.Compare(s.Name, "outcomes", selfcheck.Outcomes(v.Report))
			if err != nil {
				return fmt.Errorf("checking %s snapshot: %w", s.Name, err)
			}
			switch {
			case res.IsNew:
				fmt.Fprintf(verdictOut, "Snapshot created: %s\n\n", snapshots.Path(s.Name))
			case res.WasUpdated:
				fmt.Fprintf(verdictOut, "Snapshot updated: %s\n\n", snapshots.Path(s.Name))
			case !res.Passed:
				mismatched++
				fmt.Fprintf(verdictOut, "Outcomes changed for %s: %v\n\n", s.Name, res.Err)
			}
		}

		if store != nil {
			if err := store.Record(cmd.Context(), s.Name, v.Report); err != nil {
				return fmt.Errorf("recording %s run: %w", s.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := output.Flush(reporter); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	if mismatched > 0 {
		return withExitCode(ExitTestFailure, fmt.Errorf("%d suite(s) did not behave as expected", mismatched))
	}
	return nil
}
