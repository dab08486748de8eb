package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/abdul-hamid-achik/testy/packages/assertions"
	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// WatchDebounceDelay is how long compare --watch waits for writes to settle
const WatchDebounceDelay = 300 * time.Millisecond

var compareCmd = &cobra.Command{
	Use:   "compare <expected.json> <actual.json>",
	Short: "Compare two JSON documents structurally",
	Long: `Compare two JSON documents the way Equals compares values. Object key
order and whitespace do not matter. With --epsilon, numbers may differ by
at most that amount.

Examples:
  testy compare want.json got.json
  testy compare want.json got.json --epsilon 0.01
  testy compare want.json got.json --path data.items
  testy compare want.json got.json --watch`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeJSONFiles,
	RunE:              compareCommand,
}

var (
	epsilonFlag        float64
	pathFlag           string
	compareNoColorFlag bool
	watchFlag          bool
)

func init() {
	compareCmd.Flags().Float64Var(&epsilonFlag, "epsilon", 0, "Allowed difference between numbers (default: exact)")
	compareCmd.Flags().StringVar(&pathFlag, "path", "", "Compare only the part of each document at this gjson path")
	compareCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Compare again whenever either document changes")
	compareCmd.Flags().BoolVar(&compareNoColorFlag, "no-color", getEnvBool("TESTY_NO_COLOR", false), "Disable colored output (env: TESTY_NO_COLOR)")
}

func compareCommand(cmd *cobra.Command, args []string) error {
	withinEpsilon := cmd.Flags().Changed("epsilon")
	if withinEpsilon && (epsilonFlag < 0 || math.IsNaN(epsilonFlag)) {
		return withExitCode(ExitUsageError, fmt.Errorf("--epsilon must be a non-negative number, got %v", epsilonFlag))
	}

	if compareNoColorFlag {
		color.NoColor = true
	}

	mismatch, err := compareFiles(cmd.OutOrStdout(), args[0], args[1], withinEpsilon)
	if err != nil {
		return err
	}
	if watchFlag {
		return watchFiles(cmd, args[0], args[1], withinEpsilon)
	}
	if mismatch {
		return withExitCode(ExitTestFailure, nil)
	}
	return nil
}

// compareFiles prints the comparison of two documents and reports whether
// they differ.
func compareFiles(out io.Writer, expectedFile, actualFile string, withinEpsilon bool) (bool, error) {
	expected, err := readDocument(expectedFile, pathFlag)
	if err != nil {
		return false, err
	}
	actual, err := readDocument(actualFile, pathFlag)
	if err != nil {
		return false, err
	}

	var result error
	if withinEpsilon {
		result = assertions.JSONEqualsWithin(expected, actual, epsilonFlag)
	} else {
		result = assertions.JSONEquals(expected, actual)
	}

	if result != nil {
		fmt.Fprintf(out, "%s %s\n", color.RedString("MISMATCH"), result)
		return true, nil
	}
	fmt.Fprintf(out, "%s documents are equal\n", color.GreenString("OK"))
	return false, nil
}

// watchFiles compares the documents again after every write to either of
// them, until interrupted.
func watchFiles(cmd *cobra.Command, expectedFile, actualFile string, withinEpsilon bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := map[string]bool{}
	for _, file := range []string{expectedFile, actualFile} {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		watched[abs] = true
		// Editors often replace files, so watch the directory.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", file, err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nWatching for changes... (press Ctrl+C to stop)\n")

	rerun := make(chan string, 1)
	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if !watched[abs] || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				select {
				case rerun <- name:
				default:
				}
			})

		case name := <-rerun:
			fmt.Fprintf(out, "\nFile changed: %s\n", name)
			if _, err := compareFiles(out, expectedFile, actualFile, withinEpsilon); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			fmt.Fprintf(out, "\nWatching for changes... (press Ctrl+C to stop)\n")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watcher error: %v\n", err)
		}
	}
}

// readDocument loads a JSON file and, when path is set, narrows it to the
// value found there.
func readDocument(file, path string) ([]byte, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	if path == "" {
		return data, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: invalid JSON document", file)
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return nil, fmt.Errorf("%s: nothing at path %q", file, path)
	}
	return []byte(res.Raw), nil
}
